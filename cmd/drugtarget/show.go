// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/drugtarget/internal/summary"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the summary stored in a saved JSON or YAML file",
	Long: `Show reads a summary file written by an earlier lookup and prints it in the
same layout as a live lookup. No network requests are made.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := summary.Load(args[0])
		if err != nil {
			return err
		}
		return summary.WriteText(s, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
