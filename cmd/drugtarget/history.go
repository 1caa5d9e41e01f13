// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/drugtarget/internal/archive"
	"github.com/pdiddy/drugtarget/internal/summary"
)

var historyCmd = &cobra.Command{
	Use:   "history [lookup-id]",
	Short: "List lookups recorded in the archive",
	Long: `History lists lookups recorded in the SQLite archive given by --archive (or
the "archive" config key), newest first. With a lookup id it prints the
archived summary for that lookup.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("accession", "", "only list lookups of this accession")
	historyCmd.Flags().Int("limit", 20, "maximum number of lookups to list")
	historyCmd.Flags().Bool("json", false, "output lookups as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := viper.GetString(keyArchive)
	if path == "" {
		return errors.New("no archive configured: pass --archive or set archive in the config file")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("opening archive %s: %w", path, err)
	}

	store, err := archive.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	w := cmd.OutOrStdout()
	if len(args) == 1 {
		l, err := store.Get(ctx, args[0])
		if err != nil {
			return err
		}
		return summary.WriteText(l.Summary, w)
	}

	accession, _ := cmd.Flags().GetString("accession")
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	lookups, err := store.List(ctx, archive.ListOptions{Accession: accession, Limit: limit})
	if err != nil {
		return err
	}
	if asJSON {
		return archive.FormatJSON(lookups, w)
	}
	archive.FormatTable(lookups, w)
	return nil
}
