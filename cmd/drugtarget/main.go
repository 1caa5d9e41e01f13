// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the drugtarget CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/drugtarget/internal/httputil"
	"github.com/pdiddy/drugtarget/internal/logger"
	"github.com/pdiddy/drugtarget/internal/uniprot"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd fetches one entry and writes its summary. Subcommands work on
// results that were already saved.
var rootCmd = &cobra.Command{
	Use:   "drugtarget",
	Short: "Fetch a UniProtKB protein entry and summarize it",
	Long: `drugtarget retrieves a protein entry from UniProtKB, either directly by
accession (--id) or by exact gene symbol within an organism (--gene,
--organism). It prints a short summary of the entry (name, genes, organism,
sequence length and mass, subcellular locations, domains, PDB structures and
function) and saves the extracted fields as JSON or YAML.`,
	Example: `  drugtarget --id P04637
  drugtarget --gene EGFR --organism "Mus musculus" --out egfr.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLookup,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return initLogger()
	}

	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./drugtarget.yaml or ~/.config/drugtarget/drugtarget.yaml)")
	pf.String("archive", "", "SQLite database recording each lookup (disabled when empty)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
}

// bindFlags ties command-line flags to their config keys in v.
func bindFlags(v *viper.Viper) {
	_ = v.BindPFlag(keyArchive, rootCmd.PersistentFlags().Lookup("archive"))

	f := rootCmd.Flags()
	_ = v.BindPFlag(keyOrganism, f.Lookup("organism"))
	_ = v.BindPFlag(keyOut, f.Lookup("out"))
	_ = v.BindPFlag(keyFormat, f.Lookup("format"))
	_ = v.BindPFlag(keyTimeout, f.Lookup("timeout"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("drugtarget")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "drugtarget"))
		}
	}

	setDefaults(viper.GetViper())
	bindFlags(viper.GetViper())

	viper.SetEnvPrefix("DRUGTARGET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func initLogger() error {
	level := zapcore.DebugLevel
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); !verbose {
		var err error
		level, err = logger.ParseLevel(viper.GetString(keyLogLevel))
		if err != nil {
			return err
		}
	}
	if err := logger.Init(level); err != nil {
		return err
	}
	if f := viper.ConfigFileUsed(); f != "" {
		logger.Debug("config loaded", zap.String("file", f))
	}
	return nil
}

// lookupError marks a failure that happened after a lookup was selected.
// It is reported like any other error but does not fail the process.
type lookupError struct {
	err error
}

func (e *lookupError) Error() string { return e.err.Error() }
func (e *lookupError) Unwrap() error { return e.err }

// exitCode maps the error returned by the root command to a process exit
// status. A missing selector and an unmatched gene search exit 1; upstream
// and processing failures of a started lookup are reported and exit 0.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, uniprot.ErrNoSelector) || errors.Is(err, uniprot.ErrNotFound) {
		return 1
	}
	var le *lookupError
	if errors.As(err, &le) {
		return 0
	}
	return 1
}

// reportError prints a one-line message for err to w.
func reportError(w io.Writer, err error) {
	switch {
	case errors.Is(err, uniprot.ErrNoSelector):
		fmt.Fprintln(w, "Specify --id or --gene")
	case errors.Is(err, uniprot.ErrNotFound):
		fmt.Fprintln(w, "No results found for gene + organism.")
	case httputil.IsHTTPError(err):
		fmt.Fprintln(w, "HTTP error:", err)
	default:
		fmt.Fprintln(w, "Error:", err)
	}
}

// run executes the CLI with args, writing results and error lines to
// stdout, and returns the exit status.
func run(args []string, stdout io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		reportError(stdout, err)
	}
	return exitCode(err)
}

func main() {
	if code := run(os.Args[1:], os.Stdout); code != 0 {
		os.Exit(code)
	}
}
