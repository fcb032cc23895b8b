package main

import (
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/cjnoack/skinblast/internal/ioconfig"
	"github.com/cjnoack/skinblast/internal/iofs"
	"github.com/cjnoack/skinblast/internal/iologger"
	"github.com/cjnoack/skinblast/pkg/config"
)

var (
	homeDir string
	cfg     *config.Config
)

// rootFlags are CLI overrides shared by every subcommand. They are applied
// on top of config.yaml and environment variables.
type rootFlags struct {
	resultsDir   string
	metadataPath string
	runColumn    string
	jobsNumber   int
}

func getRootCmd() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "skinblast",
		Short: "skinblast joins BLAST output with sample metadata",
		Long: `skinblast ingests per-sample BLAST tabular output
(-outfmt "6 sscinames std"), splits the compound query identifier into a
sample key and a sequence ordinal, concatenates all samples, and left-joins
the result against a tab-delimited sample metadata table anchored on the
run accession.

Subcommands consume the joined table:
  - report: ranked taxa per cohort and per-group numeric distributions
  - join:   dump the joined table as CSV, TSV or JSON
  - export: write the joined table to a SQLite database

Configuration precedence (highest to lowest):
  1. CLI flags (--results, --metadata, etc.)
  2. Environment variables (SKINBLAST_*)
  3. Config file (~/.config/skinblast/config.yaml)
  4. Built-in defaults`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap(&flags)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.resultsDir, "results", "r",
		"", "directory with per-sample BLAST output files")
	rootCmd.PersistentFlags().StringVarP(&flags.metadataPath, "metadata", "m",
		"", "tab-delimited sample metadata file")
	rootCmd.PersistentFlags().StringVar(&flags.runColumn, "run-column",
		"", "metadata column holding the run accession")
	rootCmd.PersistentFlags().IntVarP(&flags.jobsNumber, "jobs", "j",
		0, "number of concurrent workers for parallel parsing")

	// Remove the automatic "skinblast version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for skinblast")

	// Add subcommands
	rootCmd.AddCommand(getReportCmd())
	rootCmd.AddCommand(getJoinCmd())
	rootCmd.AddCommand(getExportCmd())

	return rootCmd
}

func bootstrap(flags *rootFlags) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = ioconfig.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// CLI flags override file and environment settings
	cfg.Update(flagOptions(flags))

	// Reconfigure logging with user's settings
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

func flagOptions(flags *rootFlags) []config.Option {
	var opts []config.Option
	if flags.resultsDir != "" {
		opts = append(opts, config.OptResultsDir(flags.resultsDir))
	}
	if flags.metadataPath != "" {
		opts = append(opts, config.OptMetadataPath(flags.metadataPath))
	}
	if flags.runColumn != "" {
		opts = append(opts, config.OptRunColumn(flags.runColumn))
	}
	if flags.jobsNumber > 0 {
		opts = append(opts, config.OptJobsNumber(flags.jobsNumber))
	}
	return opts
}
