// Package config provides configuration management for skinblast.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use SKINBLAST_ prefix with underscores for nesting:
//
//	SKINBLAST_INGEST_RESULTS_DIR=data/blast_results
//	SKINBLAST_METADATA_PATH=data/metadata/SraRunTable.txt
//	SKINBLAST_LOG_LEVEL=info
//	SKINBLAST_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete skinblast configuration.
type Config struct {
	// Ingest contains settings for BLAST result discovery and parsing.
	Ingest IngestConfig `mapstructure:"ingest" yaml:"ingest"`

	// Metadata contains settings for the sample metadata table.
	Metadata MetadataConfig `mapstructure:"metadata" yaml:"metadata"`

	// Report contains settings specific to the report command.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel parsing.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// IngestConfig contains settings for BLAST tabular output ingestion.
type IngestConfig struct {
	// ResultsDir is the directory scanned (non-recursively) for per-sample
	// BLAST output files.
	ResultsDir string `mapstructure:"results_dir" yaml:"results_dir"`

	// FilePattern is the glob matched against file names inside ResultsDir.
	FilePattern string `mapstructure:"file_pattern" yaml:"file_pattern"`
}

// MetadataConfig contains settings for the sample metadata table.
type MetadataConfig struct {
	// Path points to the tab-delimited metadata file with a header row.
	Path string `mapstructure:"path" yaml:"path"`

	// RunColumn names the metadata column holding the run accession that
	// matches the sample key parsed out of BLAST query identifiers.
	RunColumn string `mapstructure:"run_column" yaml:"run_column"`
}

// ReportConfig contains settings specific to the report command.
type ReportConfig struct {
	// TopN is the number of taxa shown in ranked count tables.
	TopN int `mapstructure:"top_n" yaml:"top_n"`

	// CohortColumn is the metadata column whose distinct values partition
	// the top-taxa tables (for example "sex_s").
	CohortColumn string `mapstructure:"cohort_column" yaml:"cohort_column"`

	// GroupColumn is the metadata column used to group numeric
	// distributions (for example "host_subject_id_s").
	GroupColumn string `mapstructure:"group_column" yaml:"group_column"`

	// Canonical enables scientific-name canonicalization through gnparser
	// before taxa are grouped and counted.
	Canonical bool `mapstructure:"canonical" yaml:"canonical"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Ingest: IngestConfig{
			ResultsDir:  "data/blast_results",
			FilePattern: "*.tsv",
		},
		Metadata: MetadataConfig{
			Path:      "data/metadata/SraRunTable.txt",
			RunColumn: "Run_s",
		},
		Report: ReportConfig{
			TopN:         10,
			CohortColumn: "sex_s",
			GroupColumn:  "host_subject_id_s",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
