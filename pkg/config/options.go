package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptResultsDir sets the directory scanned for BLAST output files.
func OptResultsDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Results Directory", s) {
			c.Ingest.ResultsDir = s
		}
	}
}

// OptFilePattern sets the glob matched against result file names.
func OptFilePattern(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("File Pattern", s) {
			c.Ingest.FilePattern = s
		}
	}
}

// OptMetadataPath sets the path to the tab-delimited metadata file.
func OptMetadataPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Metadata Path", s) {
			c.Metadata.Path = s
		}
	}
}

// OptRunColumn sets the metadata column holding the run accession.
func OptRunColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Run Column", s) {
			c.Metadata.RunColumn = s
		}
	}
}

// OptTopN sets the number of taxa shown in ranked count tables.
func OptTopN(i int) Option {
	return func(c *Config) {
		if isValidInt("Top N", i) {
			c.Report.TopN = i
		}
	}
}

// OptCohortColumn sets the metadata column that partitions top-taxa tables.
func OptCohortColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Cohort Column", s) {
			c.Report.CohortColumn = s
		}
	}
}

// OptGroupColumn sets the metadata column that groups numeric distributions.
func OptGroupColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Group Column", s) {
			c.Report.GroupColumn = s
		}
	}
}

// OptCanonical enables scientific-name canonicalization in reports.
func OptCanonical(b bool) Option {
	return func(c *Config) {
		c.Report.Canonical = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel parsing.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
