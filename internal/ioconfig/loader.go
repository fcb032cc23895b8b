// Package ioconfig loads configuration from the config file and
// environment. This is an impure package that handles file system access.
package ioconfig

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/cjnoack/skinblast/internal/iofs"
	"github.com/cjnoack/skinblast/pkg/config"
)

// Load reads config.yaml from the user's config directory, with
// environment variable overrides, and unmarshals it into a Config.
func Load(homeDir string) (*config.Config, error) {
	cfgPath := config.ConfigFilePath(homeDir)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err := v.Unmarshal(&res); err != nil {
		return nil, LoadError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are
	// allowed. These match the fields included in config.ToOptions() -
	// i.e., persistent configuration that can be stored in config.yaml.
	v.SetEnvPrefix("SKINBLAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Ingest configuration
	v.BindEnv("ingest.results_dir")
	v.BindEnv("ingest.file_pattern")

	// Metadata configuration
	v.BindEnv("metadata.path")
	v.BindEnv("metadata.run_column")

	// Report configuration
	v.BindEnv("report.top_n")
	v.BindEnv("report.cohort_column")
	v.BindEnv("report.group_column")
	v.BindEnv("report.canonical")

	// Log configuration
	v.BindEnv("log.level")
	v.BindEnv("log.format")
	v.BindEnv("log.destination")

	// General configuration
	v.BindEnv("jobs_number")

	v.AutomaticEnv()
}
