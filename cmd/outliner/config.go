package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/pagemill/outliner/outline"
)

// loadConfig sets up viper with pipeline defaults, overlays an optional
// config file, and returns the resulting builder configuration. Environment
// variables with the OUTLINER_ prefix override both.
func loadConfig(cfgFile string) (outline.BuilderConfig, error) {
	defaults := outline.DefaultBuilderConfig()
	viper.SetDefault("filter", defaults.Filter)
	viper.SetDefault("boilerplate", defaults.Boilerplate)
	viper.SetDefault("heading", defaults.Heading)

	viper.SetEnvPrefix("OUTLINER")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.outliner")
	}

	// Config file is optional
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return defaults, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := defaults
	if err := viper.Unmarshal(&cfg); err != nil {
		return defaults, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
