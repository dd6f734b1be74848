// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package config implements configuration file parsing and validation.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the runtime configuration: search limits, the expand
// cache size, additional rule files, and logging options.
type Config struct {
	MaxOperations int      `mapstructure:"max_operations" json:"max_operations"`
	MaxIterations int      `mapstructure:"max_iterations" json:"max_iterations"`
	CacheSize     int      `mapstructure:"cache_size" json:"cache_size"`
	RuleFiles     []string `mapstructure:"rule_files" json:"rule_files,omitempty"`

	Logging LoggingConfig `mapstructure:"logging" json:"logging"`
}

// LoggingConfig represents the logging options.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// Default returns the configuration used when nothing is overridden: the
// interactive limits of the original tool and text logging at info level.
func Default() Config {
	return Config{
		MaxOperations: 32,
		MaxIterations: 256,
		CacheSize:     8192,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from an optional YAML file and SYMPLIFY_*
// environment variables, layered over the defaults.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("symplify")
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("max_operations", defaults.MaxOperations)
	v.SetDefault("max_iterations", defaults.MaxIterations)
	v.SetDefault("cache_size", defaults.CacheSize)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.MaxOperations < 0 {
		return fmt.Errorf("max_operations must not be negative")
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must not be negative")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative")
	}
	return nil
}
