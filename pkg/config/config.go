/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config holds the settings of a rolling-median run. Values come from, in order of
// precedence, command line flags, an optional YAML file and the defaults below.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/numaproj/rollingmedian/pkg/shared/logging"
)

const (
	KeyConfigFile  = "config"
	KeyLogLevel    = "log-level"
	KeyFoldCase    = "fold-case"
	KeyVerify      = "verify"
	KeyMetricsFile = "metrics-file"
)

const (
	DefaultLogLevel = "info"
)

// Config is the configuration of a single run.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"log-level" json:"logLevel"`
	// FoldCase lower-cases both identifiers of an event before the edge is built.
	FoldCase bool `mapstructure:"fold-case" json:"foldCase"`
	// Verify cross-checks the degree bookkeeping after every event.
	Verify bool `mapstructure:"verify" json:"verify"`
	// MetricsFile, if set, receives a Prometheus text snapshot at the end of the run.
	MetricsFile string `mapstructure:"metrics-file" json:"metricsFile"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
	}
}

// AddFlags registers the configuration flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyConfigFile, "", "Path of an optional YAML configuration file")
	fs.String(KeyLogLevel, d.LogLevel, "Log level, one of debug, info, warn or error")
	fs.Bool(KeyFoldCase, d.FoldCase, "Lower-case identifiers before building edges")
	fs.Bool(KeyVerify, d.Verify, "Verify the degree bookkeeping after every event")
	fs.String(KeyMetricsFile, d.MetricsFile, "Write a Prometheus text format snapshot to this file at the end of the run")
}

// Load builds a Config from the flags in fs, the file named by the config flag and the defaults.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyFoldCase, d.FoldCase)
	v.SetDefault(KeyVerify, d.Verify)
	v.SetDefault(KeyMetricsFile, d.MetricsFile)
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags, %w", err)
	}

	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load configuration file. %w", err)
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("failed unmarshal configuration. %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks the values that flag parsing cannot.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s %q, %w", KeyLogLevel, c.LogLevel, err)
	}
	if c.MetricsFile != "" {
		if fi, err := os.Stat(c.MetricsFile); err == nil && fi.IsDir() {
			return fmt.Errorf("invalid %s %q, is a directory", KeyMetricsFile, c.MetricsFile)
		}
	}
	return nil
}
