// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for dividend-model.
type Configuration struct {
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Scenario holds one named set of model inputs. GrowthRate is expressed in
// percent, matching the user-facing form.
type Scenario struct {
	Name           string
	Active         bool
	MarketPrice    float64
	DividendAmount float64
	GrowthRate     float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader; used by the web server for uploaded and editor-built
// configs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Field-range errors on scenario inputs are not warnings;
// they surface per scenario when the models run.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Scenarios) == 0 {
		warnings = append(warnings, "no scenarios defined")
		return warnings
	}

	active := 0
	seen := make(map[string]struct{})
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active++
		}
		if scenario.Name == "" {
			warnings = append(warnings, "scenario with empty name")
			continue
		}
		if _, dup := seen[scenario.Name]; dup {
			warnings = append(warnings, fmt.Sprintf("duplicate scenario name '%s'", scenario.Name))
		}
		seen[scenario.Name] = struct{}{}
	}

	if active == 0 {
		warnings = append(warnings, "no active scenarios")
	}

	return warnings
}
