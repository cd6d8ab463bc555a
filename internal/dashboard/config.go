// Package dashboard loads and validates the dashboard definition file:
// project identity, output location, status display labels, and the ordered
// list of indicators to fetch.
package dashboard

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solonmacro/solonmacro.github.io/internal/indicator"
)

// Config is the parsed dashboard definition.
type Config struct {
	Project      Project                `yaml:"project"`
	Output       Output                 `yaml:"output"`
	StatusLevels map[string]StatusLevel `yaml:"status_levels"`
	Indicators   []Indicator            `yaml:"indicators"`
}

// Project identifies the dashboard in the published snapshot.
type Project struct {
	Name string `yaml:"name"`
}

// Output names where the latest snapshot is published.
type Output struct {
	DataDir    string `yaml:"data_dir"`
	LatestFile string `yaml:"latest_file"`
}

// StatusLevel carries the display label for one signal level.
type StatusLevel struct {
	Label string `yaml:"label"`
}

// Indicator configures one external data series. Immutable for the run.
type Indicator struct {
	Key        string               `yaml:"key"`
	SeriesID   string               `yaml:"series_id"`
	Label      string               `yaml:"label"`
	Source     string               `yaml:"source"`
	Unit       string               `yaml:"unit"`
	Enabled    *bool                `yaml:"enabled"`
	Thresholds indicator.Thresholds `yaml:"thresholds"`
	Notes      string               `yaml:"notes"`
}

// IsEnabled reports whether the indicator should be fetched.
// Indicators are enabled unless explicitly disabled.
func (i Indicator) IsEnabled() bool {
	return i.Enabled == nil || *i.Enabled
}

// Load reads the YAML dashboard definition. Unknown fields fail the decode
// so typos in the config file surface immediately.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dashboard config: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse dashboard config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate dashboard config: %w", err)
	}

	return &cfg, nil
}

// Validate checks required fields and indicator key uniqueness.
func (c *Config) Validate() error {
	if c.Project.Name == "" {
		return fmt.Errorf("project.name is required")
	}
	if c.Output.DataDir == "" {
		return fmt.Errorf("output.data_dir is required")
	}
	if c.Output.LatestFile == "" {
		return fmt.Errorf("output.latest_file is required")
	}

	seen := make(map[string]bool, len(c.Indicators))
	for i, ind := range c.Indicators {
		if ind.Key == "" {
			return fmt.Errorf("indicators[%d]: key is required", i)
		}
		if ind.SeriesID == "" {
			return fmt.Errorf("indicators[%d] (%s): series_id is required", i, ind.Key)
		}
		if ind.Label == "" {
			return fmt.Errorf("indicators[%d] (%s): label is required", i, ind.Key)
		}
		if seen[ind.Key] {
			return fmt.Errorf("indicators[%d]: duplicate key %q", i, ind.Key)
		}
		seen[ind.Key] = true
	}

	return nil
}

// StatusLabel returns the configured display label for a signal level,
// falling back to the level name itself.
func (c *Config) StatusLabel(sig indicator.Signal) string {
	if lvl, ok := c.StatusLevels[string(sig)]; ok && lvl.Label != "" {
		return lvl.Label
	}
	return string(sig)
}
