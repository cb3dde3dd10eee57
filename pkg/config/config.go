// Package config loads the optional .merge-engine.toml resolver
// threshold overrides. A missing file is not an error: it resolves to
// the package's zero-value Config, which the resolver pipeline in turn
// fills in with its own defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/odvcencio/mergeengine/pkg/resolve"
)

// Config mirrors resolve.PipelineConfig's fields as overridable TOML
// keys. A zero field means "use the pipeline default".
type Config struct {
	WhitespaceConfidence   float64 `toml:"whitespace_confidence"`
	PrefixSuffixConfidence float64 `toml:"prefix_suffix_confidence"`
	ListUnionConfidence    float64 `toml:"list_union_confidence"`
	StructuralConfidence   float64 `toml:"structural_confidence"`
	SearchMinConfidence    float64 `toml:"search_min_confidence"`
	SearchMaxConfidence    float64 `toml:"search_max_confidence"`
	SearchThreshold        float64 `toml:"search_threshold"`
}

// Load reads path. Missing config returns an empty Config, not an
// error; a present-but-malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("read config: parse: %w", err)
	}
	return &cfg, nil
}

// PipelineConfig converts the loaded overrides to a
// resolve.PipelineConfig; zero fields fall through to the pipeline's
// own defaults.
func (c *Config) PipelineConfig() resolve.PipelineConfig {
	if c == nil {
		return resolve.PipelineConfig{}
	}
	return resolve.PipelineConfig{
		WhitespaceConfidence:   c.WhitespaceConfidence,
		PrefixSuffixConfidence: c.PrefixSuffixConfidence,
		ListUnionConfidence:    c.ListUnionConfidence,
		StructuralConfidence:   c.StructuralConfidence,
		SearchMinConfidence:    c.SearchMinConfidence,
		SearchMaxConfidence:    c.SearchMaxConfidence,
		SearchThreshold:        c.SearchThreshold,
	}
}
