package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Settings is the typed view of the configuration used by tasks
type Settings struct {
	Profile  string   `mapstructure:"PROFILE"`
	Locked   bool     `mapstructure:"LOCKED"`
	Features []string `mapstructure:"FEATURES"`
	DistDir  string   `mapstructure:"DIST_DIR"`
}

// Settings decodes the stored values, with Defaults filling the gaps
func (c *Config) Settings() (*Settings, error) {
	values := make(map[string]string, len(Defaults))
	for k, v := range Defaults {
		values[k] = v
	}
	for k, v := range c.GetAll() {
		values[k] = v
	}

	var s Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		Result:           &s,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create settings decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", c.FilePath(), err)
	}

	features := s.Features[:0]
	for _, f := range s.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	s.Features = features

	if err := ValidateRelativePath(s.DistDir); err != nil {
		return nil, fmt.Errorf("invalid %s in %s: %w", KeyDistDir, c.FilePath(), err)
	}

	return &s, nil
}

// EnvOverrides returns the ENV_-prefixed keys as KEY=VALUE pairs with the
// prefix stripped, sorted by key
func (c *Config) EnvOverrides() []string {
	var pairs []string
	for k, v := range c.GetAll() {
		name := strings.TrimPrefix(k, EnvPrefix)
		if name == k || name == "" {
			continue
		}
		pairs = append(pairs, name+"="+v)
	}
	sort.Strings(pairs)
	return pairs
}
