// Package common holds input validation shared by the xtask commands.
package common

import (
	"fmt"
	"strings"

	"github.com/taski-rs/shell/internal/config"
)

// ValidateEnvName validates an environment variable name
// (letters, digits and underscores, not starting with a digit)
func ValidateEnvName(name string) error {
	if name == "" {
		return fmt.Errorf("environment variable name cannot be empty")
	}

	if name[0] >= '0' && name[0] <= '9' {
		return fmt.Errorf("environment variable name must not start with a digit: %s", name)
	}

	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_') {
			return fmt.Errorf("environment variable name contains invalid character %q: %s", c, name)
		}
	}

	return nil
}

// ValidateProfile validates a cargo profile name
func ValidateProfile(profile string) error {
	if profile == "" {
		return fmt.Errorf("profile cannot be empty")
	}

	if len(profile) > 64 {
		return fmt.Errorf("profile name too long (max 64 characters): %s", profile)
	}

	for i, c := range profile {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-') {
			return fmt.Errorf("profile contains invalid character: %s", profile)
		}
		if c == '-' && i == 0 {
			return fmt.Errorf("profile cannot start with hyphen: %s", profile)
		}
	}

	return nil
}

// ValidateConfigKey validates a key/value pair before it is stored in the
// xtask configuration
func ValidateConfigKey(key, value string) error {
	if strings.ContainsAny(key, "=\n") || strings.TrimSpace(key) != key {
		return fmt.Errorf("invalid config key: %q", key)
	}
	if strings.Contains(value, "\n") {
		return fmt.Errorf("config value for %s cannot contain newlines", key)
	}

	switch {
	case key == config.KeyProfile:
		return ValidateProfile(value)
	case key == config.KeyDistDir:
		return config.ValidateRelativePath(value)
	case key == config.KeyLocked:
		if value != "true" && value != "false" {
			return fmt.Errorf("%s must be true or false, got: %s", key, value)
		}
	case strings.HasPrefix(key, config.EnvPrefix):
		return ValidateEnvName(strings.TrimPrefix(key, config.EnvPrefix))
	case key == config.KeyFeatures:
		return nil
	default:
		return fmt.Errorf("unknown config key: %s (known: %s, %s, %s, %s, %s<NAME>)",
			key, config.KeyProfile, config.KeyLocked, config.KeyFeatures, config.KeyDistDir, config.EnvPrefix)
	}

	return nil
}
