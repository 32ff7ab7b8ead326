package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateRelativePath validates that a path is relative and stays below
// its base directory
func ValidateRelativePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if filepath.IsAbs(path) {
		return fmt.Errorf("path must be relative: %s", path)
	}

	clean := filepath.Clean(path)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path must stay inside its base directory: %s", path)
	}

	return nil
}
