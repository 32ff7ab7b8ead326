package tasks

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/taski-rs/shell/internal/gitinfo"
	"github.com/taski-rs/shell/pkg/shell"
	"github.com/taski-rs/shell/pkg/version"
)

// BuildInfoName is the file written into the dist directory
const BuildInfoName = "BUILD_INFO"

// DistDir returns the absolute dist directory for the current settings
func DistDir(c *TaskContext) (string, error) {
	s, err := c.Config.Settings()
	if err != nil {
		return "", eris.Wrap(err, "failed to read settings")
	}
	return distPath(c.Shell.TargetDir(), s.DistDir)
}

// distPath joins dir to target and requires the result to lie strictly
// below target, since dist clears it recursively.
func distPath(target, dir string) (string, error) {
	path := filepath.Join(target, dir)
	rel, err := filepath.Rel(target, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", eris.Errorf("dist directory %s is not inside %s", path, target)
	}
	return path, nil
}

// Dist produces an optimized build and describes it in BUILD_INFO
func Dist(c *TaskContext) error {
	s, err := c.Config.Settings()
	if err != nil {
		return eris.Wrap(err, "failed to read settings")
	}
	// dist never ships a debug build
	if s.Profile == "" || s.Profile == "debug" || s.Profile == "dev" {
		s.Profile = "release"
	}

	distDir, err := distPath(c.Shell.TargetDir(), s.DistDir)
	if err != nil {
		return err
	}
	c.UI.Infof("Preparing %s", distDir)
	if err := c.Shell.Remove(distDir, shell.RemoveRecursive); err != nil {
		return eris.Wrap(err, "failed to clear dist directory")
	}
	if err := c.Shell.CreateDir(distDir, shell.CreateRecursive); err != nil {
		return eris.Wrap(err, "failed to create dist directory")
	}

	if err := c.run(c.cargo(CargoArgs("build", s)...)); err != nil {
		return err
	}

	info, err := gitinfo.Describe(c.Shell.ProjectRoot())
	if err != nil {
		c.UI.Warningf("Could not read git metadata: %v", err)
		info = gitinfo.Info{Commit: gitinfo.Unknown, Short: gitinfo.Unknown, Branch: gitinfo.Unknown}
	}

	path := filepath.Join(distDir, BuildInfoName)
	if err := c.Shell.WriteString(path, buildInfo(info, s.Profile)); err != nil {
		return eris.Wrap(err, "failed to write build info")
	}
	c.UI.Successf("✓ Wrote %s", path)
	return nil
}

func buildInfo(info gitinfo.Info, profile string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "version=%s\n", version.Short())
	b.WriteString(info.String())
	fmt.Fprintf(&b, "profile=%s\n", profile)
	return b.String()
}
