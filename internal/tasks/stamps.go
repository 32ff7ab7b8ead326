package tasks

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/taski-rs/shell/pkg/shell"
)

const (
	stampDirName = ".xtask"
	stampSuffix  = ".stamp"
)

// Stamps records successful task runs as files under <target>/.xtask.
// All access goes through the Shell filesystem helpers.
type Stamps struct {
	sh  *shell.Shell
	dir string
}

// NewStamps creates a Stamps rooted in the target dir of sh
func NewStamps(sh *shell.Shell) *Stamps {
	return &Stamps{
		sh:  sh,
		dir: filepath.Join(sh.TargetDir(), stampDirName),
	}
}

// Dir returns the stamp directory
func (s *Stamps) Dir() string {
	return s.dir
}

func (s *Stamps) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", eris.Errorf("invalid stamp name: %q", name)
	}
	return filepath.Join(s.dir, name+stampSuffix), nil
}

// Mark writes the stamp for name with content. Nothing is written in
// dry-run mode.
func (s *Stamps) Mark(name, content string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if s.sh.DryRun() {
		return nil
	}

	if err := s.sh.CreateDir(s.dir, shell.CreateRecursive); err != nil {
		return eris.Wrap(err, "failed to create stamp directory")
	}
	if err := s.sh.WriteString(path, content); err != nil {
		return eris.Wrapf(err, "failed to write stamp %s", name)
	}
	return nil
}

// Exists reports whether the stamp for name is present
func (s *Stamps) Exists(name string) (bool, error) {
	path, err := s.path(name)
	if err != nil {
		return false, err
	}
	ok, err := s.sh.Exists(path)
	if err != nil {
		return false, eris.Wrapf(err, "failed to check stamp %s", name)
	}
	return ok, nil
}

// Read returns the content of the stamp for name
func (s *Stamps) Read(name string) (string, error) {
	path, err := s.path(name)
	if err != nil {
		return "", err
	}
	data, err := s.sh.Read(path)
	if err != nil {
		return "", eris.Wrapf(err, "failed to read stamp %s", name)
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the stamp for name. A missing stamp is not an error.
func (s *Stamps) Clear(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := s.sh.Remove(path, 0); err != nil {
		return eris.Wrapf(err, "failed to remove stamp %s", name)
	}
	return nil
}

// ClearAll removes the stamp directory
func (s *Stamps) ClearAll() error {
	if err := s.sh.Remove(s.dir, shell.RemoveRecursive); err != nil {
		return eris.Wrap(err, "failed to remove stamp directory")
	}
	return nil
}

// List returns the names of all present stamps, sorted
func (s *Stamps) List() ([]string, error) {
	ok, err := s.sh.Exists(s.dir)
	if err != nil {
		return nil, eris.Wrap(err, "failed to check stamp directory")
	}
	if !ok {
		return []string{}, nil
	}

	entries, err := s.sh.ReadDir(s.dir)
	if err != nil {
		return nil, eris.Wrap(err, "failed to list stamps")
	}

	names := []string{}
	for _, entry := range entries {
		if name, found := strings.CutSuffix(entry, stampSuffix); found && name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
