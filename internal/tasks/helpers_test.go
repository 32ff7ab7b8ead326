package tasks

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/taski-rs/shell/internal/config"
	"github.com/taski-rs/shell/internal/ui"
	"github.com/taski-rs/shell/pkg/shell"
)

func init() {
	color.NoColor = true
}

// newTestContext builds a non-interactive TaskContext for a fresh project
// in a temp dir. Everything the shell, the UI and children print ends up
// in the returned buffer.
func newTestContext(t *testing.T, extraEnv ...string) (*TaskContext, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	env := append([]string{
		"CARGO_MANIFEST_DIR=" + filepath.Join(root, "xtask"),
		"PATH=" + os.Getenv("PATH"),
	}, extraEnv...)

	var out bytes.Buffer
	sh := shell.NewWithEnv(shell.NewEnv(env...), shell.WithOutput(&out, &out))
	u := ui.NewWithWriter(&out)
	u.SetNonInteractive(true)

	return &TaskContext{
		Shell:  sh,
		Config: config.ForProject(sh.ProjectRoot()),
		UI:     u,
		Stamps: NewStamps(sh),
	}, &out
}

// fakeTool writes an executable shell script named name into a temp dir and
// returns its path. The script appends "<args>|<RUSTFLAGS>" to log and then
// exits with code.
func fakeTool(t *testing.T, name, log string, code int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}

	script := strings.Join([]string{
		"#!/bin/sh",
		`echo "noise from ` + name + `"`,
		`printf '%s|%s\n' "$*" "${RUSTFLAGS-}" >> '` + log + `'`,
		"exit " + strconv.Itoa(code),
		"",
	}, "\n")

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// readLog returns the lines a fake tool logged, or nil if it never ran.
func readLog(t *testing.T, log string) []string {
	t.Helper()
	data, err := os.ReadFile(log)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}
