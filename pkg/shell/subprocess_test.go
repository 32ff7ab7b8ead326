package shell

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func requireSh(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("subprocess tests use sh")
	}
}

// captureShell is newTestShell with child output captured in buf.
func captureShell(t *testing.T, buf *bytes.Buffer, extraEnv ...string) *Shell {
	t.Helper()
	base := newTestShell(t, extraEnv...)
	return NewWithEnv(base.Env(), WithOutput(buf, buf))
}

func TestRunEcho(t *testing.T) {
	requireSh(t)
	var buf bytes.Buffer
	sh := captureShell(t, &buf)

	require.NoError(t, sh.Subprocess("echo").Arg("hi").Run())
	assert.Equal(t, "hi\n", buf.String())
}

func TestRunInProjectRoot(t *testing.T) {
	requireSh(t)
	var buf bytes.Buffer
	sh := captureShell(t, &buf)

	require.NoError(t, sh.Subprocess("sh").Args("-c", "pwd -P").Run())

	want, err := filepath.EvalSymlinks(sh.ProjectRoot())
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(buf.String()))
}

func TestRunNonZeroExit(t *testing.T) {
	requireSh(t)
	var buf bytes.Buffer
	sh := captureShell(t, &buf)

	err := sh.Subprocess("sh").Args("-c", "exit 7").Run()
	require.Error(t, err)

	var shErr *Error
	require.ErrorAs(t, err, &shErr)
	assert.Equal(t, KindMessage, shErr.Kind)
	assert.Contains(t, err.Error(), "7")

	code, ok := ExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 7, code)
}

func TestRunKilledBySignal(t *testing.T) {
	requireSh(t)
	var buf bytes.Buffer
	sh := captureShell(t, &buf)

	err := sh.Subprocess("sh").Args("-c", "kill -KILL $$").Run()
	require.Error(t, err)

	var shErr *Error
	require.ErrorAs(t, err, &shErr)
	assert.True(t, shErr.Signaled)
	assert.Equal(t, 0, shErr.ExitCode)
	assert.Contains(t, err.Error(), "terminated by signal")
}

func TestRunSpawnFailureIsIOError(t *testing.T) {
	var buf bytes.Buffer
	sh := captureShell(t, &buf)

	err := sh.Subprocess("xtask-no-such-program-xyz").Run()
	require.Error(t, err)
	assert.True(t, IsIO(err))
	assert.True(t, errors.Is(err, exec.ErrNotFound))
	_, ok := ExitCode(err)
	assert.False(t, ok)
}

func TestRunDryRunSpawnsNothing(t *testing.T) {
	requireSh(t)
	var buf bytes.Buffer
	sh := captureShell(t, &buf, "DRY_RUN=1")
	marker := filepath.Join(sh.ProjectRoot(), "marker")

	err := sh.Subprocess("sh").Args("-c", "touch "+marker).Run()
	require.NoError(t, err)

	assert.NoFileExists(t, marker)
	assert.Contains(t, buf.String(), "[xtask] - skipped: sh -c 'touch "+marker+"'")
}

func TestRunDryRunIgnoresFailures(t *testing.T) {
	var buf bytes.Buffer
	sh := captureShell(t, &buf, "DRY_RUN=")

	assert.NoError(t, sh.Subprocess("xtask-no-such-program-xyz").Run())
}

func TestRunDoesNotInheritLiveEnvironment(t *testing.T) {
	requireSh(t)
	var buf bytes.Buffer
	sh := captureShell(t, &buf, "SNAPSHOT_ONLY=snap", "OVERRIDDEN=snap")

	t.Setenv("XTASK_LIVE_ONLY", "leaked")

	err := sh.Subprocess("sh").
		Args("-c", `echo "${XTASK_LIVE_ONLY:-unset} $SNAPSHOT_ONLY $OVERRIDDEN $EXTRA"`).
		Env("OVERRIDDEN", "first").
		Env("OVERRIDDEN", "second").
		Env("EXTRA", "x").
		Run()
	require.NoError(t, err)

	assert.Equal(t, "unset snap second x\n", buf.String())
}

func TestEnvironIsNeverNil(t *testing.T) {
	root := t.TempDir()
	sh := NewWithEnv(NewEnv("CARGO_MANIFEST_DIR=" + filepath.Join(root, "xtask")))
	p := sh.Subprocess("true")

	environ := p.Environ()
	assert.NotNil(t, environ)
	assert.Equal(t, []string{"CARGO_MANIFEST_DIR=" + filepath.Join(root, "xtask")}, environ)
}

func TestSilentDiscardsOutput(t *testing.T) {
	requireSh(t)
	var buf bytes.Buffer
	sh := captureShell(t, &buf)

	require.NoError(t, sh.Subprocess("sh").Args("-c", "echo out; echo err >&2").Silent().Run())
	assert.Empty(t, buf.String())
}

func TestRunTwiceFails(t *testing.T) {
	requireSh(t)
	var buf bytes.Buffer
	sh := captureShell(t, &buf)
	marker := filepath.Join(sh.ProjectRoot(), "count")

	p := sh.Subprocess("sh").Args("-c", "echo x >> "+marker)
	require.NoError(t, p.Run())

	err := p.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already run")

	data, readErr := os.ReadFile(marker)
	require.NoError(t, readErr)
	assert.Equal(t, "x\n", string(data), "second Run must not spawn")
}

func TestArgsKeepOrder(t *testing.T) {
	root := t.TempDir()
	sh := NewWithEnv(NewEnv("CARGO_MANIFEST_DIR=" + filepath.Join(root, "xtask")))

	p := sh.Cargo().Arg("build").Args("--release", "--features", "a b").Arg("--locked")
	assert.Equal(t, []string{"cargo", "build", "--release", "--features", "a b", "--locked"}, p.Argv())
	assert.Equal(t, "cargo build --release --features 'a b' --locked", p.String())
}

// writeTool creates an executable script in a fresh directory and returns
// that directory.
func writeTool(t *testing.T, name, script string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return dir
}

func TestRunSearchesSnapshotPath(t *testing.T) {
	requireSh(t)
	bin := writeTool(t, "xtask-snapshot-tool", "echo from snapshot")

	var buf bytes.Buffer
	base := newTestShell(t)
	sh := NewWithEnv(base.Env().With("PATH="+bin+string(os.PathListSeparator)+os.Getenv("PATH")), WithOutput(&buf, &buf))

	require.NoError(t, sh.Subprocess("xtask-snapshot-tool").Run())
	assert.Equal(t, "from snapshot\n", buf.String())
}

func TestRunSearchesOverriddenPath(t *testing.T) {
	requireSh(t)
	first := writeTool(t, "xtask-which", "echo first")
	second := writeTool(t, "xtask-which", "echo second")

	var buf bytes.Buffer
	sh := captureShell(t, &buf, "PATH="+first)

	require.NoError(t, sh.Subprocess("xtask-which").Env("PATH", second).Run())
	assert.Equal(t, "second\n", buf.String())
}

func TestRunIgnoresLivePath(t *testing.T) {
	requireSh(t)
	bin := writeTool(t, "xtask-live-only", "echo leaked")
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	var buf bytes.Buffer
	sh := NewWithEnv(NewEnv("CARGO_MANIFEST_DIR="+filepath.Join(t.TempDir(), "xtask")), WithOutput(&buf, &buf))

	err := sh.Subprocess("xtask-live-only").Run()
	require.Error(t, err)
	assert.True(t, IsIO(err))
	assert.Empty(t, buf.String())
}

func TestRunSkipsNonExecutableOnPath(t *testing.T) {
	requireSh(t)
	plain := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(plain, "xtask-dup"), []byte("not a program"), 0o644))
	bin := writeTool(t, "xtask-dup", "echo runnable")

	var buf bytes.Buffer
	sh := captureShell(t, &buf, "PATH="+plain+string(os.PathListSeparator)+bin)

	require.NoError(t, sh.Subprocess("xtask-dup").Run())
	assert.Equal(t, "runnable\n", buf.String())
}

func TestDryRunNoticeOption(t *testing.T) {
	var buf bytes.Buffer
	var notices []string
	base := newTestShell(t, "DRY_RUN=1")
	sh := NewWithEnv(base.Env(), WithOutput(&buf, &buf), WithDryRunNotice(func(cmdline string) {
		notices = append(notices, cmdline)
	}))

	require.NoError(t, sh.Subprocess("cargo").Args("build", "--release").Run())
	assert.Equal(t, []string{"cargo build --release"}, notices)
	assert.Empty(t, buf.String())
}
