package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
)

// Values baked in at build time, e.g.
//
//	go build -ldflags "-X github.com/taski-rs/shell/pkg/shell.BakedCargo=/opt/cargo/bin/cargo"
//
// They are consulted when the corresponding variable is missing from the
// environment snapshot.
var (
	BakedManifestDir = ""
	BakedRustc       = ""
	BakedCargo       = ""
)

const defaultRootDepth = 1

// Shell resolves the paths every xtask script needs and hands out
// filesystem helpers and Subprocess builders. It is immutable after
// construction and safe for concurrent use.
type Shell struct {
	env         *Env
	projectRoot string
	targetDir   string
	fs          afero.Fs
	stdout      io.Writer
	stderr      io.Writer
	notice      func(cmdline string)
}

// Option customizes a Shell.
type Option func(*Shell)

// WithFs replaces the filesystem used by CreateDir, Write and Remove.
func WithFs(fs afero.Fs) Option {
	return func(s *Shell) {
		s.fs = fs
	}
}

// WithOutput sets the writers children inherit for stdout and stderr. The
// dry-run notice is written to stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(s *Shell) {
		s.stdout = stdout
		s.stderr = stderr
	}
}

// WithDryRunNotice replaces the line printed for a command skipped in
// dry-run mode. The default writes "[xtask] - skipped: <cmdline>" to stderr.
func WithDryRunNotice(fn func(cmdline string)) Option {
	return func(s *Shell) {
		s.notice = fn
	}
}

// New snapshots the process environment and resolves the project layout.
// It panics when CARGO_MANIFEST_DIR is unavailable: a build script cannot do
// anything useful without a project root.
func New(opts ...Option) *Shell {
	return NewWithEnv(CaptureEnv(), opts...)
}

// NewWithEnv is like New but resolves everything from the given snapshot.
func NewWithEnv(env *Env, opts ...Option) *Shell {
	manifestDir, ok := env.Lookup(EnvManifestDir)
	if !ok {
		manifestDir = BakedManifestDir
	}
	if manifestDir == "" {
		panic("missing " + EnvManifestDir)
	}

	manifestDir, err := filepath.Abs(manifestDir)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %s: %v", EnvManifestDir, err))
	}

	depth := defaultRootDepth
	if raw, ok := env.Lookup(EnvRootDepth); ok && raw != "" {
		depth, err = strconv.Atoi(raw)
		if err != nil || depth < 1 {
			panic(fmt.Sprintf("invalid %s: %q (must be a positive integer)", EnvRootDepth, raw))
		}
	}

	projectRoot := manifestDir
	for i := 0; i < depth; i++ {
		projectRoot = filepath.Dir(projectRoot)
	}

	targetDir := filepath.Join(projectRoot, "target")
	if dir, ok := env.Lookup(EnvTargetDir); ok && dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(projectRoot, dir)
		}
		targetDir = filepath.Clean(dir)
	}

	s := &Shell{
		env:         env,
		projectRoot: projectRoot,
		targetDir:   targetDir,
		fs:          afero.NewOsFs(),
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProjectRoot returns the absolute project root.
func (s *Shell) ProjectRoot() string {
	return s.projectRoot
}

// TargetDir returns the absolute build output directory.
func (s *Shell) TargetDir() string {
	return s.targetDir
}

// Env returns the environment snapshot.
func (s *Shell) Env() *Env {
	return s.env
}

// DryRun reports whether DRY_RUN is present in the snapshot.
func (s *Shell) DryRun() bool {
	return s.env.Has(EnvDryRun)
}

// Stderr returns the writer used for the dry-run notice and inherited by
// children for their stderr.
func (s *Shell) Stderr() io.Writer {
	return s.stderr
}

// resolve makes path absolute against the project root.
func (s *Shell) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.projectRoot, path)
}

// Subprocess returns a builder for program. The child runs in the project
// root with the snapshot environment, a null stdin and the Shell's output
// writers. A bare program name is searched in the child's PATH. Dry-run is
// decided now, from the snapshot.
func (s *Shell) Subprocess(program string) *Subprocess {
	return &Subprocess{
		program:   program,
		dir:       s.projectRoot,
		env:       s.env,
		overrides: make(map[string]string),
		stdout:    s.stdout,
		stderr:    s.stderr,
		dryRun:    s.DryRun(),
		notice:    s.notice,
	}
}

// Tool resolves the path of a build tool: the envKey variable from the
// snapshot, then the baked default, then the bare name for a PATH lookup.
func (s *Shell) Tool(name, envKey, baked string) string {
	if path, ok := s.env.Lookup(envKey); ok && path != "" {
		return path
	}
	if baked != "" {
		return baked
	}
	return name
}

// Rustc returns a builder for the Rust compiler.
func (s *Shell) Rustc() *Subprocess {
	return s.Subprocess(s.Tool("rustc", EnvRustc, BakedRustc))
}

// Cargo returns a builder for cargo.
func (s *Shell) Cargo() *Subprocess {
	return s.Subprocess(s.Tool("cargo", EnvCargo, BakedCargo))
}
