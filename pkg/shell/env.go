package shell

import (
	"os"
	"sort"

	"mvdan.cc/sh/v3/expand"
)

// Environment variables read from the snapshot.
const (
	EnvManifestDir = "CARGO_MANIFEST_DIR"
	EnvTargetDir   = "CARGO_TARGET_DIR"
	EnvDryRun      = "DRY_RUN"
	EnvRustc       = "RUSTC"
	EnvCargo       = "CARGO"
	EnvRootDepth   = "XTASK_ROOT_DEPTH"
)

// Env is an immutable snapshot of environment variables.
type Env struct {
	environ expand.Environ
}

// CaptureEnv snapshots the environment of the current process.
func CaptureEnv() *Env {
	return NewEnv(os.Environ()...)
}

// NewEnv builds a snapshot from KEY=VALUE pairs. When a name appears more
// than once the last pair wins; entries without '=' are ignored.
func NewEnv(pairs ...string) *Env {
	return &Env{environ: expand.ListEnviron(pairs...)}
}

// Lookup returns the value of name and whether it is present.
func (e *Env) Lookup(name string) (string, bool) {
	vr := e.environ.Get(name)
	if !vr.IsSet() {
		return "", false
	}
	return vr.String(), true
}

// Has reports whether name is present, regardless of its value.
func (e *Env) Has(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// Pairs returns the snapshot as sorted KEY=VALUE strings, the form expected
// by exec.Cmd.Env.
func (e *Env) Pairs() []string {
	var pairs []string
	e.environ.Each(func(name string, vr expand.Variable) bool {
		if vr.IsSet() && vr.Exported {
			pairs = append(pairs, name+"="+vr.String())
		}
		return true
	})
	sort.Strings(pairs)
	return pairs
}

// With returns a new snapshot with the given KEY=VALUE pairs applied on top.
func (e *Env) With(pairs ...string) *Env {
	if len(pairs) == 0 {
		return e
	}
	return NewEnv(append(e.Pairs(), pairs...)...)
}
