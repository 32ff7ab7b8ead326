package shell

import (
	"errors"
	"io"
	"os/exec"
	"sort"

	"github.com/kballard/go-shellquote"
)

// Subprocess is a single pending invocation of an external program. Configure
// it with the chainable methods and finish with Run. It is not safe for
// concurrent use.
type Subprocess struct {
	program   string
	args      []string
	dir       string
	env       *Env
	overrides map[string]string
	stdout    io.Writer
	stderr    io.Writer
	silent    bool
	dryRun    bool
	notice    func(cmdline string)
	consumed  bool
}

// Arg appends one argument.
func (p *Subprocess) Arg(arg string) *Subprocess {
	p.args = append(p.args, arg)
	return p
}

// Args appends arguments in order.
func (p *Subprocess) Args(args ...string) *Subprocess {
	p.args = append(p.args, args...)
	return p
}

// Env sets an environment variable for the child, replacing any earlier
// value for the same key.
func (p *Subprocess) Env(key, value string) *Subprocess {
	p.overrides[key] = value
	return p
}

// Silent discards the child's stdout and stderr.
func (p *Subprocess) Silent() *Subprocess {
	p.silent = true
	return p
}

// DryRun reports whether Run will skip spawning.
func (p *Subprocess) DryRun() bool {
	return p.dryRun
}

// Program returns the program name or path.
func (p *Subprocess) Program() string {
	return p.program
}

// Argv returns a copy of the program followed by its arguments.
func (p *Subprocess) Argv() []string {
	return append([]string{p.program}, p.args...)
}

// String renders the command line with shell quoting, for display only.
func (p *Subprocess) String() string {
	return shellquote.Join(p.Argv()...)
}

// Environ returns the complete child environment as KEY=VALUE pairs: the
// snapshot with the overrides applied. Nothing else is inherited.
func (p *Subprocess) Environ() []string {
	environ := p.childEnv().Pairs()
	if environ == nil {
		// a nil Env would make os/exec inherit the parent environment
		environ = []string{}
	}
	return environ
}

// childEnv is the snapshot with the overrides applied.
func (p *Subprocess) childEnv() *Env {
	keys := make([]string, 0, len(p.overrides))
	for k := range p.overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+p.overrides[k])
	}
	return p.env.With(pairs...)
}

// Run executes the command and waits for it to finish. In dry-run mode it
// only prints a notice. A Subprocess can be run once; later calls fail
// without spawning.
func (p *Subprocess) Run() error {
	if p.consumed {
		return msgError("subprocess already run: %s", p.String())
	}
	p.consumed = true

	if p.dryRun {
		if p.notice != nil {
			p.notice(p.String())
		} else {
			writeSkipped(p.stderr, p.String())
		}
		return nil
	}

	path, err := lookPath(p.program, p.childEnv(), p.dir)
	if err != nil {
		return ioError(err)
	}

	cmd := &exec.Cmd{
		Path:  path,
		Args:  p.Argv(),
		Dir:   p.dir,
		Env:   p.Environ(),
		Stdin: nil,
	}
	if !p.silent {
		cmd.Stdout = p.stdout
		cmd.Stderr = p.stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				return exitError(0, true)
			}
			return exitError(code, false)
		}
		return ioError(err)
	}
	return nil
}
