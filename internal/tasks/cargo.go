package tasks

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/taski-rs/shell/internal/config"
	"github.com/taski-rs/shell/pkg/shell"
)

// CargoArgs builds the cargo argument list for subcommand from settings
func CargoArgs(subcommand string, s *config.Settings) []string {
	args := []string{subcommand}

	switch s.Profile {
	case "", "debug", "dev":
	case "release":
		args = append(args, "--release")
	default:
		args = append(args, "--profile", s.Profile)
	}

	if s.Locked {
		args = append(args, "--locked")
	}
	if len(s.Features) > 0 {
		args = append(args, "--features", strings.Join(s.Features, ","))
	}
	return args
}

// cargo returns a cargo builder carrying the ENV_ overrides from the config
func (c *TaskContext) cargo(args ...string) *shell.Subprocess {
	p := c.Shell.Cargo().Args(args...)
	for _, pair := range c.Config.EnvOverrides() {
		key, value, _ := strings.Cut(pair, "=")
		p.Env(key, value)
	}
	return p
}

// run echoes p and runs it. The dry-run notice replaces the echo.
func (c *TaskContext) run(p *shell.Subprocess) error {
	if !p.DryRun() {
		c.UI.Command(p.String())
	}
	if err := p.Run(); err != nil {
		return eris.Wrapf(err, "%s failed", p.Program())
	}
	return nil
}

// cargoTask runs cargo subcommand with the configured flags
func cargoTask(c *TaskContext, subcommand string, s *config.Settings) error {
	args := append(CargoArgs(subcommand, s), c.ExtraArgs...)
	return c.run(c.cargo(args...))
}
