package tasks

import (
	"github.com/rotisserie/eris"

	"github.com/taski-rs/shell/pkg/shell"
)

// Doctor verifies that the Rust toolchain can be invoked
func Doctor(c *TaskContext) error {
	c.UI.Infof("Project root: %s", c.Shell.ProjectRoot())
	c.UI.Infof("Target dir:   %s", c.Shell.TargetDir())
	if c.Shell.DryRun() {
		c.UI.Warning("DRY_RUN is set, subprocesses will not be started")
	}

	tools := []struct {
		name string
		cmd  *shell.Subprocess
	}{
		{"rustc", c.Shell.Rustc()},
		{"cargo", c.Shell.Cargo()},
	}

	var failed []string
	for _, tool := range tools {
		c.UI.Infof("Checking %s (%s)...", tool.name, tool.cmd.Program())
		if err := tool.cmd.Arg("--version").Silent().Run(); err != nil {
			c.UI.Errorf("  ✗ %s: %v", tool.name, err)
			failed = append(failed, tool.name)
			continue
		}
		c.UI.Successf("  ✓ %s is usable", tool.name)
	}

	if len(failed) > 0 {
		c.UI.Info("Install the toolchain with rustup or point RUSTC/CARGO at it")
		return eris.Errorf("toolchain check failed: %v", failed)
	}
	return nil
}
