// Package tasks implements the xtask build tasks on top of pkg/shell.
// Each task is a plain function of a *TaskContext; ordering, stamps and
// confirmation are handled by the caller.
package tasks

import (
	"github.com/taski-rs/shell/internal/config"
	"github.com/taski-rs/shell/internal/ui"
	"github.com/taski-rs/shell/pkg/shell"
)

// TaskContext holds all dependencies needed by a task
type TaskContext struct {
	Shell  *shell.Shell
	Config *config.Config
	UI     *ui.UI
	Stamps *Stamps

	// Force skips confirmations and re-runs stamped tasks
	Force bool
	// ExtraArgs are appended to cargo invocations of build and test
	ExtraArgs []string
}

// NonInteractive reports whether prompts fall back to their defaults
func (c *TaskContext) NonInteractive() bool {
	return c.UI.IsNonInteractive()
}
