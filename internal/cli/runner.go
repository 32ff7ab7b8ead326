// Package cli wires the xtask tasks together: it builds the TaskContext,
// knows the task catalogue and runs tasks in order with stamp handling.
package cli

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"

	"github.com/taski-rs/shell/internal/config"
	"github.com/taski-rs/shell/internal/tasks"
	"github.com/taski-rs/shell/internal/ui"
	"github.com/taski-rs/shell/pkg/shell"
)

// Options configures NewTaskContext
type Options struct {
	NonInteractive bool
	Force          bool
	ExtraArgs      []string

	// Shell and UI default to shell.New() and ui.New()
	Shell *shell.Shell
	UI    *ui.UI
}

// NewTaskContext creates a TaskContext with all dependencies initialized
func NewTaskContext(opts Options) (*tasks.TaskContext, error) {
	sh := opts.Shell
	if sh == nil {
		sh = shell.New()
	}

	cfg := config.ForProject(sh.ProjectRoot())
	if err := cfg.Load(); err != nil {
		return nil, eris.Wrap(err, "failed to load config")
	}

	u := opts.UI
	if u == nil {
		u = ui.New()
	}
	u.SetNonInteractive(opts.NonInteractive)

	return &tasks.TaskContext{
		Shell:     sh,
		Config:    cfg,
		UI:        u,
		Stamps:    tasks.NewStamps(sh),
		Force:     opts.Force,
		ExtraArgs: opts.ExtraArgs,
	}, nil
}

// TaskInfo contains metadata about a task
type TaskInfo struct {
	Name        string
	ShortName   string
	Description string
	// StampName is set for tasks that are skipped once they succeeded
	StampName string
	// Pipeline lists the tasks a composite task runs instead of Run
	Pipeline []string
	Run      func(*tasks.TaskContext) error
}

// GetAllTasks returns information about all tasks in display order
func GetAllTasks() []TaskInfo {
	return []TaskInfo{
		{Name: "Toolchain Check", ShortName: "doctor", Description: "Verify rustc and cargo can be invoked", StampName: "doctor", Run: tasks.Doctor},
		{Name: "Build", ShortName: "build", Description: "Compile the workspace", Run: tasks.Build},
		{Name: "Test", ShortName: "test", Description: "Run the workspace tests", Run: tasks.Test},
		{Name: "Distribution", ShortName: "dist", Description: "Release build plus BUILD_INFO", StampName: "dist", Run: tasks.Dist},
		{Name: "Clean", ShortName: "clean", Description: "Remove the target directory", Run: tasks.Clean},
		{Name: "Continuous Integration", ShortName: "ci", Description: "doctor, build, test and dist in order", Pipeline: []string{"doctor", "build", "test", "dist"}},
	}
}

// FindTask looks a task up by short name
func FindTask(shortName string) (TaskInfo, bool) {
	for _, info := range GetAllTasks() {
		if info.ShortName == shortName {
			return info, true
		}
	}
	return TaskInfo{}, false
}

// IsTaskComplete reports whether a stamped task has a stamp
func IsTaskComplete(ctx *tasks.TaskContext, info TaskInfo) bool {
	if info.StampName == "" {
		return false
	}
	ok, err := ctx.Stamps.Exists(info.StampName)
	return err == nil && ok
}

// RunTask executes a task by short name
func RunTask(ctx *tasks.TaskContext, shortName string) error {
	info, ok := FindTask(shortName)
	if !ok {
		return eris.Errorf("unknown task: %s", shortName)
	}
	if len(info.Pipeline) > 0 {
		return RunTasks(ctx, info.Pipeline...)
	}

	ctx.UI.Header(fmt.Sprintf("Running: %s", shortName))

	if IsTaskComplete(ctx, info) && !ctx.Force {
		ctx.UI.Infof("%s already completed", info.Name)
		rerun, err := ctx.UI.PromptYesNo("Run again?", false)
		if err != nil {
			return err
		}
		if !rerun {
			ctx.UI.Skipped("")
			return nil
		}
	}

	start := time.Now()
	if err := info.Run(ctx); err != nil {
		return err
	}

	if info.StampName != "" {
		if err := ctx.Stamps.Mark(info.StampName, start.UTC().Format(time.RFC3339)+"\n"); err != nil {
			ctx.UI.Warningf("Failed to write stamp: %v", err)
		}
	}

	ctx.UI.Successf("Task '%s' completed in %s", shortName, time.Since(start).Round(time.Millisecond))
	return nil
}

// RunTasks runs tasks in order and stops at the first failure
func RunTasks(ctx *tasks.TaskContext, shortNames ...string) error {
	for _, name := range shortNames {
		if _, ok := FindTask(name); !ok {
			return eris.Errorf("unknown task: %s", name)
		}
	}

	for _, name := range shortNames {
		if err := RunTask(ctx, name); err != nil {
			return eris.Wrapf(err, "task %s failed", name)
		}
	}

	if len(shortNames) > 1 {
		ctx.UI.Success("All tasks completed successfully!")
	}
	return nil
}
