package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/taski-rs/shell/internal/cli"
	"github.com/taski-rs/shell/internal/gitinfo"
	"github.com/taski-rs/shell/internal/tasks"
	"github.com/taski-rs/shell/pkg/shell"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show project layout and task status",
	Long:  `Display the resolved project layout, the build tools in use and the state of stamped tasks.`,
	RunE:  showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewTaskContext(cli.Options{NonInteractive: true})
	if err != nil {
		return eris.Wrap(err, "failed to initialize task context")
	}

	printStatus(ctx)
	return nil
}

// printStatus renders the status report through ctx.UI
func printStatus(ctx *tasks.TaskContext) {
	sh := ctx.Shell

	ctx.UI.Header("xtask Status")
	ctx.UI.Print("")

	ctx.UI.Infof("Project root: %s", sh.ProjectRoot())
	ctx.UI.Infof("Target dir:   %s", sh.TargetDir())
	ctx.UI.Infof("rustc:        %s", sh.Tool("rustc", shell.EnvRustc, shell.BakedRustc))
	ctx.UI.Infof("cargo:        %s", sh.Tool("cargo", shell.EnvCargo, shell.BakedCargo))
	if sh.DryRun() {
		ctx.UI.Warning("DRY_RUN is set")
	}

	if info, err := gitinfo.Describe(sh.ProjectRoot()); err != nil {
		ctx.UI.Warningf("Git:          %v", err)
	} else {
		dirty := ""
		if info.Dirty {
			dirty = " (dirty)"
		}
		ctx.UI.Infof("Git:          %s %s%s", info.Branch, info.Short, dirty)
	}
	ctx.UI.Print("")

	ctx.UI.Separator()
	ctx.UI.Info("Tasks:")
	ctx.UI.Separator()

	for _, info := range cli.GetAllTasks() {
		switch {
		case info.StampName == "":
			ctx.UI.Infof("  %-7s %s", info.ShortName, info.Description)
		case cli.IsTaskComplete(ctx, info):
			when, _ := ctx.Stamps.Read(info.StampName)
			ctx.UI.Successf("  %-7s ✓ completed %s", info.ShortName, when)
		default:
			ctx.UI.Infof("  %-7s - not completed", info.ShortName)
		}
	}
	ctx.UI.Print("")

	if ok, _ := sh.Exists(ctx.Config.FilePath()); ok {
		ctx.UI.Infof("Configuration file: %s", ctx.Config.FilePath())
	}
	if ok, _ := sh.Exists(ctx.Stamps.Dir()); ok {
		ctx.UI.Infof("Stamp directory: %s", ctx.Stamps.Dir())
	}
}
