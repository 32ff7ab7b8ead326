package main

import (
	"errors"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/taski-rs/shell/internal/cli"
	"github.com/taski-rs/shell/internal/tasks"
	"github.com/taski-rs/shell/internal/ui"
)

var (
	// Flags shared by commands that run tasks
	nonInteractive bool
	force          bool
)

var runCmd = &cobra.Command{
	Use:   "run [task...] [-- cargo-args...]",
	Short: "Run tasks",
	Long: `Run one or more tasks in order, stopping at the first failure.

Tasks:
  doctor  - Verify rustc and cargo can be invoked
  build   - Compile the workspace
  test    - Run the workspace tests
  dist    - Release build plus BUILD_INFO
  clean   - Remove the target directory
  ci      - doctor, build, test and dist in order

Arguments after -- are passed to cargo by build and test.
Without tasks an interactive selection is shown.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTasks,
}

func init() {
	runCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; use defaults")
	runCmd.Flags().BoolVarP(&force, "force", "f", false, "Re-run completed tasks and skip confirmations")

	rootCmd.AddCommand(runCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	names, extra := splitAtDash(args, cmd.ArgsLenAtDash())

	ctx, err := cli.NewTaskContext(cli.Options{
		NonInteractive: nonInteractive,
		Force:          force,
		ExtraArgs:      extra,
	})
	if err != nil {
		return eris.Wrap(err, "failed to initialize task context")
	}

	if nonInteractive {
		ctx.UI.Info("Running in non-interactive mode")
	}

	if len(names) == 0 {
		names, err = selectTasks(ctx)
		if err != nil {
			return err
		}
	}

	return cli.RunTasks(ctx, names...)
}

// splitAtDash separates task names from the arguments after --
func splitAtDash(args []string, dash int) ([]string, []string) {
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

func selectTasks(ctx *tasks.TaskContext) ([]string, error) {
	all := cli.GetAllTasks()
	options := make([]string, len(all))
	for i, info := range all {
		status := " "
		if cli.IsTaskComplete(ctx, info) {
			status = "✓"
		}
		options[i] = fmt.Sprintf("%s %-7s %s", status, info.ShortName, info.Description)
	}

	indices, err := ctx.UI.PromptMultiSelect("Select tasks to run", options)
	if err != nil {
		if errors.Is(err, ui.ErrNonInteractive) {
			return nil, eris.New("no tasks given; name at least one task in non-interactive mode")
		}
		return nil, err
	}

	names := make([]string, len(indices))
	for i, idx := range indices {
		names[i] = all[idx].ShortName
	}
	return names, nil
}
