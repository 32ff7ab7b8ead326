package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/taski-rs/shell/internal/cli"
)

var (
	cleanStampsOnly bool
	cleanConfig     bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build output",
	Long: `Remove the target directory, stamps included.

Use --stamps-only to forget which tasks completed while keeping the build
output, and --config to also delete the project configuration file.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanStampsOnly, "stamps-only", false, "Only clear task stamps")
	cleanCmd.Flags().BoolVarP(&cleanConfig, "config", "c", false, "Also delete the configuration file")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewTaskContext(cli.Options{Force: force})
	if err != nil {
		return eris.Wrap(err, "failed to initialize task context")
	}

	if cleanStampsOnly {
		ctx.UI.Info("Removing task stamps...")
		if err := ctx.Stamps.ClearAll(); err != nil {
			return err
		}
		ctx.UI.Success("✓ Task stamps cleared")
	} else if err := cli.RunTask(ctx, "clean"); err != nil {
		return err
	}

	if cleanConfig {
		if !force {
			ctx.UI.Warningf("Configuration file will be DELETED: %s", ctx.Config.FilePath())
			confirm, err := ctx.UI.PromptYesNo("Delete the configuration file?", false)
			if err != nil {
				return err
			}
			if !confirm {
				ctx.UI.Info("Configuration kept")
				return nil
			}
		}

		if err := ctx.Shell.Remove(ctx.Config.FilePath(), 0); err != nil {
			return eris.Wrap(err, "failed to remove config file")
		}
		ctx.UI.Success("✓ Configuration file removed")
	}

	fmt.Println()
	return nil
}
