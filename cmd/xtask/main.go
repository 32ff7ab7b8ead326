package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/taski-rs/shell/pkg/shell"
	"github.com/taski-rs/shell/pkg/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "xtask",
	Short: "Build automation for a Rust workspace",
	Long: `xtask runs the chores of a Rust workspace: toolchain checks, builds,
tests, distribution builds and cleanup.

The project root is derived from CARGO_MANIFEST_DIR (XTASK_ROOT_DEPTH levels
up, one by default). Set DRY_RUN to print the commands instead of running them.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print error traces")
	rootCmd.AddCommand(versionCmd)
}

// exitCode mirrors the exit code of a failed child when there is one
func exitCode(err error) int {
	if code, ok := shell.ExitCode(err); ok && code != 0 {
		return code
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if verbose {
			fmt.Fprintln(os.Stderr, eris.ToString(err, true))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}
