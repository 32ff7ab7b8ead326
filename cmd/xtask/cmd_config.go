package main

import (
	"fmt"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/taski-rs/shell/internal/cli"
	"github.com/taski-rs/shell/internal/common"
	"github.com/taski-rs/shell/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and change the project configuration",
	Long: fmt.Sprintf(`Read and change the settings stored in %s at the project root.

Keys:
  %-9s cargo profile (debug, release or a custom profile)
  %-9s pass --locked to cargo (true/false)
  %-9s comma separated cargo features
  %-9s directory inside the target dir for dist output
  %sNAME  environment variable NAME for cargo`,
		config.FileName, config.KeyProfile, config.KeyLocked, config.KeyFeatures, config.KeyDistDir, config.EnvPrefix),
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings, defaults included",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		values := cfg.GetAll()
		for key, value := range config.Defaults {
			if _, ok := values[key]; !ok {
				values[key] = value
			}
		}

		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%s=%s\n", key, values[key])
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.Exists(args[0]) {
			if _, known := config.Defaults[args[0]]; !known {
				return eris.Errorf("config key not found: %s", args[0])
			}
		}
		fmt.Println(cfg.GetOrDefault(args[0], ""))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := common.ValidateConfigKey(key, value); err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Set(key, value); err != nil {
			return eris.Wrapf(err, "failed to set %s", key)
		}
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Delete(args[0]); err != nil {
			return eris.Wrapf(err, "failed to unset %s", args[0])
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd, configGetCmd, configSetCmd, configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	ctx, err := cli.NewTaskContext(cli.Options{NonInteractive: true})
	if err != nil {
		return nil, eris.Wrap(err, "failed to initialize task context")
	}
	return ctx.Config, nil
}
