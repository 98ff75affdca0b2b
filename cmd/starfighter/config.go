package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-starfighter/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the scene would run with, as YAML.
The config search order is --config, ~/.starfighter/configs/starfighter.yaml,
./configs/starfighter.yaml, then the built-in defaults. --field is applied
on top.

Examples:
  starfighter config > ~/.starfighter/configs/starfighter.yaml
  starfighter config --check --config ./my-starfighter.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Only validate, print nothing on success")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagCheck {
		return nil
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
