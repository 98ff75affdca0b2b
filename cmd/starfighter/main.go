// starfighter is a terminal space-combat scene: fly a craft through an
// asteroid field and shoot it apart.
//
// Usage:
//
//	starfighter play            - Play in the terminal
//	starfighter sim             - Run the scene headless with an autopilot
//	starfighter config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for a reproducible field
//	--config <path>     - Load a custom configuration YAML
//	--field <preset>    - Field preset: sparse, normal, dense
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagField    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfighter",
	Short: "Starfighter - Space combat in your terminal",
	Long: `Starfighter puts a small craft in the middle of an asteroid field.
Strafe around and laser the rocks for points.

Available commands:
  play     - Play in the terminal
  sim      - Run headless with an autopilot and print a summary
  config   - Print or check the effective configuration

Examples:
  starfighter play
  starfighter play --field dense --seed 42
  starfighter sim --duration 30s --seed 7
  starfighter config --check --config ./my-starfighter.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagField, "field", "", "Field preset: sparse, normal, dense")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
