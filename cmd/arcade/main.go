// arcade plays Breakout in the terminal.
//
// Usage:
//
//	arcade play                        - Play with the Bubble Tea host
//	arcade play --backend tcell        - Play on a raw tcell screen
//	arcade demo --script run.yaml      - Replay scripted input headlessly
//	arcade config                      - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Breakout config YAML (default: search ~/.arcade/configs, ./configs)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file instead of discarding them
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Breakout in your terminal",
	Long: `A fixed-timestep Breakout for the terminal: bounce the ball off the
paddle and clear every brick.

Available commands:
  play     - Play interactively
  demo     - Replay a scripted run and print the final frame
  config   - Print the default configuration

Examples:
  arcade play
  arcade play --backend tcell
  arcade demo --script ./scripts/sweep.yaml
  arcade config > ~/.arcade/configs/breakout.yaml`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom Breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)
}
