// snake runs the grid snake simulation in the terminal.
//
// Usage:
//
//	snake                    - Play in this terminal (same as "snake play")
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server, one game per connection
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>   - Custom config YAML
//	--rows, --cols    - Board size
//	--margin <n>      - Inset of random placement from every edge
//	--tick <ms>       - Milliseconds between ticks
//	--seed <value>    - RNG seed for reproducible runs
//	--log-file <path> - Write play logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagRows   int
	flagCols   int
	flagMargin int
	flagTickMS int
	flagSeed   int64
	flagLog    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a grid snake simulation in your terminal",
	Long: `Snake moves a body across a rectangular grid one cell per tick.
Eating the target grows the body; leaving the board or running into
the body ends the run, and filling the board wins it.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --rows 12 --cols 12 --seed 7
  snake serve --ssh :2222
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagRows, "rows", 0, "Board rows (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagCols, "cols", 0, "Board columns (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagMargin, "margin", 0, "Start margin (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick", 0, "Milliseconds between ticks (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log-file", "", "Write play logs to this file (default: discard)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies flag overrides on top.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)

	if flagRows > 0 {
		cfg.Board.Rows = flagRows
	}
	if flagCols > 0 {
		cfg.Board.Columns = flagCols
	}
	if flagMargin > 0 {
		cfg.Board.StartMargin = flagMargin
	}
	if flagTickMS > 0 {
		cfg.Timing.TickMS = flagTickMS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
