package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Arrows/WASD  - Steer
  P/Space      - Pause
  R            - Restart (after the run ends)
  Q/Ctrl+C     - Quit

Row 0 is the bottom of the board; Up moves toward higher rows.

Examples:
  snake play
  snake play --seed 42
  snake play --rows 12 --cols 12 --margin 3
  snake play --log-file ./snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alt screen owns stdout, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickInterval = cfg.TickInterval()
	rt.Seed = flagSeed

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	journal, err := storage.Open()
	if err != nil {
		logger.Warn("run journal unavailable", "error", err)
		journal = nil
	} else {
		defer journal.Close()
	}

	return tui.Run(cfg, rt, journal, logger)
}
