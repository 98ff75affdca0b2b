package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-starfighter/internal/core"
	"github.com/vovakirdan/tui-starfighter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Fly through the asteroid field and shoot the rocks.

Controls (default, see 'starfighter config'):
  W/Up       - Forward
  S/Down     - Back
  A/Left     - Strafe left
  D/Right    - Strafe right
  F/Space    - Fire (on release)
  P/Esc      - Pause
  R          - Restart with a new field
  Q/Ctrl+C   - Quit

Logs are discarded unless --log-file is set, so they do not disturb the
screen.

Examples:
  starfighter play
  starfighter play --field dense
  starfighter play --seed 42 --log-file ~/.starfighter/play.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := validateFPS(flagFPS); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = seedOrNow()

	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
