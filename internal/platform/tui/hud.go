package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-starfighter/internal/games/starfighter"
)

// hudLines is the number of rows taken by the HUD and the help line.
const hudLines = 2

// renderHUD draws the status line above the scene.
func renderHUD(theme Theme, snap starfighter.Snapshot, seed int64, paused bool) string {
	sep := theme.HUDSeparator.Render(" │ ")
	field := func(label string, value any) string {
		return theme.HUDLabel.Render(label+" ") + theme.HUDValue.Render(fmt.Sprint(value))
	}

	parts := []string{
		theme.HUDTitle.Render("STARFIGHTER"),
		field("Score", snap.Score),
		field("Kills", fmt.Sprintf("%d/%d", snap.Kills, len(snap.Obstacles))),
		field("Shots", len(snap.Projectiles)),
		field("Seed", seed),
	}
	if paused {
		parts = append(parts, theme.HUDStatus.Render("PAUSED"))
	}
	return strings.Join(parts, sep)
}
