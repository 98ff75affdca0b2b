package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
	"github.com/vovakirdan/tui-starfighter/internal/games/starfighter"
)

// Model is the Bubble Tea model for the starfighter scene.
type Model struct {
	cfg      config.Config
	rt       core.RuntimeConfig
	logger   *log.Logger
	game     *starfighter.Game
	renderer *starfighter.Renderer
	screen   *core.Screen
	keys     KeyMap
	hold     *KeyHold
	help     help.Model
	theme    Theme
	clock    func() time.Time

	simTime  time.Duration
	lastTick time.Time
	paused   bool
	quitting bool
}

// NewModel creates the model and its first scene.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	theme := DefaultTheme()
	if os.Getenv("NO_COLOR") != "" {
		theme = MonochromeTheme()
	}

	m := Model{
		cfg:    cfg,
		rt:     rt,
		logger: logger,
		screen: core.NewScreen(rt.ScreenW, rt.ScreenH-hudLines),
		keys:   NewKeyMap(cfg.Controls),
		help:   help.New(),
		theme:  theme,
		clock:  time.Now,
	}
	if err := m.newScene(rt.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newScene replaces the running game with a fresh one.
func (m *Model) newScene(seed int64) error {
	game, err := starfighter.New(m.cfg, starfighter.WithSeed(seed), starfighter.WithLogger(m.logger))
	if err != nil {
		return fmt.Errorf("tui: failed to start scene: %w", err)
	}

	m.rt.Seed = seed
	m.game = game
	m.renderer = starfighter.NewRenderer(m.cfg, seed, m.screen.Width(), m.screen.Height())
	if m.hold == nil {
		m.hold = NewKeyHold(game.Input(), m.cfg.Controls.ReleaseAfter)
	} else {
		m.hold.Reset(game.Input())
	}
	m.simTime = 0
	m.lastTick = time.Time{}
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case keyMatches(msg, m.keys.Pause):
		m.paused = !m.paused
		// Keys held across a pause would fire on resume
		m.hold.Reset(m.game.Input())
		m.lastTick = time.Time{}
		return m, nil

	case keyMatches(msg, m.keys.Restart):
		seed := time.Now().UnixNano()
		if err := m.newScene(seed); err != nil {
			m.logger.Error("restart failed", "error", err)
			return m, nil
		}
		m.paused = false
		m.logger.Info("scene restarted", "seed", seed)
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if a := m.keys.Action(msg); a != core.ActionNone {
		m.hold.Press(a, m.clock())
	}
	return m, nil
}

// handleResize processes window resize events. The scene keeps running;
// only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.rt.ScreenW = msg.Width
	m.rt.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-hudLines, 0))
	m.renderer.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the scene by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameStep(m.lastTick, now)
	m.lastTick = now

	m.hold.Expire(now)

	if !m.paused {
		if dt > 0 {
			m.simTime += dt
		}
		m.game.Advance(dt, m.simTime)
	}

	return m, tickCmd(m.rt.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	m.renderer.Draw(m.screen, snap)
	if m.paused {
		drawCenteredMessage(m.screen, "PAUSED", "Press P to resume")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHUD(m.theme, snap, m.rt.Seed, m.paused),
		RenderScreen(m.screen, m.theme),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
