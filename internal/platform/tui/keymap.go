package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// KeyMap holds the scene key bindings. Action keys come from the controls
// config; pause, restart and quit are fixed.
type KeyMap struct {
	Forward key.Binding
	Back    key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Left, k.Fire, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Back, k.Left, k.Right},
		{k.Fire, k.Pause, k.Restart, k.Quit},
	}
}

// NewKeyMap builds bindings from the controls config.
func NewKeyMap(controls config.ControlsConfig) KeyMap {
	return KeyMap{
		Forward: actionBinding(controls.Forward, "forward"),
		Back:    actionBinding(controls.Back, "back"),
		Left:    actionBinding(controls.Left, "left"),
		Right:   actionBinding(controls.Right, "right"),
		Fire:    actionBinding(controls.Fire, "fire"),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func actionBinding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names)+1)
	for _, n := range names {
		n = normalizeKey(n)
		if n == "" {
			continue
		}
		keys = append(keys, n)
		// Bubble Tea reports the space bar as " "
		if n == "space" {
			keys = append(keys, " ")
		}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Action maps a key message to a scene action. Matching ignores case, so
// shift+f fires like f.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	pressed := strings.ToLower(msg.String())

	switch {
	case matches(k.Forward, pressed):
		return core.ActionForward
	case matches(k.Back, pressed):
		return core.ActionBack
	case matches(k.Left, pressed):
		return core.ActionLeft
	case matches(k.Right, pressed):
		return core.ActionRight
	case matches(k.Fire, pressed):
		return core.ActionFire
	}
	return core.ActionNone
}

// keyMatches is key.Matches without regard to case, so caps lock does not
// disable commands.
func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return matches(b, strings.ToLower(msg.String()))
}

func matches(b key.Binding, pressed string) bool {
	return b.Enabled() && slices.Contains(b.Keys(), pressed)
}
