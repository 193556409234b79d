package input

import (
	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds terminal keys to menu buttons.
type KeyMap struct {
	Select   key.Binding
	Forward  key.Binding
	Increase key.Binding
	Decrease key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap follows the list: down moves to the next entry, which is
// also one step up while editing.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "forward"),
		),
		Increase: key.NewBinding(
			key.WithKeys("down", "j", "+", "="),
			key.WithHelp("↓/+", "next"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("up", "k", "-"),
			key.WithHelp("↑/-", "prev"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "left", "h", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Button translates a key press. It reports false for keys that are not
// menu buttons, including Quit.
func (k KeyMap) Button(msg tea.KeyMsg) (engine.Button, bool) {
	switch {
	case key.Matches(msg, k.Select):
		return engine.ButtonSelect, true
	case key.Matches(msg, k.Forward):
		return engine.ButtonForward, true
	case key.Matches(msg, k.Increase):
		return engine.ButtonIncrease, true
	case key.Matches(msg, k.Decrease):
		return engine.ButtonDecrease, true
	case key.Matches(msg, k.Back):
		return engine.ButtonBack, true
	}
	return engine.ButtonNone, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase, k.Select, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrease, k.Increase},
		{k.Select, k.Forward, k.Back},
		{k.Quit},
	}
}
