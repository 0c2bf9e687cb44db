package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// KeyMap holds the key bindings used while a game runs. It implements
// help.KeyMap so the footer can list the active bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Slice      key.Binding // Help entry only; slicing is done with the mouse
	Pause      key.Binding
	Restart    key.Binding
	Share      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the bindings for a game played with the given input.
// Movement keys are disabled for pointer games.
func DefaultKeyMap(input core.InputKind) KeyMap {
	km := KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Slice: key.NewBinding(
			key.WithKeys("mouse"),
			key.WithHelp("click/drag", "slice"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	buttons := input == core.InputButtons
	km.Left.SetEnabled(buttons)
	km.Right.SetEnabled(buttons)
	km.Jump.SetEnabled(buttons)
	km.Slice.SetEnabled(!buttons)

	// Restart and share only make sense once the game has ended
	km.Restart.SetEnabled(false)
	km.Share.SetEnabled(false)
	return km
}

// SetGameOver switches the bindings between play and the end screen.
func (km *KeyMap) SetGameOver(over bool, input core.InputKind) {
	playing := !over
	buttons := input == core.InputButtons
	km.Left.SetEnabled(playing && buttons)
	km.Right.SetEnabled(playing && buttons)
	km.Jump.SetEnabled(playing && buttons)
	km.Slice.SetEnabled(playing && !buttons)
	km.Pause.SetEnabled(playing)
	km.Restart.SetEnabled(over)
	km.Share.SetEnabled(over)
}

// Action translates a key message to a game action. Disabled bindings
// never match.
func (km KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Left):
		return core.ActionLeft
	case key.Matches(msg, km.Right):
		return core.ActionRight
	case key.Matches(msg, km.Jump):
		return core.ActionJump
	case key.Matches(msg, km.Pause):
		return core.ActionPause
	case key.Matches(msg, km.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.Share):
		return core.ActionShare
	}
	return core.ActionNone
}

// ShortHelp returns the bindings shown in the footer.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Jump, km.Slice, km.Pause, km.Restart, km.Share, km.Quit}
}

// FullHelp returns all bindings grouped by purpose.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Jump, km.Slice},
		{km.Pause, km.Restart, km.Share},
		{km.Screenshot, km.Quit},
	}
}

// MenuKeyMap holds the bindings of the game picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the game picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown under the menu.
func (km MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Select, km.Quit}
}

// FullHelp returns all menu bindings.
func (km MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}
