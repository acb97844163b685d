package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Reveal key.Binding
	Flag   key.Binding
	Chord  key.Binding

	NewGame    key.Binding
	Difficulty key.Binding
	CustomGame key.Binding
	Theme      key.Binding
	Pause      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Reveal: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "reveal")),
		Flag:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flag")),
		Chord:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chord")),

		NewGame:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Difficulty: key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "difficulty")),
		CustomGame: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "custom game")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is the single-line help shown under the board.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Flag, k.Chord, k.NewGame, k.Help, k.Quit}
}

// FullHelp is the expanded help toggled with "?".
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Flag, k.Chord},
		{k.NewGame, k.Difficulty, k.CustomGame},
		{k.Theme, k.Pause, k.Quit},
	}
}
