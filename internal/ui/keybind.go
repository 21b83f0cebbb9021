package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings available once the overlay is gone.
// Quit also works while the overlay is up.
type keyMap struct {
	Home        key.Binding
	Favourites  key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	PrevCard    key.Binding
	NextCard    key.Binding
	Flip        key.Binding
	Copy        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Favourites: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "favourites"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		PrevCard: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "card"),
		),
		NextCard: key.NewBinding(
			key.WithKeys("right"),
		),
		Flip: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "flip"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy list"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Favourites, k.PrevCard, k.Flip, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Favourites, k.NextSection, k.PrevSection},
		{k.PrevCard, k.Flip, k.Copy, k.Quit},
	}
}
