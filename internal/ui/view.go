package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a self-contained region of the screen following Bubble Tea's
// Init/Update/View cycle. Update may return a different View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
