package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cardGap         = 2
	favouritesTitle = "MY TOP TEN"
	// favouritesHeader is the number of rows above the cards.
	favouritesHeader = 2
)

// FavouritesView shows the flip cards.
type FavouritesView struct {
	Cards   []Card
	Focused int
	width   int
}

// Ensure FavouritesView implements View.
var _ View = (*FavouritesView)(nil)

// NewFavouritesView creates the view with the default cards.
func NewFavouritesView() *FavouritesView {
	return &FavouritesView{Cards: DefaultCards()}
}

// Init implements View.
func (f *FavouritesView) Init() tea.Cmd { return nil }

// SetWidth sets the available width in cells.
func (f *FavouritesView) SetWidth(w int) { f.width = w }

// Update implements View.
func (f *FavouritesView) Update(msg tea.Msg) (View, tea.Cmd) {
	return f, nil
}

// FocusNext moves focus one card right, stopping at the last card.
func (f *FavouritesView) FocusNext() {
	if f.Focused < len(f.Cards)-1 {
		f.Focused++
	}
}

// FocusPrev moves focus one card left, stopping at the first card.
func (f *FavouritesView) FocusPrev() {
	if f.Focused > 0 {
		f.Focused--
	}
}

// FlipFocused flips the focused card.
func (f *FavouritesView) FlipFocused() {
	if c := f.FocusedCard(); c != nil {
		c.Flip()
	}
}

// FocusedCard returns the focused card or nil when there are none.
func (f *FavouritesView) FocusedCard() *Card {
	if f.Focused < 0 || f.Focused >= len(f.Cards) {
		return nil
	}
	return &f.Cards[f.Focused]
}

// cardWidth returns the width of each card for the current view width.
func (f *FavouritesView) cardWidth() int {
	n := len(f.Cards)
	if n == 0 {
		return 0
	}
	return max(cardMinWidth, (f.width-cardGap*(n-1))/n)
}

// CardAt returns the index of the card under local cell (x, y), or -1.
func (f *FavouritesView) CardAt(x, y int) int {
	if y < favouritesHeader || y >= favouritesHeader+cardHeight {
		return -1
	}
	cw := f.cardWidth()
	for i := range f.Cards {
		left := i * (cw + cardGap)
		if x >= left && x < left+cw {
			return i
		}
	}
	return -1
}

// ClickCard focuses and flips the card at (x, y). Returns false on a miss.
func (f *FavouritesView) ClickCard(x, y int) bool {
	i := f.CardAt(x, y)
	if i < 0 {
		return false
	}
	f.Focused = i
	f.Cards[i].Flip()
	return true
}

// View implements View.
func (f *FavouritesView) View() string {
	title := Styles.Title.Render(favouritesTitle)
	side := max(0, (f.width-lipgloss.Width(title)-2)/2)
	header := Styles.Bullet.Render(strings.Repeat("─", side)) + " " + title + " " +
		Styles.Accent.Faint(true).Render(strings.Repeat("─", side))

	cw := f.cardWidth()
	cards := make([]string, 0, 2*len(f.Cards))
	for i := range f.Cards {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		cards = append(cards, f.Cards[i].Render(cw, i == f.Focused))
	}
	return header + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
