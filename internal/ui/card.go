package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cyberfolio/internal/logo"
	"cyberfolio/internal/ui/textutil"
)

const (
	cardHeight     = 19 // including border
	cardLogoRows   = 6
	cardMinWidth   = 20
	cardAccessHint = "[CLICK TO ACCESS DATA] ▶"
)

// Card is one favourites entry. It flips between artwork and its list.
type Card struct {
	Title       string
	Description string
	Logo        logo.Logo
	Border      string // border colour
	Items       []string
	Flipped     bool
}

// Flippable reports whether the card has a back face.
func (c *Card) Flippable() bool {
	return len(c.Items) > 0
}

// Flip toggles the face. Cards without items never flip.
func (c *Card) Flip() {
	if c.Flippable() {
		c.Flipped = !c.Flipped
	}
}

// ListText formats the back face as plain text for the clipboard.
func (c *Card) ListText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", c.Title)
	for i, item := range c.Items {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item)
	}
	return sb.String()
}

// Render draws the card width cells wide and cardHeight rows tall.
func (c *Card) Render(width int, focused bool) string {
	border := lipgloss.RoundedBorder()
	if focused {
		border = lipgloss.ThickBorder()
	}
	inner := max(width-4, 1)
	body := c.front(inner)
	if c.Flipped {
		body = c.back(inner)
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(c.Border)).
		Padding(0, 1).
		Width(width - 2).
		Height(cardHeight - 2).
		MaxHeight(cardHeight).
		Render(body)
}

func (c *Card) front(inner int) string {
	lines := []string{
		logo.Render(c.Logo, inner, cardLogoRows),
		"",
		Styles.CardTitle.Render(textutil.Truncate(c.Title, inner)),
		Styles.Body.Width(inner).Render(c.Description),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if !c.Flippable() {
		return body
	}
	pad := cardHeight - 2 - lipgloss.Height(body) - 1
	if pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + "\n" + Styles.CardHint.Render(textutil.Truncate(cardAccessHint, inner))
}

func (c *Card) back(inner int) string {
	count := fmt.Sprintf("%d/%d", len(c.Items), len(c.Items))
	head := textutil.Spread(Styles.CardTitle.Render("TOP 10 LIST"), Styles.Accent.Render(count), inner)
	lines := []string{head, Styles.Rule.Render(strings.Repeat("─", inner))}
	for i, item := range c.Items {
		num := fmt.Sprintf("%2d. ", i+1)
		text := textutil.Truncate(item, inner-textutil.Width(num)-3)
		lines = append(lines, Styles.CardList.Render(num)+Styles.Bullet.Render(":: ")+Styles.CardList.Render(text))
	}
	lines = append(lines, "", Styles.Muted.Render(textutil.Center("-- END OF RECORD --", inner)))
	return strings.Join(lines, "\n")
}

// DefaultCards returns the favourites shown on the page.
func DefaultCards() []Card {
	return []Card{
		{
			Title:       "ANIME",
			Description: "My absolute favorite anime series list.",
			Logo:        logo.HunterXHunter,
			Border:      ColorPink,
			Items: []string{
				"Hunter x Hunter",
				"JoJo's Bizarre Adventure",
				"Gintama",
				"Monogatari Series",
				"Grand Blue",
				"Code Geass",
				"Samurai Champloo",
				"Beck: Mongolian Chop Squad",
				"FLCL",
				"Bakuman",
			},
		},
		{
			Title:       "FAV KANYE ALBUM",
			Description: "My favorite Kanye West albums.",
			Logo:        logo.DropoutBear,
			Border:      ColorCyan,
			Items: []string{
				"Ye",
				"The Life of Pablo",
				"Yeezus",
				"My Beautiful Dark Twisted Fantasy",
				"Graduation",
				"The College Dropout",
				"Late Registration",
				"808s & Heartbreak",
				"Donda",
				"Watch the Throne",
			},
		},
		{
			Title:       "FAV TV SERIES",
			Description: "The shows that rewired my brain.",
			Logo:        logo.Fsociety,
			Border:      ColorPink,
			Items: []string{
				"Mr. Robot",
				"The Sopranos",
				"The Walking Dead",
				"Avatar: The Last Airbender",
				"Invincible",
				"Chernobyl",
				"BEEF",
				"Brooklyn Nine-Nine",
				"The Big Bang Theory",
				"Modern Family",
			},
		},
	}
}
