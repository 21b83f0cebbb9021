package ui

// Section is the content panel shown below the nav bar.
type Section int

const (
	SectionHome Section = iota
	SectionFavourites
)

// Sections lists the nav tabs in display order.
var Sections = []Section{SectionHome, SectionFavourites}

func (s Section) String() string {
	switch s {
	case SectionHome:
		return "HOME"
	case SectionFavourites:
		return "FAVOURITES"
	default:
		return "UNKNOWN"
	}
}

// Next returns the following tab, wrapping around.
func (s Section) Next() Section {
	return Sections[(int(s)+1)%len(Sections)]
}

// Prev returns the preceding tab, wrapping around.
func (s Section) Prev() Section {
	return Sections[(int(s)+len(Sections)-1)%len(Sections)]
}
