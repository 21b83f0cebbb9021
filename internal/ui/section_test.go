package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSection(t *testing.T) {
	assert.Equal(t, "HOME", SectionHome.String())
	assert.Equal(t, "FAVOURITES", SectionFavourites.String())
	assert.Equal(t, "UNKNOWN", Section(9).String())
	assert.Equal(t, SectionFavourites, SectionHome.Next())
	assert.Equal(t, SectionHome, SectionFavourites.Next())
	assert.Equal(t, SectionFavourites, SectionHome.Prev())
}
