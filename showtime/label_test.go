package showtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"movieobserver/model"
)

func TestLabel(t *testing.T) {
	cases := []struct {
		name     string
		showtime model.Showtime
		want     string
	}{
		{name: "plain", showtime: model.Showtime{Time: "18:00"}, want: "18:00"},
		{name: "original", showtime: model.Showtime{Time: "18:00", IsOriginalLanguage: true}, want: "18:00 (OV)"},
		{name: "3d", showtime: model.Showtime{Time: "18:00", Is3D: true}, want: "18:00 3D"},
		{name: "both", showtime: model.Showtime{Time: "18:00", IsOriginalLanguage: true, Is3D: true}, want: "18:00 (OV) 3D"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Label(tc.showtime))
		})
	}
}

func TestLink(t *testing.T) {
	booked := model.Showtime{BookingURL: "https://tickets.example.com/42"}
	assert.Equal(t, "https://tickets.example.com/42", Link(booked))
	assert.True(t, Bookable(booked))

	assert.Equal(t, Placeholder, Link(model.Showtime{}))
	assert.False(t, Bookable(model.Showtime{}))
	// Only an empty URL falls back; anything else is passed through as given.
	assert.Equal(t, "  ", Link(model.Showtime{BookingURL: "  "}))
}
