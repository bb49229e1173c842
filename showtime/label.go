package showtime

import (
	"strings"

	"movieobserver/model"
)

const (
	// Placeholder is the link target of showtimes without a booking page.
	Placeholder = "#"

	originalLanguageMarker = " (OV)"
	threeDMarker           = " 3D"
)

// Label renders a showtime as its time followed by the OV and 3D markers.
func Label(s model.Showtime) string {
	var b strings.Builder
	b.WriteString(s.Time)
	if s.IsOriginalLanguage {
		b.WriteString(originalLanguageMarker)
	}
	if s.Is3D {
		b.WriteString(threeDMarker)
	}
	return b.String()
}

// Link returns the booking URL, or Placeholder when the showtime has none.
func Link(s model.Showtime) string {
	if s.BookingURL == "" {
		return Placeholder
	}
	return s.BookingURL
}

// Bookable reports whether following the showtime's link navigates anywhere.
func Bookable(s model.Showtime) bool {
	return Link(s) != Placeholder
}
