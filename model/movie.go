package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Movie struct {
	Title         string     `json:"title"`
	OriginalTitle string     `json:"original_title,omitempty"`
	Date          string     `json:"date"`
	ImageURL      string     `json:"image_url,omitempty"`
	Description   string     `json:"description,omitempty"`
	Duration      *Minutes   `json:"duration,omitempty"`
	Genres        []string   `json:"genres,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
	Showtimes     []Showtime `json:"showtimes"`
}

type Showtime struct {
	Time               string `json:"time"`
	Theater            string `json:"theater"`
	Room               string `json:"room"`
	IsOriginalLanguage bool   `json:"is_original_language"`
	Is3D               bool   `json:"is_3d"`
	BookingURL         string `json:"booking_url,omitempty"`
}

// ScreeningDate parses the movie date as a calendar date in loc.
func (m Movie) ScreeningDate(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(time.DateOnly, m.Date, loc)
}

// HasDistinctOriginalTitle reports whether the original title is set and differs from the title.
func (m Movie) HasDistinctOriginalTitle() bool {
	return m.OriginalTitle != "" && m.OriginalTitle != m.Title
}

// UnmarshalJSON decodes a movie, dropping a duration that cannot be read as minutes.
func (m *Movie) UnmarshalJSON(data []byte) error {
	type movieAlias Movie
	aux := struct {
		*movieAlias
		Duration json.RawMessage `json:"duration,omitempty"`
	}{movieAlias: (*movieAlias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Duration = nil
	if d, ok := ParseMinutes(aux.Duration); ok {
		m.Duration = &d
	}
	return nil
}

// Minutes is a runtime in minutes. Scrapers publish it as a number, a numeric
// string or free text such as "166 min" or "2h 46m".
type Minutes int

var durationPattern = regexp.MustCompile(`^(?:(\d+)\s*h(?:ours?|rs?)?)?\s*(?:(\d+)\s*m(?:in(?:utes?|s)?)?)?$`)

// ParseMinutes reads a raw JSON duration. It reports false when the value is
// absent or not recognisable as a runtime.
func ParseMinutes(data []byte) (Minutes, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false
	}
	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return 0, false
		}
	}
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return 0, false
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if f < 0 || f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return Minutes(f), true
	}

	match := durationPattern.FindStringSubmatch(raw)
	if match == nil || (match[1] == "" && match[2] == "") {
		return 0, false
	}
	hours, _ := strconv.Atoi(match[1])
	mins, _ := strconv.Atoi(match[2])
	return Minutes(hours*60 + mins), true
}

// UnmarshalJSON leaves d unchanged when the value is not a readable runtime.
func (d *Minutes) UnmarshalJSON(data []byte) error {
	if n, ok := ParseMinutes(data); ok {
		*d = n
	}
	return nil
}

// String formats the runtime as "2h 5m".
func (d Minutes) String() string {
	return fmt.Sprintf("%dh %dm", int(d)/60, int(d)%60)
}
