package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieobserver/model"
)

func TestParseDateFlag(t *testing.T) {
	now := time.Date(2025, time.June, 1, 18, 45, 0, 0, time.UTC)

	got, err := parseDateFlag("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDateFlag("2025-06-04", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-04", got.Format(time.DateOnly))

	_, err = parseDateFlag("04/06/2025", now)
	assert.Error(t, err)
}

func TestRenderShowtimes(t *testing.T) {
	movies := []model.Movie{{
		Title: "Dune",
		Showtimes: []model.Showtime{
			{Time: "18:00", Theater: "Roxy", Room: "1", IsOriginalLanguage: true},
			{Time: "20:00", Theater: "Park", Room: "A", BookingURL: "https://tickets.example/2000"},
			{Time: "21:00", Theater: "Roxy", Room: "2"},
		},
	}}

	var out bytes.Buffer
	renderShowtimes(&out, movies)
	s := out.String()

	assert.Contains(t, s, "MOVIE")
	assert.Contains(t, s, "18:00 (OV)")
	assert.Contains(t, s, "https://tickets.example/2000")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("21:00")), bytes.Index(out.Bytes(), []byte("20:00")),
		"showtimes at the first theater should be listed together")
}

func TestRenderShowtimes_Empty(t *testing.T) {
	var out bytes.Buffer
	renderShowtimes(&out, nil)
	assert.Equal(t, "No movies found for this date\n", out.String())
}

func TestVersionString(t *testing.T) {
	prevVersion, prevCommit := version, commit
	t.Cleanup(func() { version, commit = prevVersion, prevCommit })

	version, commit = "1.2.0", "none"
	assert.Equal(t, "movieobserver 1.2.0", versionString())

	commit = "abc123"
	assert.Equal(t, "movieobserver 1.2.0 (abc123)", versionString())
}
