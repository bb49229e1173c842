package tui

import (
	"time"

	"movieobserver/content"
	"movieobserver/model"
	"movieobserver/showtime"
)

const (
	moviesErrorText   = content.MoviesError
	theatersErrorText = content.TheatersError
	theaterErrorText  = content.TheaterError
	theaterNotFound   = content.TheaterNotFound
)

// listing is the page controller behind a date-scoped movie list. Each change of
// date or filter starts a new generation; results from older generations are dropped.
type listing struct {
	days         []time.Time
	date         time.Time
	originalOnly bool

	loading    bool
	errText    string
	movies     []model.Movie
	generation int
}

func newListing(now time.Time) listing {
	days := showtime.NextDays(now, showtime.DayCount)
	return listing{
		days:    days,
		date:    days[0],
		loading: true,
	}
}

// trigger moves the controller into loading and returns the generation the
// resulting fetch must report back with.
func (l *listing) trigger() int {
	l.generation++
	l.loading = true
	l.errText = ""
	return l.generation
}

// resolve applies a fetch result. It reports false when the result is stale.
// On error the previously loaded movies stay in place.
func (l *listing) resolve(generation int, movies []model.Movie, err error) bool {
	if generation != l.generation {
		return false
	}
	l.loading = false
	if err != nil {
		l.errText = moviesErrorText
		return true
	}
	l.movies = movies
	l.errText = ""
	return true
}

func (l listing) dayIndex() int {
	for i, d := range l.days {
		if showtime.SameDay(d, l.date) {
			return i
		}
	}
	return 0
}

// shiftDate moves the selection by delta days within the range. It reports
// whether the date changed.
func (l *listing) shiftDate(delta int) bool {
	if len(l.days) == 0 {
		return false
	}
	next := l.dayIndex() + delta
	if next < 0 {
		next = 0
	}
	if next >= len(l.days) {
		next = len(l.days) - 1
	}
	if showtime.SameDay(l.days[next], l.date) {
		return false
	}
	l.date = l.days[next]
	return true
}

func (l *listing) toggleOriginal() {
	l.originalOnly = !l.originalOnly
}
