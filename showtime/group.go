// Package showtime groups a movie's screenings by theater and formats them for display.
//
// Showtimes reference theaters by display name only, so every lookup that joins a
// showtime to a theater goes through this package.
package showtime

import "movieobserver/model"

// Group is the run of showtimes playing at one theater.
type Group struct {
	Theater   string
	Showtimes []model.Showtime
}

// ByTheater is an ordered mapping from theater name to showtimes. Groups appear in
// the order their theater was first seen.
type ByTheater []Group

// GroupByTheater groups showtimes by exact theater name. Input order is kept both
// across groups (first occurrence) and within each group. Duplicates are kept.
func GroupByTheater(showtimes []model.Showtime) ByTheater {
	groups := ByTheater{}
	index := make(map[string]int, len(showtimes))
	for _, s := range showtimes {
		i, ok := index[s.Theater]
		if !ok {
			i = len(groups)
			index[s.Theater] = i
			groups = append(groups, Group{Theater: s.Theater})
		}
		groups[i].Showtimes = append(groups[i].Showtimes, s)
	}
	return groups
}

// Theaters returns the group keys in order.
func (b ByTheater) Theaters() []string {
	names := make([]string, 0, len(b))
	for _, g := range b {
		names = append(names, g.Theater)
	}
	return names
}

// Lookup returns the showtimes for theater.
func (b ByTheater) Lookup(theater string) ([]model.Showtime, bool) {
	for _, g := range b {
		if g.Theater == theater {
			return g.Showtimes, true
		}
	}
	return nil, false
}

// Flatten concatenates the groups back into a single sequence.
func (b ByTheater) Flatten() []model.Showtime {
	var out []model.Showtime
	for _, g := range b {
		out = append(out, g.Showtimes...)
	}
	return out
}

// ForTheater returns the movies with at least one showtime at theater, each trimmed
// to the showtimes playing there. Movie order is preserved.
func ForTheater(movies []model.Movie, theater string) []model.Movie {
	var out []model.Movie
	for _, movie := range movies {
		showtimes, ok := GroupByTheater(movie.Showtimes).Lookup(theater)
		if !ok {
			continue
		}
		movie.Showtimes = showtimes
		out = append(out, movie)
	}
	return out
}
