package content

// User-facing messages shown when the showtimes API cannot serve a page.
const (
	MoviesError     = "Error loading movies. Please try again later."
	TheatersError   = "Error loading theaters. Please try again later."
	TheaterError    = "Failed to load theater information. Please try again later."
	TheaterNotFound = "Theater not found"

	NoMovies         = "No movies found for this date"
	NoMoviesHint     = "Try selecting a different date or removing filters"
	NoShowtimes      = "No showtimes available."
	TheaterInfoTitle = "About Theater Information"
	TheaterInfo      = "Showtimes and theater details are collected from the theaters' own websites. Check with the theater before your visit."
)
