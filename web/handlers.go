package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"movieobserver/content"
	"movieobserver/model"
	"movieobserver/service"
	"movieobserver/showtime"
)

type dayOption struct {
	Date     time.Time
	Selected bool
	Today    bool
}

type movieCard struct {
	Movie  model.Movie
	Groups showtime.ByTheater
}

// dateSelection is the shared date picker state of the home and theater pages.
type dateSelection struct {
	Days         []dayOption
	Date         time.Time
	OriginalOnly bool
}

type homeBody struct {
	Dates  dateSelection
	Error  string
	Movies []movieCard
}

type theatersBody struct {
	Error    string
	Theaters []model.Theater
}

type theaterBody struct {
	Dates        dateSelection
	Error        string
	Theater      model.Theater
	MoviesError  string
	Movies       []movieCard
	OriginalTag  string
	InfoTitle    string
	InfoFootnote string
}

type contactBody struct {
	Form     content.ContactForm
	Subjects []content.Subject
	Error    string
	Success  string
}

// selectDate resolves the date and original-language filter from the query.
// Dates outside the selectable range fall back to today.
func (s *Server) selectDate(r *http.Request) dateSelection {
	now := s.now()
	days := showtime.NextDays(now, showtime.DayCount)
	date, ok := showtime.ParseDay(r.URL.Query().Get("date"), days)
	if !ok {
		date = days[0]
	}

	options := make([]dayOption, 0, len(days))
	for _, d := range days {
		options = append(options, dayOption{
			Date:     d,
			Selected: showtime.SameDay(d, date),
			Today:    showtime.SameDay(d, now),
		})
	}

	original := r.URL.Query().Get("original")
	return dateSelection{
		Days:         options,
		Date:         date,
		OriginalOnly: original == "1" || strings.EqualFold(original, "true"),
	}
}

func buildCards(movies []model.Movie) []movieCard {
	cards := make([]movieCard, 0, len(movies))
	for _, movie := range movies {
		cards = append(cards, movieCard{Movie: movie, Groups: showtime.GroupByTheater(movie.Showtimes)})
	}
	return cards
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	sel := s.selectDate(r)
	body := homeBody{Dates: sel}

	movies, err := s.client.GetMovies(r.Context(), sel.Date, sel.OriginalOnly)
	status := http.StatusOK
	if err != nil {
		s.logger.Error("load movies failed",
			"date", sel.Date.Format(time.DateOnly),
			"original_only", sel.OriginalOnly,
			"err", err,
		)
		body.Error = content.MoviesError
		status = http.StatusBadGateway
	} else {
		body.Movies = buildCards(movies)
	}
	s.render(w, r, status, "home", "Movie Showtimes", body)
}

func (s *Server) handleTheaters(w http.ResponseWriter, r *http.Request) {
	var body theatersBody
	theaters, err := s.client.GetTheaters(r.Context())
	status := http.StatusOK
	if err != nil {
		s.logger.Error("load theaters failed", "err", err)
		body.Error = content.TheatersError
		status = http.StatusBadGateway
	} else {
		body.Theaters = theaters
	}
	s.render(w, r, status, "theaters", "Movie Theaters", body)
}

func (s *Server) handleTheater(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	body := theaterBody{
		Dates:        s.selectDate(r),
		OriginalTag:  model.FeatureOriginalLanguage,
		InfoTitle:    content.TheaterInfoTitle,
		InfoFootnote: content.TheaterInfo,
	}

	theater, err := s.client.GetTheater(r.Context(), id)
	if err != nil {
		s.logger.Error("load theater failed", "theater_id", id, "err", err)
		status := http.StatusBadGateway
		body.Error = content.TheaterError
		if service.IsNotFound(err) {
			status = http.StatusNotFound
			body.Error = content.TheaterNotFound
		}
		s.render(w, r, status, "theater", "Theater", body)
		return
	}
	body.Theater = theater

	movies, err := s.client.GetMovies(r.Context(), body.Dates.Date, false)
	if err != nil {
		s.logger.Error("load theater movies failed",
			"theater", theater.Name,
			"date", body.Dates.Date.Format(time.DateOnly),
			"err", err,
		)
		body.MoviesError = content.MoviesError
	} else {
		body.Movies = buildCards(showtime.ForTheater(movies, theater.Name))
	}
	s.render(w, r, http.StatusOK, "theater", theater.Name, body)
}

func (s *Server) handleStaticPage(w http.ResponseWriter, r *http.Request) {
	p, ok := content.Lookup(mux.Vars(r)["slug"])
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "page", p.Title, p)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	body := contactBody{Subjects: content.Subjects}
	if r.Method != http.MethodPost {
		s.render(w, r, http.StatusOK, "contact", "Contact Us", body)
		return
	}

	if err := r.ParseForm(); err != nil {
		s.logger.Warn("parse contact form failed", "err", err)
		body.Error = content.ErrUnreadable.Error()
		s.render(w, r, http.StatusBadRequest, "contact", "Contact Us", body)
		return
	}
	form := content.ContactForm{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}
	if err := form.Validate(); err != nil {
		body.Form = form
		body.Error = err.Error()
		s.render(w, r, http.StatusUnprocessableEntity, "contact", "Contact Us", body)
		return
	}

	s.logger.Info("contact message received", "subject", content.SubjectLabel(form.Subject))
	body.Success = content.ContactSuccess
	s.render(w, r, http.StatusOK, "contact", "Contact Us", body)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "notfound", "Page not found", nil)
}
