// Package web serves the showtimes site as server-rendered HTML.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"movieobserver/content"
	"movieobserver/model"
	"movieobserver/showtime"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = []string{"home", "theaters", "theater", "page", "contact", "notfound"}

// Source is the read side of the showtimes API.
type Source interface {
	GetMovies(ctx context.Context, date time.Time, originalOnly bool) ([]model.Movie, error)
	GetTheaters(ctx context.Context) ([]model.Theater, error)
	GetTheater(ctx context.Context, theaterID string) (model.Theater, error)
}

type Server struct {
	client    Source
	logger    *slog.Logger
	now       func() time.Time
	templates map[string]*template.Template
}

func NewServer(client Source, logger *slog.Logger, now func() time.Time) (*Server, error) {
	if client == nil {
		return nil, errors.New("web: nil source")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}

	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		t, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = t
	}

	return &Server{client: client, logger: logger, now: now, templates: templates}, nil
}

func (s *Server) Handler() http.Handler {
	return s.NewRouter()
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

type layoutData struct {
	Title     string
	Active    string
	SiteName  string
	Tagline   string
	NavLinks  []content.Link
	InfoLinks []content.Link
	Year      int
	Body      any
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, title string, body any) {
	t, ok := s.templates[name]
	if !ok {
		s.logger.Error("unknown template", "template", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := layoutData{
		Title:     title,
		Active:    r.URL.Path,
		SiteName:  content.SiteName,
		Tagline:   content.Tagline,
		NavLinks:  content.NavLinks,
		InfoLinks: content.InfoLinks,
		Year:      s.now().Year(),
		Body:      body,
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.logger.Error("render template failed", "template", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

var templateFuncs = template.FuncMap{
	"label":    showtime.Label,
	"link":     showtime.Link,
	"bookable": showtime.Bookable,
	"join":     strings.Join,
	"isoDate": func(t time.Time) string {
		return t.Format(time.DateOnly)
	},
	"longDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
	"hasFeature": model.Theater.HasFeature,
	"minutes": func(d *model.Minutes) string {
		if d == nil || *d <= 0 {
			return ""
		}
		return d.String()
	},
	"rating": func(r *float64) string {
		if r == nil || *r <= 0 {
			return ""
		}
		return fmt.Sprintf("%.1f/10", *r)
	},
}
