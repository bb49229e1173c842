package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"movieobserver/content"
	"movieobserver/model"
	"movieobserver/service"
)

type moviesCall struct {
	date         time.Time
	originalOnly bool
}

type fakeSource struct {
	mu          sync.Mutex
	movies      []model.Movie
	moviesErr   error
	theaters    []model.Theater
	theatersErr error
	theater     model.Theater
	theaterErr  error
	calls       []moviesCall

	theatersCalls int
}

func (f *fakeSource) GetMovies(_ context.Context, date time.Time, originalOnly bool) ([]model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, moviesCall{date: date, originalOnly: originalOnly})
	return f.movies, f.moviesErr
}

func (f *fakeSource) GetTheaters(context.Context) ([]model.Theater, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.theatersCalls++
	return f.theaters, f.theatersErr
}

func (f *fakeSource) GetTheater(_ context.Context, theaterID string) (model.Theater, error) {
	return f.theater, f.theaterErr
}

func (f *fakeSource) movieCalls() []moviesCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]moviesCall(nil), f.calls...)
}

var testNow = time.Date(2025, time.June, 1, 15, 30, 0, 0, time.UTC)

func newTestModel(src *fakeSource) appModel {
	m := newModel(Options{
		Client: src,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:    func() time.Time { return testNow },
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(appModel)
}

// runCmd executes cmd and any batched commands, returning the produced messages
// without spinner ticks.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, runCmd(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	case nil:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

func apply(t *testing.T, m appModel, msgs []tea.Msg) (appModel, []tea.Msg) {
	t.Helper()
	var next []tea.Msg
	for _, msg := range msgs {
		updated, cmd := m.Update(msg)
		m = updated.(appModel)
		next = append(next, runCmd(cmd)...)
	}
	return m, next
}

func press(t *testing.T, m appModel, key tea.KeyMsg) (appModel, []tea.Msg) {
	t.Helper()
	return apply(t, m, []tea.Msg{key})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleMovies() []model.Movie {
	return []model.Movie{
		{
			Title: "Dune",
			Date:  "2025-06-01",
			Showtimes: []model.Showtime{
				{Time: "18:00", Theater: "Roxy", IsOriginalLanguage: true},
				{Time: "20:00", Theater: "Park", BookingURL: "https://tickets.example/park/2000"},
			},
		},
		{
			Title: "Alien",
			Date:  "2025-06-01",
			Showtimes: []model.Showtime{
				{Time: "21:00", Theater: "Park"},
			},
		},
	}
}

func TestInit_LoadsMoviesForToday(t *testing.T) {
	src := &fakeSource{movies: sampleMovies()}
	m := newTestModel(src)

	if !m.home.loading {
		t.Fatal("expected model to start loading")
	}

	m, _ = apply(t, m, runCmd(m.Init()))

	calls := src.movieCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 fetch, got %d", len(calls))
	}
	if got := calls[0].date.Format(time.DateOnly); got != "2025-06-01" {
		t.Fatalf("expected fetch for %q, got %q", "2025-06-01", got)
	}
	if calls[0].originalOnly {
		t.Fatal("expected original language filter to be off")
	}
	if m.home.loading {
		t.Fatal("expected loading to be false")
	}
	if len(m.home.movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(m.home.movies))
	}
	if got := len(m.movieList.Items()); got != 2 {
		t.Fatalf("expected 2 list items, got %d", got)
	}
}

func TestMoviesError_KeepsPreviousMovies(t *testing.T) {
	src := &fakeSource{movies: sampleMovies()}
	m := newTestModel(src)
	m, _ = apply(t, m, runCmd(m.Init()))

	src.movies = nil
	src.moviesErr = &service.APIError{StatusCode: 500, Status: "500 Internal Server Error"}
	m, msgs := press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = apply(t, m, msgs)

	if m.home.loading {
		t.Fatal("expected loading to be false")
	}
	if m.home.errText != moviesErrorText {
		t.Fatalf("expected error %q, got %q", moviesErrorText, m.home.errText)
	}
	if len(m.home.movies) != 2 {
		t.Fatalf("expected previous movies to be kept, got %d", len(m.home.movies))
	}
	if !strings.Contains(m.View(), moviesErrorText) {
		t.Fatal("expected error to be rendered")
	}
}

func TestMoviesResponse_StaleGenerationDropped(t *testing.T) {
	src := &fakeSource{}
	m := newTestModel(src)

	first := m.home.generation
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.home.generation == first {
		t.Fatal("expected date change to start a new generation")
	}

	stale := moviesMsg{generation: first, movies: sampleMovies()}
	m, _ = apply(t, m, []tea.Msg{stale})

	if len(m.home.movies) != 0 {
		t.Fatalf("expected stale response to be dropped, got %d movies", len(m.home.movies))
	}
	if !m.home.loading {
		t.Fatal("expected model to keep loading for the current request")
	}

	current := moviesMsg{generation: m.home.generation, movies: sampleMovies()[:1]}
	m, _ = apply(t, m, []tea.Msg{current})
	if len(m.home.movies) != 1 || m.home.loading {
		t.Fatalf("expected current response to apply, got %d movies loading=%v", len(m.home.movies), m.home.loading)
	}
}

func TestHomeKeys_EachChangeFetchesOnce(t *testing.T) {
	src := &fakeSource{movies: sampleMovies()}
	m := newTestModel(src)
	m, _ = apply(t, m, runCmd(m.Init()))

	m, msgs := press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = apply(t, m, msgs)
	m, msgs = press(t, m, runes("o"))
	m, _ = apply(t, m, msgs)

	calls := src.movieCalls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 fetches, got %d", len(calls))
	}
	if got := calls[1].date.Format(time.DateOnly); got != "2025-06-02" || calls[1].originalOnly {
		t.Fatalf("expected fetch for 2025-06-02 without filter, got %s original=%v", got, calls[1].originalOnly)
	}
	if got := calls[2].date.Format(time.DateOnly); got != "2025-06-02" || !calls[2].originalOnly {
		t.Fatalf("expected fetch for 2025-06-02 with filter, got %s original=%v", got, calls[2].originalOnly)
	}
}

func TestHomeKeys_FirstDayLeftDoesNothing(t *testing.T) {
	src := &fakeSource{}
	m := newTestModel(src)
	m, _ = apply(t, m, runCmd(m.Init()))

	m, msgs := press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if len(msgs) != 0 {
		t.Fatalf("expected no commands, got %d", len(msgs))
	}
	if len(src.movieCalls()) != 1 {
		t.Fatalf("expected only the initial fetch, got %d", len(src.movieCalls()))
	}
	if m.home.dayIndex() != 0 {
		t.Fatalf("expected first day to stay selected, got %d", m.home.dayIndex())
	}
}

func TestTheaters_ErrorShowsGenericMessage(t *testing.T) {
	src := &fakeSource{theatersErr: errors.New("connection refused")}
	m := newTestModel(src)

	m, msgs := press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.page != pageTheaters {
		t.Fatalf("expected theaters page, got %v", m.page)
	}
	if !m.theatersLoading {
		t.Fatal("expected theaters to be loading")
	}
	m, _ = apply(t, m, msgs)

	if m.theatersLoading {
		t.Fatal("expected theaters loading to finish")
	}
	if m.theatersErr != theatersErrorText {
		t.Fatalf("expected %q, got %q", theatersErrorText, m.theatersErr)
	}
}

func TestTheaters_EmptyListIsNotRefetched(t *testing.T) {
	src := &fakeSource{theaters: []model.Theater{}}
	m := newTestModel(src)

	m, msgs := press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = apply(t, m, msgs)
	if m.theatersLoading || len(m.theaters) != 0 {
		t.Fatalf("expected empty theaters loaded, got loading=%v count=%d", m.theatersLoading, len(m.theaters))
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, msgs = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = apply(t, m, msgs)
	if m.page != pageTheaters {
		t.Fatalf("expected theaters page, got %v", m.page)
	}
	if src.theatersCalls != 1 {
		t.Fatalf("expected 1 theaters fetch, got %d", src.theatersCalls)
	}
	if !strings.Contains(m.View(), "No theaters found") {
		t.Fatal("expected empty theaters message")
	}
}

func TestTheaters_RetriedAfterError(t *testing.T) {
	src := &fakeSource{theatersErr: errors.New("down")}
	m := newTestModel(src)

	m, msgs := press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = apply(t, m, msgs)

	src.theatersErr = nil
	src.theaters = []model.Theater{{Id: "roxy", Name: "Roxy"}}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, msgs = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = apply(t, m, msgs)

	if src.theatersCalls != 2 {
		t.Fatalf("expected 2 theaters fetches, got %d", src.theatersCalls)
	}
	if m.theatersErr != "" || len(m.theaters) != 1 {
		t.Fatalf("expected theaters after retry, got err=%q count=%d", m.theatersErr, len(m.theaters))
	}
}

func TestTheaterDetail_ShowsMoviesAtTheater(t *testing.T) {
	park := model.Theater{Id: "park", Name: "Park", Features: []string{model.FeatureOriginalLanguage}}
	src := &fakeSource{
		movies:   sampleMovies(),
		theaters: []model.Theater{park},
		theater:  park,
	}
	m := newTestModel(src)

	m, msgs := press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = apply(t, m, msgs)
	if got := len(m.theaterList.Items()); got != 1 {
		t.Fatalf("expected 1 theater item, got %d", got)
	}

	m, msgs = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.page != pageTheaterDetail || m.detail.theaterID != "park" {
		t.Fatalf("expected detail page for park, got page %v id %q", m.page, m.detail.theaterID)
	}
	m, msgs = apply(t, m, msgs)
	m, _ = apply(t, m, msgs)

	if m.detail.theater.Name != "Park" {
		t.Fatalf("expected theater Park, got %q", m.detail.theater.Name)
	}
	if len(m.detail.movies) != 2 {
		t.Fatalf("expected 2 movies at Park, got %d", len(m.detail.movies))
	}
	dune := m.detail.movies[0]
	if len(dune.Showtimes) != 1 || dune.Showtimes[0].Theater != "Park" {
		t.Fatalf("expected showtimes trimmed to Park, got %+v", dune.Showtimes)
	}
	if !strings.Contains(m.View(), "Movies Playing on June 1, 2025") {
		t.Fatal("expected detail heading to be rendered")
	}
}

func TestTheaterDetail_NotFound(t *testing.T) {
	if got := theaterErrorMessage(&service.APIError{StatusCode: 404}); got != theaterNotFound {
		t.Fatalf("expected %q, got %q", theaterNotFound, got)
	}
	if got := theaterErrorMessage(errors.New("boom")); got != theaterErrorText {
		t.Fatalf("expected %q, got %q", theaterErrorText, got)
	}
}

func TestShowtimes_OnlyBookableShowtimesOpen(t *testing.T) {
	var opened []string
	prev := openURLFn
	openURLFn = func(url string) error {
		opened = append(opened, url)
		return nil
	}
	t.Cleanup(func() { openURLFn = prev })

	src := &fakeSource{movies: sampleMovies()}
	m := newTestModel(src)
	m, _ = apply(t, m, runCmd(m.Init()))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.page != pageShowtimes {
		t.Fatalf("expected showtimes page, got %v", m.page)
	}
	if got := m.showtimes.groups.Theaters(); len(got) != 2 || got[0] != "Roxy" || got[1] != "Park" {
		t.Fatalf("expected groups [Roxy Park], got %v", got)
	}

	m, msgs := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(msgs) != 0 || len(opened) != 0 {
		t.Fatalf("expected placeholder showtime not to open, got %v", opened)
	}
	if !strings.Contains(m.status, "No booking link") {
		t.Fatalf("expected status about missing link, got %q", m.status)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, msgs = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = apply(t, m, msgs)
	if len(opened) != 1 || opened[0] != "https://tickets.example/park/2000" {
		t.Fatalf("expected booking url to open, got %v", opened)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.page != pageHome {
		t.Fatalf("expected esc to return home, got %v", m.page)
	}
}

// send applies a message without running the returned command, since text
// input commands block on cursor blinking.
func send(m appModel, msg tea.Msg) appModel {
	updated, _ := m.Update(msg)
	return updated.(appModel)
}

func TestContact_ValidatesBeforeAcknowledging(t *testing.T) {
	m := newTestModel(&fakeSource{})
	updated, _ := m.openPage(pageContact)
	m = updated.(appModel)

	m.contact.focus(contactSubmit)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.contact.status != content.ErrMissingFields.Error() || !m.contact.statusErr {
		t.Fatalf("expected missing fields error, got %q", m.contact.status)
	}

	m.contact.name.SetValue("Ada")
	m.contact.email.SetValue("ada@invalid")
	m.contact.message.SetValue("Hello")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.contact.status != content.ErrInvalidEmail.Error() {
		t.Fatalf("expected invalid email error, got %q", m.contact.status)
	}

	m.contact.email.SetValue("ada@example.com")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.contact.status != content.ContactSuccess || m.contact.statusErr {
		t.Fatalf("expected success, got %q", m.contact.status)
	}
	if m.contact.name.Value() != "" || m.contact.focused != contactName {
		t.Fatal("expected form to reset after submit")
	}
}

func TestContact_SubjectCyclesWithArrows(t *testing.T) {
	m := newTestModel(&fakeSource{})
	updated, _ := m.openPage(pageContact)
	m = updated.(appModel)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.contact.focused != contactSubject {
		t.Fatalf("expected subject focus, got %d", m.contact.focused)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.contact.values().Subject; got != "general" {
		t.Fatalf("expected subject %q, got %q", "general", got)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.contact.values().Subject; got != "other" {
		t.Fatalf("expected subject to wrap to %q, got %q", "other", got)
	}
}

func TestContact_TypingQDoesNotQuit(t *testing.T) {
	m := newTestModel(&fakeSource{})
	updated, _ := m.openPage(pageContact)
	m = updated.(appModel)

	m = send(m, runes("q"))
	if m.page != pageContact {
		t.Fatalf("expected to stay on contact page, got %v", m.page)
	}
	if got := m.contact.name.Value(); got != "q" {
		t.Fatalf("expected name %q, got %q", "q", got)
	}
}

func TestTab_CyclesNavigation(t *testing.T) {
	m := newTestModel(&fakeSource{})
	want := []page{pageTheaters, pageAbout, pageTerms, pagePrivacy, pageContact}
	for _, p := range want {
		m = send(m, tea.KeyMsg{Type: tea.KeyTab})
		if m.page != p {
			t.Fatalf("expected page %v, got %v", p, m.page)
		}
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.page != pageHome {
		t.Fatalf("expected esc to return home, got %v", m.page)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.page != pageContact {
		t.Fatalf("expected shift+tab to wrap to contact, got %v", m.page)
	}
}

func TestStaticPage_RendersContent(t *testing.T) {
	m := newTestModel(&fakeSource{})
	updated, _ := m.openPage(pageTerms)
	m = updated.(appModel)

	if !strings.Contains(m.staticPageContent(), content.Terms().Title) {
		t.Fatal("expected terms title in page content")
	}
}
