package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movieobserver/content"
	"movieobserver/model"
)

// Source is the read side of the showtimes API.
type Source interface {
	GetMovies(ctx context.Context, date time.Time, originalOnly bool) ([]model.Movie, error)
	GetTheaters(ctx context.Context) ([]model.Theater, error)
	GetTheater(ctx context.Context, theaterID string) (model.Theater, error)
}

type page int

const (
	pageHome page = iota
	pageTheaters
	pageTheaterDetail
	pageShowtimes
	pageAbout
	pageTerms
	pagePrivacy
	pageContact
)

// navPages is the tab order, mirroring the site navigation.
var navPages = []page{pageHome, pageTheaters, pageAbout, pageTerms, pagePrivacy, pageContact}

func (p page) title() string {
	switch p {
	case pageHome:
		return "Home"
	case pageTheaters, pageTheaterDetail:
		return "Theaters"
	case pageShowtimes:
		return "Showtimes"
	case pageAbout:
		return "About"
	case pageTerms:
		return "Terms"
	case pagePrivacy:
		return "Privacy"
	case pageContact:
		return "Contact"
	default:
		return ""
	}
}

type appModel struct {
	client Source
	logger *slog.Logger
	now    func() time.Time

	page     page
	lastPage page

	width  int
	height int

	home      listing
	movieList list.Model

	theatersLoading bool
	theatersLoaded  bool
	theatersErr     string
	theaters        []model.Theater
	theaterList     list.Model

	detail detailPage

	showtimes showtimesPage

	viewport viewport.Model
	contact  contactForm

	status  string
	spinner spinner.Model
}

type moviesMsg struct {
	generation int
	movies     []model.Movie
	err        error
}

type theatersMsg struct {
	theaters []model.Theater
	err      error
}

type theaterMsg struct {
	theaterID string
	theater   model.Theater
	err       error
}

type theaterMoviesMsg struct {
	generation int
	movies     []model.Movie
	err        error
}

type statusMsg struct {
	text string
}

// Options configures the terminal UI.
type Options struct {
	Client Source
	Logger *slog.Logger
	Now    func() time.Time
}

func New(opts Options) tea.Model {
	return newModel(opts)
}

func newModel(opts Options) appModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := appModel{
		client: opts.Client,
		logger: logger,
		now:    now,
		page:   pageHome,
		home:   newListing(now()),
	}
	m.home.trigger()

	m.movieList = newList("Movies")
	m.theaterList = newList("Theaters")
	m.detail = newDetailPage(now())
	m.viewport = viewport.New(0, 0)
	m.contact = newContactForm()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fetchMoviesCmd(m.home.generation, m.home.date, m.home.originalOnly), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next.(appModel)
		// fallthrough to component update

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoading() {
			return m, cmd
		}
		return m, nil

	case moviesMsg:
		if !m.home.resolve(msg.generation, msg.movies, msg.err) {
			m.logger.Debug("dropped stale movies response", "generation", msg.generation, "current", m.home.generation)
			return m, nil
		}
		if msg.err != nil {
			m.logger.Error("load movies failed",
				"date", m.home.date.Format(time.DateOnly),
				"original_only", m.home.originalOnly,
				"err", msg.err,
			)
			return m, nil
		}
		m.movieList.SetItems(buildMovieItems(m.home.movies))
		m.movieList.Select(0)
		return m, nil

	case theatersMsg:
		m.theatersLoading = false
		if msg.err != nil {
			m.logger.Error("load theaters failed", "err", msg.err)
			m.theatersErr = theatersErrorText
			return m, nil
		}
		m.theatersErr = ""
		m.theatersLoaded = true
		m.theaters = msg.theaters
		m.theaterList.SetItems(buildTheaterItems(msg.theaters))
		m.theaterList.Select(0)
		return m, nil

	case theaterMsg:
		if msg.theaterID != m.detail.theaterID {
			return m, nil
		}
		m.detail.theaterLoading = false
		if msg.err != nil {
			m.logger.Error("load theater failed", "theater_id", msg.theaterID, "err", msg.err)
			m.detail.theaterErr = theaterErrorMessage(msg.err)
			return m, nil
		}
		m.detail.theater = msg.theater
		generation := m.detail.listing.trigger()
		return m, tea.Batch(m.fetchTheaterMoviesCmd(generation, m.detail.listing.date), m.spinner.Tick)

	case theaterMoviesMsg:
		if !m.detail.listing.resolve(msg.generation, msg.movies, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Error("load theater movies failed",
				"theater", m.detail.theater.Name,
				"date", m.detail.listing.date.Format(time.DateOnly),
				"err", msg.err,
			)
			return m, nil
		}
		m.detail.refresh()
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, nil
	}

	var cmd tea.Cmd
	switch m.page {
	case pageHome:
		m.movieList, cmd = m.movieList.Update(msg)
	case pageTheaters:
		m.theaterList, cmd = m.theaterList.Update(msg)
	case pageTheaterDetail:
		m.detail.movieList, cmd = m.detail.movieList.Update(msg)
	case pageAbout, pageTerms, pagePrivacy:
		m.viewport, cmd = m.viewport.Update(msg)
	case pageContact:
		cmd = m.contact.updateFocused(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	var body string
	switch m.page {
	case pageHome:
		body = m.homeView()
	case pageTheaters:
		body = m.theatersView()
	case pageTheaterDetail:
		body = m.detailView()
	case pageShowtimes:
		body = m.showtimes.view(m.width)
	case pageAbout, pageTerms, pagePrivacy:
		body = m.viewport.View()
	case pageContact:
		body = m.contact.view(m.width)
	}
	return header + "\n\n" + body + "\n\n" + m.footerView()
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Render(content.SiteName)

	tabs := make([]string, 0, len(navPages))
	current := m.page.title()
	for _, p := range navPages {
		label := p.title()
		if label == current {
			tabs = append(tabs, lipgloss.NewStyle().Bold(true).Underline(true).Render(label))
			continue
		}
		tabs = append(tabs, hint(label))
	}

	hints := "ctrl+c quit • tab next page • esc back"
	switch m.page {
	case pageHome:
		hints = "ctrl+c quit • tab next page • ←/→ date • o original language • enter showtimes • / filter"
	case pageTheaters:
		hints = "ctrl+c quit • tab next page • enter view showtimes • / filter"
	case pageTheaterDetail:
		hints = "ctrl+c quit • esc theaters • ←/→ date • enter showtimes"
	case pageShowtimes:
		hints = "ctrl+c quit • esc back • ←/→ select showtime • enter book"
	case pageAbout, pageTerms, pagePrivacy:
		hints = "ctrl+c quit • tab next page • ↑/↓ scroll"
	case pageContact:
		hints = "ctrl+c quit • esc home • tab next field • enter send"
	}

	statusLine := ""
	if m.status != "" {
		statusLine = "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(m.status)
	}
	return title + "  " + strings.Join(tabs, "  ") + "\n" + hint(hints) + statusLine
}

func (m appModel) footerView() string {
	return hint(fmt.Sprintf("© %d %s. All rights reserved.", m.now().Year(), content.SiteName))
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit, true
	}
	m.status = ""

	if m.page == pageContact {
		return m.handleContactKey(msg)
	}
	if listPtr := m.activeList(); listPtr != nil && listPtr.SettingFilter() {
		return m, nil, false
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "tab":
		next, cmd := m.cyclePage(1)
		return next, cmd, true
	case "shift+tab":
		next, cmd := m.cyclePage(-1)
		return next, cmd, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil && listPtr.IsFiltered() {
			listPtr.ResetFilter()
			return m, nil, true
		}
		next, cmd := m.goBack()
		return next, cmd, true
	}

	switch m.page {
	case pageHome:
		return m.handleHomeKey(msg)
	case pageTheaters:
		return m.handleTheatersKey(msg)
	case pageTheaterDetail:
		return m.handleDetailKey(msg)
	case pageShowtimes:
		return m.handleShowtimesKey(msg)
	}
	return m, nil, false
}

func (m appModel) cyclePage(delta int) (tea.Model, tea.Cmd) {
	current := 0
	for i, p := range navPages {
		if p.title() == m.page.title() {
			current = i
			break
		}
	}
	next := (current + delta + len(navPages)) % len(navPages)
	return m.openPage(navPages[next])
}

func (m appModel) openPage(p page) (tea.Model, tea.Cmd) {
	m.lastPage = m.page
	m.page = p
	switch p {
	case pageTheaters:
		if !m.theatersLoaded && !m.theatersLoading {
			m.theatersLoading = true
			m.theatersErr = ""
			return m, tea.Batch(m.fetchTheatersCmd(), m.spinner.Tick)
		}
	case pageAbout, pageTerms, pagePrivacy:
		m.viewport.SetContent(m.staticPageContent())
		m.viewport.GotoTop()
	case pageContact:
		return m, m.contact.focus(m.contact.focused)
	}
	return m, nil
}

func (m appModel) goBack() (tea.Model, tea.Cmd) {
	switch m.page {
	case pageShowtimes:
		m.page = m.showtimes.returnPage
	case pageTheaterDetail:
		m.page = pageTheaters
	case pageHome:
		return m, nil
	default:
		m.page = pageHome
	}
	return m, nil
}

func (m *appModel) activeList() *list.Model {
	switch m.page {
	case pageHome:
		return &m.movieList
	case pageTheaters:
		return &m.theaterList
	case pageTheaterDetail:
		return &m.detail.movieList
	default:
		return nil
	}
}

func (m appModel) isLoading() bool {
	return m.home.loading || m.theatersLoading || m.detail.theaterLoading || m.detail.listing.loading
}

func (m *appModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 14
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.theaterList.SetSize(m.width, m.height-8)
	m.detail.movieList.SetSize(m.width, h-6)
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 7
	if m.page == pageAbout || m.page == pageTerms || m.page == pagePrivacy {
		m.viewport.SetContent(m.staticPageContent())
	}
}

func (m appModel) loadingView(title string) string {
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Fetching data..."))
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errorBanner(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("1")).
		Padding(0, 1).
		Render(text)
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

var openURLFn = openURL

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := openURLFn(url); err != nil {
			return statusMsg{text: fmt.Sprintf("Could not open browser: %v", err)}
		}
		return statusMsg{text: "Opened " + url}
	}
}

func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS for opening browser: %s", runtime.GOOS)
	}
}

func (m appModel) fetchMoviesCmd(generation int, date time.Time, originalOnly bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		movies, err := m.client.GetMovies(ctx, date, originalOnly)
		return moviesMsg{generation: generation, movies: movies, err: err}
	}
}

func (m appModel) fetchTheatersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		theaters, err := m.client.GetTheaters(ctx)
		return theatersMsg{theaters: theaters, err: err}
	}
}

func (m appModel) fetchTheaterCmd(theaterID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		theater, err := m.client.GetTheater(ctx, theaterID)
		return theaterMsg{theaterID: theaterID, theater: theater, err: err}
	}
}

func (m appModel) fetchTheaterMoviesCmd(generation int, date time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		movies, err := m.client.GetMovies(ctx, date, false)
		return theaterMoviesMsg{generation: generation, movies: movies, err: err}
	}
}
