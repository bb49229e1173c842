package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movieobserver/content"
	"movieobserver/model"
	"movieobserver/showtime"
)

func (m appModel) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "left", "h":
		if !m.home.shiftDate(-1) {
			return m, nil, true
		}
		return m, m.reloadHome(), true
	case "right", "l":
		if !m.home.shiftDate(1) {
			return m, nil, true
		}
		return m, m.reloadHome(), true
	case "o":
		m.home.toggleOriginal()
		return m, m.reloadHome(), true
	case "enter":
		item, ok := m.movieList.SelectedItem().(movieItem)
		if !ok {
			return m, nil, true
		}
		m.showtimes = newShowtimesPage(item.movie, pageHome)
		m.page = pageShowtimes
		return m, nil, true
	}
	return m, nil, false
}

// reloadHome starts a new fetch generation for the current date and filter.
// It must be called on a model whose changes are returned to the runtime.
func (m *appModel) reloadHome() tea.Cmd {
	generation := m.home.trigger()
	return tea.Batch(m.fetchMoviesCmd(generation, m.home.date, m.home.originalOnly), m.spinner.Tick)
}

func (m appModel) homeView() string {
	intro := lipgloss.NewStyle().Bold(true).Render("Movie Showtimes") + "\n" +
		hint("Find movies playing in theaters today, with options for original language screenings.")

	sections := []string{
		intro,
		dateSelectorView(m.home.days, m.home.date, m.now()),
		filterView(m.home.originalOnly),
	}

	switch {
	case m.home.loading:
		sections = append(sections, m.loadingView("Loading movies"))
	case m.home.errText != "":
		sections = append(sections, errorBanner(m.home.errText))
	case len(m.home.movies) == 0:
		sections = append(sections, emptyMoviesView(content.NoMovies, content.NoMoviesHint))
	default:
		sections = append(sections, m.movieList.View())
	}
	return strings.Join(sections, "\n\n")
}

func dateSelectorView(days []time.Time, selected time.Time, now time.Time) string {
	chip := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	active := chip.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("63"))
	idle := chip.Foreground(lipgloss.Color("7")).Background(lipgloss.Color("236"))

	chips := make([]string, 0, len(days))
	for _, d := range days {
		label := fmt.Sprintf("%s\n%s\n%s", d.Format("Mon"), d.Format("2"), d.Format("Jan"))
		style := idle
		if showtime.SameDay(d, selected) {
			style = active
		}
		chips = append(chips, style.Render(label), " ")
	}
	title := "Select a date"
	if showtime.SameDay(selected, now) {
		title += " • Today"
	}
	return lipgloss.NewStyle().Bold(true).Render(title) + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func filterView(originalOnly bool) string {
	box := "[ ]"
	if originalOnly {
		box = "[x]"
	}
	return lipgloss.NewStyle().Bold(true).Render("Filter Options") + "\n" +
		fmt.Sprintf("%s Show only original language screenings %s", box, hint("(o)"))
}

func emptyMoviesView(title string, sub string) string {
	return lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(title + "\n" + hint(sub))
}

type movieItem struct {
	movie model.Movie
}

func (m movieItem) Title() string {
	return m.movie.Title
}

func (m movieItem) Description() string {
	parts := movieMeta(m.movie)
	switch n := len(m.movie.Showtimes); n {
	case 0:
	case 1:
		parts = append(parts, "1 showtime")
	default:
		parts = append(parts, fmt.Sprintf("%d showtimes", n))
	}
	return strings.Join(parts, " • ")
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(strings.Join(append([]string{m.movie.Title, m.movie.OriginalTitle}, m.movie.Genres...), " "))
}

// movieMeta lists the optional movie details that are present.
func movieMeta(movie model.Movie) []string {
	var parts []string
	if movie.Duration != nil && *movie.Duration > 0 {
		parts = append(parts, movie.Duration.String())
	}
	if len(movie.Genres) > 0 {
		parts = append(parts, strings.Join(movie.Genres, ", "))
	}
	if movie.Rating != nil && *movie.Rating > 0 {
		parts = append(parts, fmt.Sprintf("★ %.1f/10", *movie.Rating))
	}
	return parts
}

func buildMovieItems(movies []model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}
