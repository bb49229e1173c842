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
	"movieobserver/service"
	"movieobserver/showtime"
)

type theaterItem struct {
	theater model.Theater
}

func (t theaterItem) Title() string {
	return t.theater.Name
}

func (t theaterItem) Description() string {
	parts := []string{}
	if t.theater.Address != "" {
		parts = append(parts, t.theater.Address)
	}
	if t.theater.City != "" {
		parts = append(parts, t.theater.City)
	}
	if t.theater.HasFeature(model.FeatureOriginalLanguage) {
		parts = append(parts, "OV")
	}
	return strings.Join(parts, " • ")
}

func (t theaterItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{t.theater.Name, t.theater.Address, t.theater.City}, " "))
}

func buildTheaterItems(theaters []model.Theater) []list.Item {
	items := make([]list.Item, 0, len(theaters))
	for _, theater := range theaters {
		items = append(items, theaterItem{theater: theater})
	}
	return items
}

func (m appModel) theatersView() string {
	intro := lipgloss.NewStyle().Bold(true).Render("Movie Theaters") + "\n" +
		hint("Browse theaters and see what is playing at each location.")

	var body string
	switch {
	case m.theatersLoading:
		body = m.loadingView("Loading theaters")
	case m.theatersErr != "":
		body = errorBanner(m.theatersErr)
	case len(m.theaters) == 0:
		body = emptyMoviesView("No theaters found", "Please check back later")
	default:
		body = m.theaterList.View()
	}

	note := lipgloss.NewStyle().Bold(true).Render(content.TheaterInfoTitle) + "\n" + hint(content.TheaterInfo)
	return strings.Join([]string{intro, body, note}, "\n\n")
}

func (m appModel) handleTheatersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.String() != "enter" {
		return m, nil, false
	}
	item, ok := m.theaterList.SelectedItem().(theaterItem)
	if !ok {
		return m, nil, true
	}
	m.detail = newDetailPage(m.now())
	m.detail.theaterID = item.theater.Id
	m.detail.theaterLoading = true
	m.resize()
	m.page = pageTheaterDetail
	return m, tea.Batch(m.fetchTheaterCmd(item.theater.Id), m.spinner.Tick), true
}

// detailPage shows one theater and the movies playing there on the selected date.
type detailPage struct {
	theaterID      string
	theater        model.Theater
	theaterLoading bool
	theaterErr     string

	listing   listing
	movies    []model.Movie
	movieList list.Model
}

func newDetailPage(now time.Time) detailPage {
	l := newListing(now)
	l.loading = false
	return detailPage{
		listing:   l,
		movieList: newList("Movies"),
	}
}

// refresh narrows the loaded movies to the showtimes at this theater.
func (d *detailPage) refresh() {
	d.movies = showtime.ForTheater(d.listing.movies, d.theater.Name)
	d.movieList.SetItems(buildMovieItems(d.movies))
	d.movieList.Select(0)
}

func (m appModel) detailView() string {
	d := m.detail
	crumbs := hint("Home > Theaters > ")
	if d.theater.Name != "" {
		crumbs += d.theater.Name
	}

	switch {
	case d.theaterLoading:
		return crumbs + "\n\n" + m.loadingView("Loading theater")
	case d.theaterErr != "":
		return crumbs + "\n\n" + errorBanner(d.theaterErr)
	}

	sections := []string{
		crumbs,
		theaterCard(d.theater, m.width),
		lipgloss.NewStyle().Bold(true).Render("Movies Playing on " + d.listing.date.Format("January 2, 2006")),
		dateSelectorView(d.listing.days, d.listing.date, m.now()),
	}

	switch {
	case d.listing.loading:
		sections = append(sections, m.loadingView("Loading movies"))
	case d.listing.errText != "":
		sections = append(sections, errorBanner(d.listing.errText))
	case len(d.movies) == 0:
		sections = append(sections, emptyMoviesView(
			fmt.Sprintf("No movies available for this date at %s.", d.theater.Name),
			"Try selecting a different date",
		))
	default:
		sections = append(sections, d.movieList.View())
	}
	return strings.Join(sections, "\n\n")
}

func theaterCard(t model.Theater, width int) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Render(t.Name)}
	if t.Address != "" || t.City != "" {
		lines = append(lines, strings.Trim(t.Address+", "+t.City, ", "))
	}
	if t.Phone != "" {
		lines = append(lines, "Phone: "+t.Phone)
	}
	if t.Website != "" {
		lines = append(lines, "Website: "+t.Website)
	}
	if len(t.Features) > 0 {
		chip := lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("236"))
		chips := make([]string, 0, len(t.Features)*2)
		for _, f := range t.Features {
			style := chip
			if f == model.FeatureOriginalLanguage {
				style = chip.Foreground(lipgloss.Color("2"))
			}
			chips = append(chips, style.Render(f), " ")
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if width > 4 {
		card = card.Width(width - 4)
	}
	return card.Render(strings.Join(lines, "\n"))
}

func (m appModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if m.detail.theaterLoading || m.detail.theaterErr != "" {
		return m, nil, false
	}
	switch msg.String() {
	case "left", "h", "right", "l":
		delta := 1
		if msg.String() == "left" || msg.String() == "h" {
			delta = -1
		}
		if !m.detail.listing.shiftDate(delta) {
			return m, nil, true
		}
		generation := m.detail.listing.trigger()
		return m, tea.Batch(m.fetchTheaterMoviesCmd(generation, m.detail.listing.date), m.spinner.Tick), true
	case "enter":
		item, ok := m.detail.movieList.SelectedItem().(movieItem)
		if !ok {
			return m, nil, true
		}
		m.showtimes = newShowtimesPage(item.movie, pageTheaterDetail)
		m.page = pageShowtimes
		return m, nil, true
	}
	return m, nil, false
}

func theaterErrorMessage(err error) string {
	if service.IsNotFound(err) {
		return theaterNotFound
	}
	return theaterErrorText
}
