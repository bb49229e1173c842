package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movieobserver/content"
	"movieobserver/model"
	"movieobserver/showtime"
)

// showtimesPage is the movie card with its showtimes grouped by theater.
type showtimesPage struct {
	movie      model.Movie
	groups     showtime.ByTheater
	cursor     int
	returnPage page
}

func newShowtimesPage(movie model.Movie, returnPage page) showtimesPage {
	return showtimesPage{
		movie:      movie,
		groups:     showtime.GroupByTheater(movie.Showtimes),
		returnPage: returnPage,
	}
}

func (p showtimesPage) selected() (model.Showtime, bool) {
	all := p.groups.Flatten()
	if p.cursor < 0 || p.cursor >= len(all) {
		return model.Showtime{}, false
	}
	return all[p.cursor], true
}

func (p *showtimesPage) move(delta int) {
	total := len(p.groups.Flatten())
	if total == 0 {
		return
	}
	p.cursor = (p.cursor + delta + total) % total
}

func (p showtimesPage) view(width int) string {
	label := "No image"
	if p.movie.ImageURL != "" {
		label = "Poster"
	}
	poster := lipgloss.NewStyle().
		Width(14).
		Height(7).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(label)

	info := []string{lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Render(p.movie.Title)}
	if p.movie.HasDistinctOriginalTitle() {
		info = append(info, hint(p.movie.OriginalTitle))
	}
	if meta := movieMeta(p.movie); len(meta) > 0 {
		info = append(info, strings.Join(meta, " • "))
	}
	if p.movie.Description != "" {
		desc := lipgloss.NewStyle()
		if width > 24 {
			desc = desc.Width(width - 24)
		}
		info = append(info, "", desc.Render(p.movie.Description))
	}
	card := lipgloss.JoinHorizontal(lipgloss.Top, poster, "  ", strings.Join(info, "\n"))

	sections := []string{card, lipgloss.NewStyle().Bold(true).Render("Showtimes")}
	if len(p.groups) == 0 {
		sections = append(sections, hint(content.NoShowtimes))
		return strings.Join(sections, "\n\n")
	}

	chip := lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("236"))
	original := chip.Foreground(lipgloss.Color("2"))
	current := chip.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("63"))

	index := 0
	for _, g := range p.groups {
		chips := make([]string, 0, len(g.Showtimes)*2)
		for _, s := range g.Showtimes {
			style := chip
			if s.IsOriginalLanguage {
				style = original
			}
			if index == p.cursor {
				style = current
			}
			chips = append(chips, style.Render(showtime.Label(s)), " ")
			index++
		}
		sections = append(sections, g.Theater+"\n"+lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	}
	return strings.Join(sections, "\n\n")
}

func (m appModel) handleShowtimesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "left", "h", "up", "k":
		m.showtimes.move(-1)
		return m, nil, true
	case "right", "l", "down", "j":
		m.showtimes.move(1)
		return m, nil, true
	case "enter":
		s, ok := m.showtimes.selected()
		if !ok {
			return m, nil, true
		}
		if !showtime.Bookable(s) {
			m.status = "No booking link for " + showtime.Label(s) + " at " + s.Theater
			return m, nil, true
		}
		return m, openURLCmd(showtime.Link(s)), true
	}
	return m, nil, false
}
