package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movieobserver/content"
)

func (m appModel) staticPageContent() string {
	slug := strings.ToLower(m.page.title())
	p, ok := content.Lookup(slug)
	if !ok {
		return ""
	}
	return renderPage(p, m.width)
}

func renderPage(p content.Page, width int) string {
	text := lipgloss.NewStyle()
	if width > 4 {
		text = text.Width(width - 2)
	}
	heading := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Render(p.Title))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(hint(p.Description))
		b.WriteString("\n")
	}
	if p.Updated != "" {
		b.WriteString(hint("Last Updated: " + p.Updated))
		b.WriteString("\n")
	}
	for _, s := range p.Sections {
		b.WriteString("\n")
		if s.Heading != "" {
			b.WriteString(heading.Render(s.Heading))
			b.WriteString("\n")
		}
		for _, para := range s.Paragraphs {
			b.WriteString(text.Render(para))
			b.WriteString("\n")
		}
		for _, bullet := range s.Bullets {
			b.WriteString(text.Render("  • " + bullet))
			b.WriteString("\n")
		}
		for _, para := range s.Closing {
			b.WriteString(text.Render(para))
			b.WriteString("\n")
		}
	}
	return b.String()
}

const (
	contactName = iota
	contactEmail
	contactSubject
	contactMessage
	contactSubmit
	contactFields
)

type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textinput.Model
	subject int
	focused int

	status    string
	statusErr bool
}

func newContactForm() contactForm {
	input := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = 48
		return ti
	}
	return contactForm{
		name:    input("Your name", 120),
		email:   input("you@example.com", 254),
		message: input("How can we help?", 2000),
	}
}

// focus moves the cursor to field i and returns the blink command of the newly
// focused input, if any.
func (f *contactForm) focus(i int) tea.Cmd {
	f.focused = (i + contactFields) % contactFields
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch f.focused {
	case contactName:
		return f.name.Focus()
	case contactEmail:
		return f.email.Focus()
	case contactMessage:
		return f.message.Focus()
	}
	return nil
}

func (f *contactForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focused {
	case contactName:
		f.name, cmd = f.name.Update(msg)
	case contactEmail:
		f.email, cmd = f.email.Update(msg)
	case contactMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}

func (f contactForm) values() content.ContactForm {
	return content.ContactForm{
		Name:    f.name.Value(),
		Email:   f.email.Value(),
		Subject: content.Subjects[f.subject].Value,
		Message: f.message.Value(),
	}
}

// submit validates the form. A valid submission is acknowledged and the form reset.
func (f *contactForm) submit() tea.Cmd {
	if err := f.values().Validate(); err != nil {
		f.status = err.Error()
		f.statusErr = true
		return nil
	}
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.subject = 0
	f.status = content.ContactSuccess
	f.statusErr = false
	return f.focus(contactName)
}

func (f contactForm) view(width int) string {
	label := func(text string, i int) string {
		style := lipgloss.NewStyle().Bold(true)
		if f.focused == i {
			style = style.Foreground(lipgloss.Color("63"))
		}
		return style.Render(text)
	}

	intro := lipgloss.NewStyle()
	if width > 4 {
		intro = intro.Width(width - 2)
	}

	subject := content.Subjects[f.subject].Label
	if f.focused == contactSubject {
		subject = "‹ " + subject + " ›"
	}

	button := lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("236")).Render("Send Message")
	if f.focused == contactSubmit {
		button = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("63")).Render("Send Message")
	}

	rows := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Render("Contact Us"),
		intro.Render(content.ContactIntro),
		label("Name *", contactName) + "\n" + f.name.View(),
		label("Email *", contactEmail) + "\n" + f.email.View(),
		label("Subject", contactSubject) + "\n" + subject,
		label("Message *", contactMessage) + "\n" + f.message.View(),
		button,
	}
	if f.status != "" {
		color := lipgloss.Color("2")
		if f.statusErr {
			color = lipgloss.Color("1")
		}
		rows = append(rows, lipgloss.NewStyle().Foreground(color).Render(f.status))
	}
	rows = append(rows, hint("Email: "+content.ContactEmail+"  •  "+content.PostalAddress+"  •  "+content.OfficeHours))
	return strings.Join(rows, "\n\n")
}

func (m appModel) handleContactKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		m.contact.focus(contactName)
		m.page = pageHome
		return m, nil, true
	case "tab", "down":
		return m, m.contact.focus(m.contact.focused + 1), true
	case "shift+tab", "up":
		return m, m.contact.focus(m.contact.focused - 1), true
	case "left", "right":
		if m.contact.focused != contactSubject {
			return m, nil, false
		}
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		m.contact.subject = (m.contact.subject + delta + len(content.Subjects)) % len(content.Subjects)
		return m, nil, true
	case "enter":
		if m.contact.focused == contactSubmit {
			return m, m.contact.submit(), true
		}
		return m, m.contact.focus(m.contact.focused + 1), true
	}
	return m, nil, false
}
