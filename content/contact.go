package content

import (
	"errors"
	"regexp"
	"strings"
)

const (
	ContactIntro   = "Have questions, suggestions, or feedback about MovieObserver? We'd love to hear from you! Please fill out the form below and we'll get back to you as soon as possible."
	ContactSuccess = "Thank you! Your message has been received."
)

var (
	ErrMissingFields = errors.New("Please fill out all required fields")
	ErrInvalidEmail  = errors.New("Please enter a valid email address")
	ErrUnreadable    = errors.New("We could not read your message. Please try again.")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Subject struct {
	Value string
	Label string
}

// Subjects are the options of the contact form; the empty value means none chosen.
var Subjects = []Subject{
	{Value: "", Label: "Select a subject"},
	{Value: "general", Label: "General Question"},
	{Value: "feedback", Label: "Feedback"},
	{Value: "bug", Label: "Report a Bug"},
	{Value: "feature", Label: "Feature Request"},
	{Value: "other", Label: "Other"},
}

// ContactForm is a message sent through the contact page. Submissions are
// acknowledged but not delivered anywhere.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate checks required fields first, then the email shape.
func (f ContactForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || strings.TrimSpace(f.Message) == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		return ErrInvalidEmail
	}
	return nil
}

// SubjectLabel returns the display label for a subject value.
func SubjectLabel(value string) string {
	for _, s := range Subjects {
		if s.Value == value {
			return s.Label
		}
	}
	return ""
}
