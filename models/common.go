package models

import (
	"strings"
	"time"
)

// FlashMessage represents a flash message for user feedback
type FlashMessage struct {
	Type    string `json:"type"` // "success", "error", "warning", "info"
	Message string `json:"message"`
}

// NavItem is one entry of the sidebar navigation
type NavItem struct {
	Name string
	Href string
	Icon string
}

// Navigation lists the sidebar entries in display order
var Navigation = []NavItem{
	{Name: "Overview", Href: "/dashboard", Icon: "grid"},
	{Name: "Manage Resources", Href: "/dashboard/resources", Icon: "folder"},
	{Name: "Manage Influencers", Href: "/dashboard/influencers", Icon: "users"},
	{Name: "Activity Logs", Href: "/dashboard/logs", Icon: "file"},
	{Name: "Settings", Href: "/dashboard/settings", Icon: "settings"},
}

// PageTitle derives the header title from a request path.
// "/dashboard/activity-logs" becomes "Activity Logs".
func PageTitle(path string) string {
	path = strings.TrimRight(path, "/")
	if path == "" || path == "/dashboard" {
		return "Dashboard"
	}

	last := path[strings.LastIndex(path, "/")+1:]
	words := strings.Split(last, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	title := strings.Join(words, " ")
	if strings.TrimSpace(title) == "" {
		return "Dashboard"
	}
	return title
}

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// ParseDate parses a YYYY-MM-DD string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// ForField returns the message recorded for a field, or "" when it is valid
func (ve ValidationErrors) ForField(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

func (ve ValidationErrors) Error() string {
	return strings.Join(ve.GetMessages(), ", ")
}
