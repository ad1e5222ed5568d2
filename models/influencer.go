package models

import (
	"strconv"
	"strings"
	"time"
)

// Platform is the social network an influencer publishes on
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformYouTube   Platform = "YouTube"
	PlatformTwitter   Platform = "Twitter"
)

// Platforms lists every supported platform in display order
var Platforms = []Platform{PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformTwitter}

// Valid reports whether p is one of the supported platforms
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// InfluencerStatus is the activation state of an influencer
type InfluencerStatus string

const (
	StatusActive   InfluencerStatus = "active"
	StatusInactive InfluencerStatus = "inactive"
)

// InfluencerStatuses lists the statuses offered by the status filter
var InfluencerStatuses = []InfluencerStatus{StatusActive, StatusInactive}

// Toggled returns the opposite status
func (s InfluencerStatus) Toggled() InfluencerStatus {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// ActionLabel is the label of the row button that toggles s
func (s InfluencerStatus) ActionLabel() string {
	if s == StatusActive {
		return "Deactivate"
	}
	return "Activate"
}

// InfluencerCategories is the vocabulary used by mock data and the category filter
var InfluencerCategories = []string{"Tech", "Fashion", "Beauty", "Lifestyle", "Gaming", "Food", "Travel", "Fitness"}

// Influencer represents a marketing partner managed from the dashboard
type Influencer struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Platform   Platform         `json:"platform"`
	Handle     string           `json:"handle"`
	Followers  int              `json:"followers"`
	Engagement string           `json:"engagement"`
	Location   string           `json:"location"`
	Categories []string         `json:"categories"`
	JoinDate   time.Time        `json:"join_date"`
	Status     InfluencerStatus `json:"status"`
}

// Clone returns a deep copy so callers never share the category slice
func (i Influencer) Clone() Influencer {
	i.Categories = append([]string(nil), i.Categories...)
	return i
}

// EngagementRate parses the engagement percentage ("3.4%" -> 3.4).
// Unparseable values count as zero.
func (i Influencer) EngagementRate() float64 {
	rate, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(i.Engagement, "%")), 64)
	if err != nil {
		return 0
	}
	return rate
}

// FormattedJoinDate returns the join date in YYYY-MM-DD format
func (i Influencer) FormattedJoinDate() string {
	return FormatDate(i.JoinDate)
}

// IsActive reports whether the influencer is active
func (i Influencer) IsActive() bool {
	return i.Status == StatusActive
}

// InfluencerForm represents form data for creating an influencer
type InfluencerForm struct {
	Name       string `json:"name" schema:"name"`
	Email      string `json:"email" schema:"email"`
	Phone      string `json:"phone" schema:"phone"`
	Platform   string `json:"platform" schema:"platform"`
	Handle     string `json:"handle" schema:"handle"`
	Categories string `json:"categories" schema:"categories"`
}

// Validate checks that every required field is present
func (f *InfluencerForm) Validate() ValidationErrors {
	var errors ValidationErrors

	required := []struct {
		field string
		label string
		value string
	}{
		{"name", "Full name", f.Name},
		{"email", "Email", f.Email},
		{"phone", "Phone number", f.Phone},
		{"platform", "Platform", f.Platform},
		{"handle", "Social media handle", f.Handle},
		{"categories", "Categories", f.Categories},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errors = append(errors, ValidationError{Field: r.field, Message: r.label + " is required"})
		}
	}

	if strings.TrimSpace(f.Platform) != "" && !Platform(strings.TrimSpace(f.Platform)).Valid() {
		errors = append(errors, ValidationError{Field: "platform", Message: "Platform must be one of Instagram, TikTok, YouTube, Twitter"})
	}

	if strings.TrimSpace(f.Categories) != "" && len(ParseCategories(f.Categories)) == 0 {
		errors = append(errors, ValidationError{Field: "categories", Message: "Categories must name at least one category"})
	}

	return errors
}

// ParseCategories splits comma separated category text into trimmed, non-empty names
func ParseCategories(text string) []string {
	categories := []string{}
	for _, part := range strings.Split(text, ",") {
		if name := strings.TrimSpace(part); name != "" {
			categories = append(categories, name)
		}
	}
	return categories
}

// DialogState is the state of the create-influencer dialog
type DialogState string

const (
	DialogClosed DialogState = "closed"
	DialogOpen   DialogState = "open"
)

// DialogFromParam maps the ?dialog= query value to a dialog state
func DialogFromParam(value string) DialogState {
	if value == "new" {
		return DialogOpen
	}
	return DialogClosed
}

// Open is the "Add" action
func (d DialogState) Open() DialogState {
	return DialogOpen
}

// Cancel discards the form and closes the dialog
func (d DialogState) Cancel() DialogState {
	return DialogClosed
}

// Submit closes the dialog on success and keeps it open when the submit failed
func (d DialogState) Submit(err error) DialogState {
	if err != nil {
		return DialogOpen
	}
	return DialogClosed
}

// IsOpen reports whether the dialog is shown
func (d DialogState) IsOpen() bool {
	return d == DialogOpen
}
