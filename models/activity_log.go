package models

import "time"

// LogCategory groups activity log entries by the area of the platform they touch
type LogCategory string

const (
	CategoryInfluencerManagement LogCategory = "Influencer Management"
	CategoryResourceManagement   LogCategory = "Resource Management"
	CategorySecurity             LogCategory = "Security"
	CategorySystemSettings       LogCategory = "System Settings"
	CategoryUserManagement       LogCategory = "User Management"
)

// LogCategories lists every category in display order
var LogCategories = []LogCategory{
	CategoryInfluencerManagement,
	CategoryResourceManagement,
	CategorySecurity,
	CategorySystemSettings,
	CategoryUserManagement,
}

// LogStatus is the outcome of a logged action
type LogStatus string

const (
	LogSuccess LogStatus = "success"
	LogFailed  LogStatus = "failed"
	LogPending LogStatus = "pending"
)

// LogStatuses lists every status in display order
var LogStatuses = []LogStatus{LogSuccess, LogFailed, LogPending}

// Actions recorded by the dashboard itself
const (
	ActionInfluencerAdded         = "Influencer Added"
	ActionInfluencerStatusUpdated = "Influencer Status Updated"
)

// LogEntry is one immutable activity log record
type LogEntry struct {
	ID        string      `json:"id"`
	Action    string      `json:"action"`
	User      string      `json:"user"`
	Timestamp time.Time   `json:"timestamp"`
	Details   string      `json:"details"`
	Category  LogCategory `json:"category"`
	IPAddress string      `json:"ip_address"`
	Status    LogStatus   `json:"status"`
}

// FormattedTimestamp returns the timestamp in YYYY-MM-DD HH:MM format
func (l LogEntry) FormattedTimestamp() string {
	return FormatDateTime(l.Timestamp)
}
