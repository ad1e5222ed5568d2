package models

import "time"

// AuditLogEntry represents a single HTTP mutation event
type AuditLogEntry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Operator   string    `json:"operator"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	FormData   string    `json:"form_data"`
	UserAgent  string    `json:"user_agent"`
	IPAddress  string    `json:"ip_address"`
	StatusCode int       `json:"status_code"`
}
