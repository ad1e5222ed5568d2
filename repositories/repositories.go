package repositories

import (
	"database/sql"

	"github.com/hirecentive/dashboard/models"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Influencers InfluencerRepository
	Logs        LogRepository
	Audit       AuditRepository
}

// NewRepositories creates and initializes all repositories. The record stores
// start from the given seed data.
func NewRepositories(db *sql.DB, influencers []models.Influencer, logs []models.LogEntry) *Repositories {
	return &Repositories{
		Influencers: NewInfluencerRepository(influencers),
		Logs:        NewLogRepository(logs),
		Audit:       NewAuditRepository(db),
	}
}
