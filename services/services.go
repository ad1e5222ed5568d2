package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/hirecentive/dashboard/repositories"
)

var timeNow = func() time.Time {
	return time.Now()
}

// Services holds all service instances
type Services struct {
	Influencers InfluencerService
	Logs        LogService
	Dashboard   DashboardService
	Audit       AuditService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, logger *zap.Logger) *Services {
	logs := NewLogService(repos.Logs, logger)
	return &Services{
		Influencers: NewInfluencerService(repos.Influencers, logs, logger),
		Logs:        logs,
		Dashboard:   NewDashboardService(repos.Influencers, repos.Logs),
		Audit:       NewAuditService(repos.Audit),
	}
}
