package services

import (
	"context"
	"fmt"

	"github.com/hirecentive/dashboard/datatable"
	"github.com/hirecentive/dashboard/models"
	"github.com/hirecentive/dashboard/repositories"
)

// recentActivityLimit is how many log entries the overview shows
const recentActivityLimit = 5

// PlatformCount is the number of influencers on one platform
type PlatformCount struct {
	Platform models.Platform
	Count    int
}

// StatusCount is the number of log entries with one status
type StatusCount struct {
	Status models.LogStatus
	Count  int
}

// DashboardData contains the figures shown on the overview page
type DashboardData struct {
	TotalInfluencers    int
	ActiveInfluencers   int
	InactiveInfluencers int
	AverageEngagement   float64
	Platforms           []PlatformCount
	TotalLogs           int
	LogsByStatus        []StatusCount
	RecentActivity      []models.LogEntry
}

// DashboardService interface defines the overview business logic
type DashboardService interface {
	GetDashboardData(ctx context.Context) (*DashboardData, error)
}

type dashboardService struct {
	influencers repositories.InfluencerRepository
	logs        repositories.LogRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(influencers repositories.InfluencerRepository, logs repositories.LogRepository) DashboardService {
	return &dashboardService{
		influencers: influencers,
		logs:        logs,
	}
}

// GetDashboardData summarizes both stores
func (s *dashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	influencers, err := s.influencers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load influencers: %w", err)
	}
	entries, err := s.logs.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity logs: %w", err)
	}

	data := &DashboardData{
		TotalInfluencers: len(influencers),
		TotalLogs:        len(entries),
	}

	perPlatform := make(map[models.Platform]int, len(models.Platforms))
	var engagement float64
	for _, influencer := range influencers {
		if influencer.IsActive() {
			data.ActiveInfluencers++
		} else {
			data.InactiveInfluencers++
		}
		perPlatform[influencer.Platform]++
		engagement += influencer.EngagementRate()
	}
	if len(influencers) > 0 {
		data.AverageEngagement = engagement / float64(len(influencers))
	}
	for _, platform := range models.Platforms {
		data.Platforms = append(data.Platforms, PlatformCount{Platform: platform, Count: perPlatform[platform]})
	}

	perStatus := make(map[models.LogStatus]int, len(models.LogStatuses))
	for _, entry := range entries {
		perStatus[entry.Status]++
	}
	for _, status := range models.LogStatuses {
		data.LogsByStatus = append(data.LogsByStatus, StatusCount{Status: status, Count: perStatus[status]})
	}

	recent := LogSchema.Derive(entries, datatable.Query{Sort: DefaultLogSort})
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}
	data.RecentActivity = recent

	return data, nil
}
