package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hirecentive/dashboard/datatable"
	"github.com/hirecentive/dashboard/metrics"
	"github.com/hirecentive/dashboard/models"
	"github.com/hirecentive/dashboard/repositories"
)

// InfluencerSchema declares the influencer columns. Search covers every
// displayed field; the opaque ID is not searchable.
var InfluencerSchema = datatable.NewSchema(
	datatable.TextField("id", func(i models.Influencer) string { return i.ID }).Unsortable(),
	datatable.TextField("name", func(i models.Influencer) string { return i.Name }),
	datatable.TextField("email", func(i models.Influencer) string { return i.Email }),
	datatable.TextField("phone", func(i models.Influencer) string { return i.Phone }),
	datatable.TextField("platform", func(i models.Influencer) string { return string(i.Platform) }),
	datatable.TextField("handle", func(i models.Influencer) string { return i.Handle }),
	datatable.IntField("followers", func(i models.Influencer) int { return i.Followers }),
	datatable.TextField("engagement", func(i models.Influencer) string { return i.Engagement }).
		WithCompare(func(a, b models.Influencer) int { return cmp.Compare(a.EngagementRate(), b.EngagementRate()) }),
	datatable.TextField("location", func(i models.Influencer) string { return i.Location }),
	datatable.ListField("category", func(i models.Influencer) []string { return i.Categories }),
	datatable.TimeField("join_date", func(i models.Influencer) time.Time { return i.JoinDate }, "2006-01-02"),
	datatable.TextField("status", func(i models.Influencer) string { return string(i.Status) }),
).Searching("name", "email", "phone", "platform", "handle", "followers", "engagement", "location", "category", "join_date", "status")

// ActivityRecorder appends entries to the activity log
type ActivityRecorder interface {
	Record(ctx context.Context, entry models.LogEntry) (*models.LogEntry, error)
}

// InfluencerService interface defines influencer management business logic
type InfluencerService interface {
	List(ctx context.Context, q datatable.Query) ([]models.Influencer, error)
	GetByID(ctx context.Context, id string) (*models.Influencer, error)
	Create(ctx context.Context, form *models.InfluencerForm) (*models.Influencer, error)
	ToggleStatus(ctx context.Context, id string) (*models.Influencer, error)
}

// influencerService implements InfluencerService interface
type influencerService struct {
	repo     repositories.InfluencerRepository
	activity ActivityRecorder
	logger   *zap.Logger
}

// NewInfluencerService creates a new influencer service
func NewInfluencerService(repo repositories.InfluencerRepository, activity ActivityRecorder, logger *zap.Logger) InfluencerService {
	return &influencerService{
		repo:     repo,
		activity: activity,
		logger:   logger,
	}
}

// List returns the view of the canonical collection selected by q
func (s *influencerService) List(ctx context.Context, q datatable.Query) ([]models.Influencer, error) {
	influencers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load influencers: %w", err)
	}
	return InfluencerSchema.Derive(influencers, q), nil
}

// GetByID retrieves an influencer by ID
func (s *influencerService) GetByID(ctx context.Context, id string) (*models.Influencer, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid influencer ID: %w", repositories.ErrNotFound)
	}
	return s.repo.GetByID(ctx, id)
}

// Create validates the form and appends a new active influencer
func (s *influencerService) Create(ctx context.Context, form *models.InfluencerForm) (*models.Influencer, error) {
	if errs := form.Validate(); errs.HasErrors() {
		metrics.InfluencersCreatedTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("validation failed: %w", errs)
	}

	now := timeNow()
	influencer := &models.Influencer{
		Name:       strings.TrimSpace(form.Name),
		Email:      strings.TrimSpace(form.Email),
		Phone:      strings.TrimSpace(form.Phone),
		Platform:   models.Platform(strings.TrimSpace(form.Platform)),
		Handle:     strings.TrimSpace(form.Handle),
		Followers:  0,
		Engagement: "0%",
		Location:   "Not specified",
		Categories: models.ParseCategories(form.Categories),
		JoinDate:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Status:     models.StatusActive,
	}

	if err := s.repo.Create(ctx, influencer); err != nil {
		metrics.InfluencersCreatedTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to create influencer: %w", err)
	}
	metrics.InfluencersCreatedTotal.WithLabelValues("success").Inc()

	s.logger.Info("influencer created",
		zap.String("id", influencer.ID),
		zap.String("handle", influencer.Handle),
		zap.String("platform", string(influencer.Platform)),
	)

	s.record(ctx, models.LogEntry{
		Action:   models.ActionInfluencerAdded,
		Details:  fmt.Sprintf("Added new influencer %s (%s on %s)", influencer.Name, influencer.Handle, influencer.Platform),
		Category: models.CategoryInfluencerManagement,
		Status:   models.LogSuccess,
	})

	return influencer, nil
}

// ToggleStatus flips active/inactive on one influencer
func (s *influencerService) ToggleStatus(ctx context.Context, id string) (*models.Influencer, error) {
	updated, err := s.repo.Update(ctx, id, func(influencer *models.Influencer) error {
		influencer.Status = influencer.Status.Toggled()
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			metrics.StatusTogglesTotal.WithLabelValues("not_found").Inc()
			s.record(ctx, models.LogEntry{
				Action:   models.ActionInfluencerStatusUpdated,
				Details:  fmt.Sprintf("Status change failed: influencer %s not found", id),
				Category: models.CategoryInfluencerManagement,
				Status:   models.LogFailed,
			})
		} else {
			metrics.StatusTogglesTotal.WithLabelValues("error").Inc()
		}
		return nil, fmt.Errorf("failed to toggle influencer status: %w", err)
	}
	metrics.StatusTogglesTotal.WithLabelValues("success").Inc()

	s.logger.Info("influencer status toggled",
		zap.String("id", updated.ID),
		zap.String("status", string(updated.Status)),
	)

	s.record(ctx, models.LogEntry{
		Action:   models.ActionInfluencerStatusUpdated,
		Details:  fmt.Sprintf("Changed status of %s to %s", updated.Handle, updated.Status),
		Category: models.CategoryInfluencerManagement,
		Status:   models.LogSuccess,
	})

	return updated, nil
}

// record appends to the activity log. The influencer mutation has already
// committed, so a logging failure is reported but not returned.
func (s *influencerService) record(ctx context.Context, entry models.LogEntry) {
	if s.activity == nil {
		return
	}
	if _, err := s.activity.Record(ctx, entry); err != nil {
		s.logger.Warn("failed to record activity",
			zap.String("action", entry.Action),
			zap.Error(err),
		)
	}
}
