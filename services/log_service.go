package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hirecentive/dashboard/datatable"
	"github.com/hirecentive/dashboard/metrics"
	"github.com/hirecentive/dashboard/models"
	"github.com/hirecentive/dashboard/repositories"
	"github.com/hirecentive/dashboard/userctx"
)

// LogSchema declares the activity log columns. Timestamps search as their
// rendered text and sort chronologically.
var LogSchema = datatable.NewSchema(
	datatable.TextField("id", func(l models.LogEntry) string { return l.ID }).Unsortable(),
	datatable.TextField("action", func(l models.LogEntry) string { return l.Action }),
	datatable.TextField("user", func(l models.LogEntry) string { return l.User }),
	datatable.TimeField("timestamp", func(l models.LogEntry) time.Time { return l.Timestamp }, "2006-01-02 15:04"),
	datatable.TextField("details", func(l models.LogEntry) string { return l.Details }),
	datatable.TextField("category", func(l models.LogEntry) string { return string(l.Category) }),
	datatable.TextField("ip_address", func(l models.LogEntry) string { return l.IPAddress }),
	datatable.TextField("status", func(l models.LogEntry) string { return string(l.Status) }),
).Searching("action", "user", "timestamp", "details", "category", "ip_address", "status")

// DefaultLogSort shows the newest entries first
var DefaultLogSort = datatable.Sort{Field: "timestamp", Direction: datatable.Descending}

// LogService interface defines activity log business logic
type LogService interface {
	List(ctx context.Context, q datatable.Query) ([]models.LogEntry, error)
	Recent(ctx context.Context, limit int) ([]models.LogEntry, error)
	Record(ctx context.Context, entry models.LogEntry) (*models.LogEntry, error)
}

// logService implements LogService interface
type logService struct {
	repo   repositories.LogRepository
	logger *zap.Logger
}

// NewLogService creates a new activity log service
func NewLogService(repo repositories.LogRepository, logger *zap.Logger) LogService {
	return &logService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the view of the log selected by q
func (s *logService) List(ctx context.Context, q datatable.Query) ([]models.LogEntry, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity logs: %w", err)
	}
	return LogSchema.Derive(entries, q), nil
}

// Recent returns up to limit entries, newest first
func (s *logService) Recent(ctx context.Context, limit int) ([]models.LogEntry, error) {
	entries, err := s.List(ctx, datatable.Query{Sort: DefaultLogSort})
	if err != nil {
		return nil, err
	}
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Record appends entry, filling the operator, client IP and time from ctx
// when they are not set.
func (s *logService) Record(ctx context.Context, entry models.LogEntry) (*models.LogEntry, error) {
	if entry.User == "" {
		entry.User = userctx.GetOperator(ctx)
	}
	if entry.IPAddress == "" {
		entry.IPAddress = userctx.GetClientIP(ctx)
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = timeNow()
	}
	if entry.Status == "" {
		entry.Status = models.LogSuccess
	}

	if err := s.repo.Append(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to append activity log entry: %w", err)
	}
	metrics.ActivityLogEntriesTotal.WithLabelValues(string(entry.Category), string(entry.Status)).Inc()

	s.logger.Debug("activity recorded",
		zap.String("action", entry.Action),
		zap.String("user", entry.User),
		zap.String("status", string(entry.Status)),
	)
	return &entry, nil
}
