package services

import (
	"context"
	"fmt"

	"github.com/hirecentive/dashboard/models"
	"github.com/hirecentive/dashboard/repositories"
)

// DefaultAuditLimit caps audit listings when no limit is given
const DefaultAuditLimit = 100

// AuditService exposes the request audit trail
type AuditService interface {
	Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
}

type auditService struct {
	repo repositories.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// Recent returns the newest audit entries. A limit outside 1..DefaultAuditLimit
// falls back to DefaultAuditLimit.
func (s *auditService) Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	if limit <= 0 || limit > DefaultAuditLimit {
		limit = DefaultAuditLimit
	}
	entries, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit log: %w", err)
	}
	return entries, nil
}
