package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hirecentive/dashboard/models"
)

// LogRepository is the append-only activity log store
type LogRepository interface {
	GetAll(ctx context.Context) ([]models.LogEntry, error)
	Append(ctx context.Context, entry *models.LogEntry) error
	Count(ctx context.Context) (int, error)
}

type memoryLogRepository struct {
	mu      sync.RWMutex
	entries []models.LogEntry
	newID   func() string
}

// NewLogRepository creates a log store seeded with the given entries
func NewLogRepository(seed []models.LogEntry) LogRepository {
	r := &memoryLogRepository{
		entries: make([]models.LogEntry, 0, len(seed)),
		newID:   uuid.NewString,
	}
	for _, entry := range seed {
		if entry.ID == "" {
			entry.ID = r.newID()
		}
		r.entries = append(r.entries, entry)
	}
	return r
}

// GetAll returns a copy of every entry in insertion order
func (r *memoryLogRepository) GetAll(ctx context.Context) ([]models.LogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]models.LogEntry, len(r.entries))
	copy(entries, r.entries)
	return entries, nil
}

// Append assigns a new ID to the entry and stores it
func (r *memoryLogRepository) Append(ctx context.Context, entry *models.LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.newID()
	r.entries = append(r.entries, *entry)
	return nil
}

// Count returns the number of stored entries
func (r *memoryLogRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}
