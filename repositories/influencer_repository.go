package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hirecentive/dashboard/models"
)

// ErrNotFound is returned when no record has the requested ID
var ErrNotFound = errors.New("record not found")

// InfluencerRepository interface defines influencer store operations
type InfluencerRepository interface {
	GetAll(ctx context.Context) ([]models.Influencer, error)
	GetByID(ctx context.Context, id string) (*models.Influencer, error)
	Create(ctx context.Context, influencer *models.Influencer) error
	Update(ctx context.Context, id string, patch func(*models.Influencer) error) (*models.Influencer, error)
	Count(ctx context.Context) (int, error)
}

// memoryInfluencerRepository keeps the canonical influencer collection in insertion order
type memoryInfluencerRepository struct {
	mu          sync.RWMutex
	influencers []models.Influencer
	index       map[string]int
	newID       func() string
}

// NewInfluencerRepository creates an influencer store seeded with the given records.
// Seed records without an ID, or with an ID already taken, get a fresh one.
func NewInfluencerRepository(seed []models.Influencer) InfluencerRepository {
	r := &memoryInfluencerRepository{
		influencers: make([]models.Influencer, 0, len(seed)),
		index:       make(map[string]int, len(seed)),
		newID:       uuid.NewString,
	}
	for _, influencer := range seed {
		influencer = influencer.Clone()
		if _, taken := r.index[influencer.ID]; influencer.ID == "" || taken {
			influencer.ID = r.newID()
		}
		r.insert(influencer)
	}
	return r
}

func (r *memoryInfluencerRepository) insert(influencer models.Influencer) {
	r.index[influencer.ID] = len(r.influencers)
	r.influencers = append(r.influencers, influencer)
}

// GetAll returns a copy of every influencer
func (r *memoryInfluencerRepository) GetAll(ctx context.Context) ([]models.Influencer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	influencers := make([]models.Influencer, len(r.influencers))
	for i, influencer := range r.influencers {
		influencers[i] = influencer.Clone()
	}
	return influencers, nil
}

// GetByID retrieves an influencer by ID
func (r *memoryInfluencerRepository) GetByID(ctx context.Context, id string) (*models.Influencer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("influencer with ID %s: %w", id, ErrNotFound)
	}
	influencer := r.influencers[i].Clone()
	return &influencer, nil
}

// Create assigns a new ID to the influencer and appends it
func (r *memoryInfluencerRepository) Create(ctx context.Context, influencer *models.Influencer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for _, taken := r.index[id]; taken; _, taken = r.index[id] {
		id = r.newID()
	}

	influencer.ID = id
	r.insert(influencer.Clone())
	return nil
}

// Update applies patch to a copy of the influencer and stores the copy only if
// patch succeeds. The ID cannot be changed by the patch.
func (r *memoryInfluencerRepository) Update(ctx context.Context, id string, patch func(*models.Influencer) error) (*models.Influencer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("influencer with ID %s: %w", id, ErrNotFound)
	}

	updated := r.influencers[i].Clone()
	if err := patch(&updated); err != nil {
		return nil, fmt.Errorf("failed to update influencer: %w", err)
	}
	updated.ID = id

	r.influencers[i] = updated
	result := updated.Clone()
	return &result, nil
}

// Count returns the total number of influencers
func (r *memoryInfluencerRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.influencers), nil
}
