package accounts

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/dmitrijs2005/salesmatch/internal/models"
)

// MemoryRepository keeps the dataset in a map keyed by id plus an insertion
// order slice. It is safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	seed  []models.Account
	byID  map[int64]models.Account
	order []int64
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository returns a repository holding a copy of seed.
func NewMemoryRepository(seed []models.Account) *MemoryRepository {
	r := &MemoryRepository{seed: slices.Clone(seed)}
	r.resetLocked()
	return r
}

func (r *MemoryRepository) resetLocked() {
	r.byID = make(map[int64]models.Account, len(r.seed))
	r.order = make([]int64, 0, len(r.seed))
	for _, a := range r.seed {
		if _, dup := r.byID[a.ID]; !dup {
			r.order = append(r.order, a.ID)
		}
		r.byID[a.ID] = a
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Account, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id int64) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return models.Account{}, fmt.Errorf("account %d: %w", id, common.ErrNotFound)
	}
	return a, nil
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, id int64, status models.Status) (models.Account, error) {
	if !status.Valid() {
		return models.Account{}, fmt.Errorf("%w: %q", common.ErrInvalidStatus, status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return models.Account{}, fmt.Errorf("account %d: %w", id, common.ErrNotFound)
	}
	a = a.WithStatus(status)
	r.byID[id] = a
	return a, nil
}

func (r *MemoryRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetLocked()
	return nil
}
