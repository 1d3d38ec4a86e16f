package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository keeps evaluations in process. It backs the server when
// no DATABASE_URL is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]Evaluation
}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{items: make(map[uuid.UUID]Evaluation)}
}

func (r *MemoryRepository) Save(ctx context.Context, e *Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; ok {
		return fmt.Errorf("evaluation %s already stored", e.ID)
	}
	r.items[e.ID] = *e
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id uuid.UUID) (*Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

// List returns the newest evaluations of a project first. Input and result
// bodies are left out as in the Postgres listing.
func (r *MemoryRepository) List(ctx context.Context, project string, limit int) ([]Evaluation, error) {
	r.mu.RLock()
	var out []Evaluation
	for _, e := range r.items {
		if e.Project == project {
			e.Input, e.Result = nil, nil
			out = append(out, e)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
