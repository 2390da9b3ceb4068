package cart

import (
	"sync"

	"github.com/dquispe/burbuja/internal/domain"
)

var ErrDraftNotFound = &domain.Error{Code: domain.ENOTFOUND, Message: "Carrito no encontrado"}

// Store keeps in-flight cart drafts in memory for the HTTP layer. Drafts are
// working state, not durable data: abandoning a cart leaves nothing behind
// once the process restarts, which matches the implicit-cancellation model.
type Store struct {
	mu     sync.RWMutex
	drafts map[string]Draft
}

// NewStore creates an empty draft store.
func NewStore() *Store {
	return &Store{drafts: make(map[string]Draft)}
}

// Put saves or replaces a draft under its ID.
func (s *Store) Put(d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID] = d
}

// Get returns the draft with the given ID.
func (s *Store) Get(id string) (Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[id]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	return d, nil
}

// Delete discards a draft. Deleting an unknown ID is a no-op; the draft is
// gone either way.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}
