package order

import (
	"sync"

	"github.com/dquispe/burbuja/internal/domain"
)

// Store keeps finalized orders in memory so the message and QR endpoints can
// re-read them. Orders are never mutated after Put; durable persistence is the
// tracking collaborator's job, fed by the events publisher.
type Store struct {
	mu     sync.RWMutex
	ordens map[string]*domain.Orden
}

// NewStore creates an empty order store.
func NewStore() *Store {
	return &Store{ordens: make(map[string]*domain.Orden)}
}

// Put registers a finalized order under its code. A repeated code is a
// conflict; the sequence generator makes this unreachable in practice, but the
// store refuses to clobber an existing order either way.
func (s *Store) Put(o *domain.Orden) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ordens[o.Codigo]; exists {
		return domain.Conflict("orden.put", "Ya existe una orden con el código "+o.Codigo)
	}
	s.ordens[o.Codigo] = o
	return nil
}

// Get returns the order with the given code.
func (s *Store) Get(codigo string) (*domain.Orden, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.ordens[codigo]
	if !ok {
		return nil, domain.ErrOrdenNotFound
	}
	return o, nil
}
