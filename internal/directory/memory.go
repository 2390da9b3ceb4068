// Package directory implements the client directory collaborator. The
// production deployment talks to the central client registry; the in-memory
// implementation here backs single-store installs and tests.
package directory

import (
	"context"
	"strings"
	"sync"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/google/uuid"
)

var _ domain.Directory = (*InMemory)(nil)

// InMemory is a process-local client directory.
type InMemory struct {
	mu       sync.RWMutex
	clientes []domain.Cliente
}

// NewInMemory creates a directory pre-seeded with the given clients.
func NewInMemory(seed ...domain.Cliente) *InMemory {
	d := &InMemory{}
	for _, c := range seed {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		d.clientes = append(d.clientes, c)
	}
	return d
}

// Search matches the query against name, surname and phone, case-insensitively.
// An empty query returns every client.
func (d *InMemory) Search(ctx context.Context, text string) ([]domain.Cliente, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	text = strings.ToLower(strings.TrimSpace(text))
	var out []domain.Cliente
	for _, c := range d.clientes {
		if text == "" ||
			strings.Contains(strings.ToLower(c.Nombre), text) ||
			strings.Contains(strings.ToLower(c.Apellido), text) ||
			strings.Contains(c.Telefono, text) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Create validates the draft and registers a new client with an assigned ID.
func (d *InMemory) Create(ctx context.Context, draft domain.ClienteDraft) (domain.Cliente, error) {
	draft.Nombre = strings.TrimSpace(draft.Nombre)
	draft.Apellido = strings.TrimSpace(draft.Apellido)
	draft.Telefono = strings.TrimSpace(draft.Telefono)

	var verr error
	if draft.Nombre == "" {
		verr = domain.AddFieldError(verr, "nombre", "El nombre es obligatorio")
	}
	if draft.Telefono == "" {
		verr = domain.AddFieldError(verr, "telefono", "El teléfono es obligatorio")
	}
	if verr != nil {
		return domain.Cliente{}, verr
	}

	cliente := domain.Cliente{
		ID:        uuid.NewString(),
		Nombre:    draft.Nombre,
		Apellido:  draft.Apellido,
		Telefono:  draft.Telefono,
		Direccion: strings.TrimSpace(draft.Direccion),
		Email:     strings.TrimSpace(draft.Email),
	}

	d.mu.Lock()
	d.clientes = append(d.clientes, cliente)
	d.mu.Unlock()

	return cliente, nil
}
