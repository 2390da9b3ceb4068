package domain

import (
	"context"
	"strings"
)

var (
	ErrClienteNotFound = &Error{Code: ENOTFOUND, Message: "Cliente no encontrado"}
)

// Cliente is the customer bound to an order. It is created and looked up by
// the external directory collaborator and treated as read-only here.
type Cliente struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Email     string `json:"email,omitempty"`
}

// NombreCompleto returns "Nombre Apellido" with surrounding whitespace trimmed.
func (c Cliente) NombreCompleto() string {
	return strings.TrimSpace(c.Nombre + " " + c.Apellido)
}

// ClienteDraft carries the fields needed to create a new Cliente in the
// directory. Email is optional.
type ClienteDraft struct {
	Nombre    string `json:"nombre" validate:"required"`
	Apellido  string `json:"apellido"`
	Telefono  string `json:"telefono" validate:"required"`
	Direccion string `json:"direccion"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
}

// Directory is the external client directory collaborator. Search/create
// failures block progression to cart assembly and are safe to retry; they are
// surfaced as EUNAVAILABLE errors and never retried automatically.
type Directory interface {
	// Search returns clients matching the free-text query.
	Search(ctx context.Context, text string) ([]Cliente, error)

	// Create registers a new client and returns it with an assigned ID.
	Create(ctx context.Context, draft ClienteDraft) (Cliente, error)
}
