// Package pricing supplies suggested unit prices per service type and owns the
// one genuine piece of business policy in order capture: a user-entered price
// is overwritten on service-type change only while it is still unset.
package pricing

import (
	"context"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/shopspring/decimal"
)

// Advisor provides price suggestions for cart line items.
// Implementations: CatalogAdvisor, MockAdvisor.
type Advisor interface {
	// Suggestions returns the fixed suggestion list for a service type.
	// The first entry is the default.
	Suggestions(tipo domain.TipoServicio) []decimal.Decimal

	// Default returns the default price for a service type.
	Default(tipo domain.TipoServicio) domain.Precio

	// OnServiceTypeChange decides the price after the operator switches an
	// item's service type. A price the operator already set — including an
	// explicit zero — is preserved; only an unset price is replaced with the
	// new type's default.
	OnServiceTypeChange(current domain.Precio, nuevo domain.TipoServicio) domain.Precio
}

// CatalogEntry is one result from the external catalog lookup collaborator.
// Lookups only pre-fill suggestions; they are never authoritative.
type CatalogEntry struct {
	Nombre string
	Precio decimal.Decimal
}

// CatalogLookup is the external catalog search collaborator.
type CatalogLookup interface {
	Search(ctx context.Context, text string) ([]CatalogEntry, error)
}
