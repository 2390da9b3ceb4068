package pricing

import (
	"context"
	"strings"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/shopspring/decimal"
)

// MockLookup is a canned catalog lookup for tests and development.
type MockLookup struct {
	Entries []CatalogEntry
	Err     error
}

// Search returns the canned entries whose name contains the query text.
func (m *MockLookup) Search(ctx context.Context, text string) ([]CatalogEntry, error) {
	if m.Err != nil {
		return nil, domain.Unavailable(m.Err, "catalogo.search", "Catálogo no disponible")
	}
	if text == "" {
		return m.Entries, nil
	}
	var out []CatalogEntry
	for _, e := range m.Entries {
		if strings.Contains(strings.ToLower(e.Nombre), strings.ToLower(text)) {
			out = append(out, e)
		}
	}
	return out, nil
}

// MockAdvisor returns a fixed price regardless of service type. Useful for
// exercising the overwrite rule in isolation.
type MockAdvisor struct {
	Fixed decimal.Decimal
}

func (m *MockAdvisor) Suggestions(tipo domain.TipoServicio) []decimal.Decimal {
	return []decimal.Decimal{m.Fixed}
}

func (m *MockAdvisor) Default(tipo domain.TipoServicio) domain.Precio {
	p, _ := domain.NuevoPrecio(m.Fixed)
	return p
}

func (m *MockAdvisor) OnServiceTypeChange(current domain.Precio, nuevo domain.TipoServicio) domain.Precio {
	if !current.Unset() {
		return current
	}
	return m.Default(nuevo)
}
