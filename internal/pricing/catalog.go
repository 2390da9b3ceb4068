package pricing

import (
	"github.com/dquispe/burbuja/internal/domain"
	"github.com/shopspring/decimal"
)

// CatalogAdvisor serves prices from a fixed in-memory catalog per service
// type. This is the production advisor; the catalogs match the price chips
// shown on the order screen.
type CatalogAdvisor struct {
	catalog map[domain.TipoServicio][]decimal.Decimal
}

// NewCatalogAdvisor creates an advisor with the standard laundry catalogs.
func NewCatalogAdvisor() *CatalogAdvisor {
	return &CatalogAdvisor{
		catalog: map[domain.TipoServicio][]decimal.Decimal{
			domain.ServicioLavado:    amounts(3, 5, 8, 12),
			domain.ServicioPlanchado: amounts(2, 4, 6, 10),
			domain.ServicioOtros:     amounts(5, 10, 15, 25),
		},
	}
}

// NewCatalogAdvisorWith creates an advisor with custom catalogs. Each list
// must be non-empty; the first entry is the default.
func NewCatalogAdvisorWith(catalog map[domain.TipoServicio][]decimal.Decimal) *CatalogAdvisor {
	return &CatalogAdvisor{catalog: catalog}
}

// Suggestions returns a copy of the suggestion list for a service type.
// Unknown types fall back to the "otros" catalog.
func (a *CatalogAdvisor) Suggestions(tipo domain.TipoServicio) []decimal.Decimal {
	list, ok := a.catalog[tipo]
	if !ok {
		list = a.catalog[domain.ServicioOtros]
	}
	out := make([]decimal.Decimal, len(list))
	copy(out, list)
	return out
}

// Default returns the first catalog entry for the service type as an explicit
// price.
func (a *CatalogAdvisor) Default(tipo domain.TipoServicio) domain.Precio {
	list := a.Suggestions(tipo)
	if len(list) == 0 {
		return domain.PrecioUnset()
	}
	p, err := domain.NuevoPrecio(list[0])
	if err != nil {
		return domain.PrecioUnset()
	}
	return p
}

// OnServiceTypeChange preserves any price the operator already chose and
// replaces an unset price with the new type's default.
func (a *CatalogAdvisor) OnServiceTypeChange(current domain.Precio, nuevo domain.TipoServicio) domain.Precio {
	if !current.Unset() {
		return current
	}
	return a.Default(nuevo)
}

func amounts(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}
