// Package cart owns the mutable pre-finalization state of an order: the bound
// client, the list of line items and the chosen delivery timestamp. The Draft
// aggregate is immutable; every operation returns a new draft, so any UI is a
// thin consumer and totals are always recomputed, never cached.
package cart

import (
	"time"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/dquispe/burbuja/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrItemNotFound = &domain.Error{Code: domain.ENOTFOUND, Message: "Artículo no encontrado en el carrito"}

// ItemDraft carries the operator's input for a new or edited line item.
// A nil Precio means "unset / needs explicit choice"; it is accepted on add
// but blocks finalization.
type ItemDraft struct {
	Nombre   string
	Tipo     domain.TipoServicio
	Unidad   domain.UnidadCobro
	Cantidad decimal.Decimal
	Precio   domain.Precio
}

// ItemPatch is a partial update for an existing item. Nil fields are left
// untouched.
type ItemPatch struct {
	Nombre   *string
	Tipo     *domain.TipoServicio
	Unidad   *domain.UnidadCobro
	Cantidad *decimal.Decimal
	Precio   *domain.Precio
}

// Draft is the cart for one Cliente. Values of this type are immutable:
// reducers copy the item slice and return a new Draft.
type Draft struct {
	ID         string
	Cliente    domain.Cliente
	Items      []domain.Articulo
	DeliveryAt *time.Time
	CreatedAt  time.Time
}

// NewDraft starts an empty cart bound to a client.
func NewDraft(cliente domain.Cliente) Draft {
	return Draft{
		ID:        uuid.NewString(),
		Cliente:   cliente,
		CreatedAt: time.Now(),
	}
}

// AddItem validates the item draft and returns a new cart draft with the item
// appended. On failure the original draft is returned unchanged alongside the
// validation error. An unset price is a legal resting state ("needs price");
// it only blocks finalization.
func (d Draft) AddItem(item ItemDraft) (Draft, error) {
	articulo := domain.Articulo{
		ID:       uuid.NewString(),
		Nombre:   item.Nombre,
		Tipo:     item.Tipo,
		Unidad:   item.Unidad,
		Cantidad: item.Cantidad,
		Precio:   item.Precio,
	}
	if err := articulo.Validar(); err != nil {
		return d, err
	}

	items := make([]domain.Articulo, len(d.Items), len(d.Items)+1)
	copy(items, d.Items)
	items = append(items, articulo)

	d.Items = items
	return d, nil
}

// EditItem merges the patch into the item with the given id and returns a new
// draft. A service-type change routes the current price through the advisor's
// overwrite rule; an explicit price survives the change, an unset one picks up
// the new type's default.
func (d Draft) EditItem(id string, patch ItemPatch, advisor pricing.Advisor) (Draft, error) {
	idx := -1
	for i, it := range d.Items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return d, ErrItemNotFound
	}

	item := d.Items[idx]
	if patch.Nombre != nil {
		item.Nombre = *patch.Nombre
	}
	if patch.Tipo != nil && *patch.Tipo != item.Tipo {
		item.Tipo = *patch.Tipo
		if advisor != nil {
			item.Precio = advisor.OnServiceTypeChange(item.Precio, item.Tipo)
		}
	}
	if patch.Unidad != nil {
		item.Unidad = *patch.Unidad
	}
	if patch.Cantidad != nil {
		item.Cantidad = *patch.Cantidad
	}
	if patch.Precio != nil {
		item.Precio = *patch.Precio
	}

	if err := item.Validar(); err != nil {
		return d, err
	}

	items := make([]domain.Articulo, len(d.Items))
	copy(items, d.Items)
	items[idx] = item

	d.Items = items
	return d, nil
}

// RemoveItem filters the item out. Removing an unknown id is an error so the
// UI can surface stale-state bugs instead of silently succeeding.
func (d Draft) RemoveItem(id string) (Draft, error) {
	items := make([]domain.Articulo, 0, len(d.Items))
	found := false
	for _, it := range d.Items {
		if it.ID == id {
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		return d, ErrItemNotFound
	}

	d.Items = items
	return d, nil
}

// SetDeliveryAt records the chosen delivery timestamp. Validation against the
// minimum lead time happens in the delivery calculator and again at finalize.
func (d Draft) SetDeliveryAt(t time.Time) Draft {
	d.DeliveryAt = &t
	return d
}

// Total recomputes the cart total from current items on every call.
// An empty cart totals zero.
func (d Draft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range d.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// HasUnpricedItems reports whether any item still needs an explicit price.
// Finalization is blocked while this is true.
func (d Draft) HasUnpricedItems() bool {
	for _, it := range d.Items {
		if it.Precio.Unset() {
			return true
		}
	}
	return false
}
