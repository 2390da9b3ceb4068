package handler

import (
	"time"

	"github.com/dquispe/burbuja/internal/cart"
	"github.com/dquispe/burbuja/internal/domain"
	"github.com/shopspring/decimal"
)

// createCarritoRequest binds a cart draft to an existing client.
type createCarritoRequest struct {
	ClienteID string `json:"clienteId" validate:"required"`
}

// itemRequest is the operator's input for a new line item. A precio of 0 (or
// omitted) means "unset / needs explicit choice" — the historical contract of
// the order screen — and is translated to the unset price state, never stored
// as a real zero.
type itemRequest struct {
	Nombre       string  `json:"nombre" validate:"required"`
	TipoServicio string  `json:"tipoServicio" validate:"required"`
	UnidadCobro  string  `json:"unidadCobro" validate:"required"`
	Cantidad     float64 `json:"cantidad"`
	Precio       float64 `json:"precio"`
}

func (r itemRequest) draft() (cart.ItemDraft, error) {
	precio := domain.PrecioUnset()
	if r.Precio != 0 {
		p, err := domain.NuevoPrecio(decimal.NewFromFloat(r.Precio))
		if err != nil {
			return cart.ItemDraft{}, err
		}
		precio = p
	}
	return cart.ItemDraft{
		Nombre:   r.Nombre,
		Tipo:     domain.TipoServicio(r.TipoServicio),
		Unidad:   domain.UnidadCobro(r.UnidadCobro),
		Cantidad: decimal.NewFromFloat(r.Cantidad),
		Precio:   precio,
	}, nil
}

// itemPatchRequest is a partial line-item update; nil fields stay untouched.
type itemPatchRequest struct {
	Nombre       *string  `json:"nombre"`
	TipoServicio *string  `json:"tipoServicio"`
	UnidadCobro  *string  `json:"unidadCobro"`
	Cantidad     *float64 `json:"cantidad"`
	Precio       *float64 `json:"precio"`
}

func (r itemPatchRequest) patch() (cart.ItemPatch, error) {
	var p cart.ItemPatch
	p.Nombre = r.Nombre
	if r.TipoServicio != nil {
		tipo := domain.TipoServicio(*r.TipoServicio)
		p.Tipo = &tipo
	}
	if r.UnidadCobro != nil {
		unidad := domain.UnidadCobro(*r.UnidadCobro)
		p.Unidad = &unidad
	}
	if r.Cantidad != nil {
		cantidad := decimal.NewFromFloat(*r.Cantidad)
		p.Cantidad = &cantidad
	}
	if r.Precio != nil {
		precio := domain.PrecioUnset()
		if *r.Precio != 0 {
			explicit, err := domain.NuevoPrecio(decimal.NewFromFloat(*r.Precio))
			if err != nil {
				return cart.ItemPatch{}, err
			}
			precio = explicit
		}
		p.Precio = &precio
	}
	return p, nil
}

// entregaRequest sets or overrides the delivery timestamp.
type entregaRequest struct {
	FechaEntrega time.Time `json:"fechaEntrega" validate:"required"`
}

// finalizarRequest optionally carries a last-moment delivery choice; when
// empty, the draft's previously set timestamp is used.
type finalizarRequest struct {
	FechaEntrega *time.Time `json:"fechaEntrega"`
}
