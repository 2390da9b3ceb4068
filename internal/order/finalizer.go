// Package order turns a valid cart draft into an immutable, uniquely coded
// Orden with its QR payload. Finalization either succeeds completely or fails
// with a typed reason and no side effects; nothing here panics across the
// finalize boundary.
package order

import (
	"time"

	"github.com/dquispe/burbuja/internal/cart"
	"github.com/dquispe/burbuja/internal/delivery"
	"github.com/dquispe/burbuja/internal/domain"
	"github.com/dquispe/burbuja/internal/format"
)

var (
	ErrCarritoVacio = &domain.Error{Code: domain.EINVALID, Message: "El carrito no tiene artículos"}
	ErrSinPrecio    = &domain.Error{Code: domain.EINVALID, Message: "Hay artículos sin precio asignado"}
	ErrSinEntrega   = &domain.Error{Code: domain.EINVALID, Message: "No se eligió fecha de entrega"}
	ErrSinCliente   = &domain.Error{Code: domain.EINVALID, Message: "La orden no tiene cliente asignado"}
)

// Finalizer composes client + cart + delivery window into an immutable Orden.
type Finalizer struct {
	codes     CodeGenerator
	windows   *delivery.Calculator
	formatter format.Formatter
	now       func() time.Time
}

// NewFinalizer creates a finalizer on the real clock.
func NewFinalizer(codes CodeGenerator, windows *delivery.Calculator, formatter format.Formatter) *Finalizer {
	return &Finalizer{
		codes:     codes,
		windows:   windows,
		formatter: formatter,
		now:       time.Now,
	}
}

// NewFinalizerAt creates a finalizer on a fake clock. Used by tests.
func NewFinalizerAt(codes CodeGenerator, windows *delivery.Calculator, formatter format.Formatter, now func() time.Time) *Finalizer {
	return &Finalizer{
		codes:     codes,
		windows:   windows,
		formatter: formatter,
		now:       now,
	}
}

// Finalize consumes a cart draft exactly once and produces the immutable
// Orden plus its QR payload. Preconditions, all checked before any effect:
// a client is bound, the cart has at least one item, every item has an
// explicit price, and the chosen delivery timestamp passes validation.
// The draft itself is untouched; discarding or resetting it is the caller's
// move after a successful finalize.
func (f *Finalizer) Finalize(d cart.Draft) (*domain.Orden, error) {
	if d.Cliente.ID == "" {
		return nil, ErrSinCliente
	}
	if len(d.Items) == 0 {
		return nil, ErrCarritoVacio
	}
	if d.HasUnpricedItems() {
		return nil, ErrSinPrecio
	}
	if d.DeliveryAt == nil {
		return nil, ErrSinEntrega
	}
	if err := f.windows.Validate(*d.DeliveryAt); err != nil {
		return nil, err
	}

	items := make([]domain.Articulo, len(d.Items))
	copy(items, d.Items)

	orden := domain.Orden{
		Codigo:     f.codes.Next(),
		Cliente:    d.Cliente,
		Items:      items,
		Total:      d.Total(),
		CreatedAt:  f.now(),
		DeliveryAt: *d.DeliveryAt,
		Estado:     domain.EstadoPendiente,
	}

	qr, err := BuildQRPayload(orden, f.formatter)
	if err != nil {
		return nil, err
	}
	orden.QRPayload = qr

	return &orden, nil
}
