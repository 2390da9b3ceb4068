package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado is the order status. This subsystem models exactly one transition:
// an Orden is born Pendiente at finalization and never changes afterwards.
// Later transitions (en proceso, entregado) belong to the external tracking
// collaborator.
type Estado string

const EstadoPendiente Estado = "Pendiente"

var ErrOrdenNotFound = &Error{Code: ENOTFOUND, Message: "Orden no encontrada"}

// Orden is the immutable snapshot produced when a cart is finalized.
// Items is a copy of the cart at that moment; Total is the amount computed at
// finalization and must equal the sum of item subtotals.
type Orden struct {
	Codigo     string
	Cliente    Cliente
	Items      []Articulo
	Total      decimal.Decimal
	CreatedAt  time.Time
	DeliveryAt time.Time
	Estado     Estado
	QRPayload  string
}

// QRPayload is the lossy JSON summary of an Orden meant for quick human
// verification after scanning. It carries an item count, not itemized detail.
type QRPayload struct {
	Codigo       string `json:"codigo"`
	Cliente      string `json:"cliente"`
	Telefono     string `json:"telefono"`
	Fecha        string `json:"fecha"`
	FechaEntrega string `json:"fechaEntrega"`
	Articulos    int    `json:"articulos"`
	Total        string `json:"total"`
	Estado       string `json:"estado"`
}
