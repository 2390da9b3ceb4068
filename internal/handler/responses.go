package handler

import (
	"time"

	"github.com/dquispe/burbuja/internal/cart"
	"github.com/dquispe/burbuja/internal/domain"
)

// itemView is the JSON projection of one cart or order line item.
type itemView struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	TipoServicio string `json:"tipoServicio"`
	UnidadCobro  string `json:"unidadCobro"`
	Cantidad     string `json:"cantidad"`
	Precio       string `json:"precio"`
	SinPrecio    bool   `json:"sinPrecio"`
	Subtotal     string `json:"subtotal"`
}

func itemViews(items []domain.Articulo) []itemView {
	out := make([]itemView, 0, len(items))
	for _, it := range items {
		out = append(out, itemView{
			ID:           it.ID,
			Nombre:       it.Nombre,
			TipoServicio: string(it.Tipo),
			UnidadCobro:  string(it.Unidad),
			Cantidad:     it.Cantidad.String(),
			Precio:       it.Precio.Amount().StringFixed(2),
			SinPrecio:    it.Precio.Unset(),
			Subtotal:     it.Subtotal().StringFixed(2),
		})
	}
	return out
}

// carritoView is the cart summary the order screen renders after every
// mutation; totals are derived fresh from the draft each time.
type carritoView struct {
	ID           string         `json:"id"`
	Cliente      domain.Cliente `json:"cliente"`
	Items        []itemView     `json:"items"`
	Total        string         `json:"total"`
	SinPrecio    bool           `json:"tieneArticulosSinPrecio"`
	FechaEntrega *time.Time     `json:"fechaEntrega,omitempty"`
}

func viewCarrito(d cart.Draft) carritoView {
	return carritoView{
		ID:           d.ID,
		Cliente:      d.Cliente,
		Items:        itemViews(d.Items),
		Total:        d.Total().StringFixed(2),
		SinPrecio:    d.HasUnpricedItems(),
		FechaEntrega: d.DeliveryAt,
	}
}

// ordenView is the JSON projection of a finalized order.
type ordenView struct {
	Codigo     string         `json:"codigo"`
	Cliente    domain.Cliente `json:"cliente"`
	Items      []itemView     `json:"items"`
	Total      string         `json:"total"`
	CreatedAt  time.Time      `json:"createdAt"`
	DeliveryAt time.Time      `json:"deliveryAt"`
	Estado     string         `json:"estado"`
	QRPayload  string         `json:"qrPayload"`
	QRRendered bool           `json:"qrRendered"`
}

func viewOrden(o *domain.Orden, qrRendered bool) ordenView {
	return ordenView{
		Codigo:     o.Codigo,
		Cliente:    o.Cliente,
		Items:      itemViews(o.Items),
		Total:      o.Total.StringFixed(2),
		CreatedAt:  o.CreatedAt,
		DeliveryAt: o.DeliveryAt,
		Estado:     string(o.Estado),
		QRPayload:  o.QRPayload,
		QRRendered: qrRendered,
	}
}
