package order

import (
	"encoding/json"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/dquispe/burbuja/internal/format"
)

// BuildQRPayload serializes the lossy order summary encoded into the QR
// image by the external renderer. It carries an item count, not itemized
// detail: the payload exists for quick human verification at the counter, not
// for reconstructing the order.
func BuildQRPayload(o domain.Orden, f format.Formatter) (string, error) {
	payload := domain.QRPayload{
		Codigo:       o.Codigo,
		Cliente:      o.Cliente.NombreCompleto(),
		Telefono:     o.Cliente.Telefono,
		Fecha:        f.DateTime(o.CreatedAt),
		FechaEntrega: f.DateTime(o.DeliveryAt),
		Articulos:    len(o.Items),
		Total:        f.Money(o.Total),
		Estado:       string(o.Estado),
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", domain.Internal(err, "orden.qr", "No se pudo serializar el resumen QR")
	}
	return string(b), nil
}
