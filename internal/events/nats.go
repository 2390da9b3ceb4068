package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/nats-io/nats.go"
)

// ordenFinalizada is the wire shape published for the tracking system. Unlike
// the QR payload it is not lossy: the consumer persists the full order.
type ordenFinalizada struct {
	Codigo     string         `json:"codigo"`
	Cliente    domain.Cliente `json:"cliente"`
	Items      []ordenItem    `json:"items"`
	Total      string         `json:"total"`
	CreatedAt  time.Time      `json:"createdAt"`
	DeliveryAt time.Time      `json:"deliveryAt"`
	Estado     string         `json:"estado"`
}

type ordenItem struct {
	Nombre   string `json:"nombre"`
	Tipo     string `json:"tipoServicio"`
	Unidad   string `json:"unidadCobro"`
	Cantidad string `json:"cantidad"`
	Precio   string `json:"precio"`
	Subtotal string `json:"subtotal"`
}

// NATSPublisher publishes finalized orders to a NATS subject.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher connects to the given NATS URL.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, domain.Unavailable(err, "events.connect", "No se pudo conectar al broker de órdenes")
	}
	return &NATSPublisher{conn: conn, subject: SubjectOrdenFinalizada}, nil
}

// OrderFinalized publishes the full order JSON. Errors are returned for the
// caller to log; the order itself is already final.
func (p *NATSPublisher) OrderFinalized(ctx context.Context, o *domain.Orden) error {
	msg := ordenFinalizada{
		Codigo:     o.Codigo,
		Cliente:    o.Cliente,
		Total:      o.Total.StringFixed(2),
		CreatedAt:  o.CreatedAt,
		DeliveryAt: o.DeliveryAt,
		Estado:     string(o.Estado),
	}
	for _, it := range o.Items {
		msg.Items = append(msg.Items, ordenItem{
			Nombre:   it.Nombre,
			Tipo:     string(it.Tipo),
			Unidad:   string(it.Unidad),
			Cantidad: it.Cantidad.String(),
			Precio:   it.Precio.Amount().StringFixed(2),
			Subtotal: it.Subtotal().StringFixed(2),
		})
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return domain.Internal(err, "events.publish", "No se pudo serializar la orden")
	}
	if err := p.conn.Publish(p.subject, b); err != nil {
		return domain.Unavailable(err, "events.publish", "No se pudo publicar la orden finalizada")
	}
	return nil
}

// Close drains the connection.
func (p *NATSPublisher) Close() {
	if p.conn != nil {
		_ = p.conn.Drain()
	}
}
