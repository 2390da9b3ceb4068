// Package notify renders a finalized Orden into the fixed-format text
// templates sent over WhatsApp and the share sheet. The literal structure is
// part of the contract: downstream checks match on exact wording and emoji
// markers, so the composer is deterministic and only ever consumes an already
// finalized order. Image-capture failures elsewhere never change this output.
package notify

import (
	"fmt"
	"strings"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/dquispe/burbuja/internal/format"
)

// Composer builds customer-facing messages for one business.
type Composer struct {
	negocio   string
	formatter format.Formatter
}

// NewComposer creates a composer. negocio is the business display name used
// in the message header.
func NewComposer(negocio string, formatter format.Formatter) *Composer {
	return &Composer{negocio: negocio, formatter: formatter}
}

// WhatsAppMessage renders the rich multi-section order confirmation.
func (c *Composer) WhatsAppMessage(o *domain.Orden) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🧺 *%s* 🧺\n\n", c.negocio)
	fmt.Fprintf(&b, "Hola %s! 👋\n", o.Cliente.Nombre)
	b.WriteString("Tu orden ha sido registrada:\n\n")
	fmt.Fprintf(&b, "📋 Orden: *%s*\n", o.Codigo)
	fmt.Fprintf(&b, "📅 Recibido: %s\n", c.formatter.DateTime(o.CreatedAt))
	fmt.Fprintf(&b, "🚚 Entrega: %s\n\n", c.formatter.DateTime(o.DeliveryAt))

	b.WriteString("*Detalle:*\n")
	for i, item := range o.Items {
		fmt.Fprintf(&b, "%d. %s (%s) - %s x %s = %s\n",
			i+1,
			item.Nombre,
			item.Tipo.Label(),
			c.formatter.Cantidad(item.Cantidad, item.Unidad),
			c.formatter.MoneyWithCurrency(item.Precio.Amount()),
			c.formatter.MoneyWithCurrency(item.Subtotal()),
		)
	}

	fmt.Fprintf(&b, "\n💰 *Total: %s*\n\n", c.formatter.MoneyWithCurrency(o.Total))
	fmt.Fprintf(&b, "Estado: %s ⏳\n\n", o.Estado)
	b.WriteString("Gracias por tu preferencia!")

	return b.String()
}

// ShareMessage renders the one-line fallback used when the rich template or
// the QR image attachment is unavailable.
func (c *Composer) ShareMessage(o *domain.Orden) string {
	return fmt.Sprintf("Orden %s - %s - Total: %s",
		o.Codigo,
		o.Cliente.NombreCompleto(),
		c.formatter.MoneyWithCurrency(o.Total),
	)
}
