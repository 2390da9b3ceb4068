package notify_test

import (
	"testing"
	"time"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/dquispe/burbuja/internal/format"
	"github.com/dquispe/burbuja/internal/notify"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleOrden() *domain.Orden {
	return &domain.Orden{
		Codigo: "ORD-482910",
		Cliente: domain.Cliente{
			ID: "cli-1", Nombre: "Juan", Apellido: "Pérez", Telefono: "70123456",
		},
		Items: []domain.Articulo{
			{
				ID:       "it-1",
				Nombre:   "Camisas",
				Tipo:     domain.ServicioLavado,
				Unidad:   domain.CobroUnidad,
				Cantidad: decimal.NewFromInt(2),
				Precio:   domain.PrecioDe(5),
			},
			{
				ID:       "it-2",
				Nombre:   "Edredón matrimonial",
				Tipo:     domain.ServicioLavado,
				Unidad:   domain.CobroKilo,
				Cantidad: decimal.NewFromFloat(1.5),
				Precio:   domain.PrecioDe(18),
			},
		},
		Total:      decimal.NewFromInt(37),
		CreatedAt:  time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local),
		DeliveryAt: time.Date(2026, 3, 13, 15, 0, 0, 0, time.Local),
		Estado:     domain.EstadoPendiente,
	}
}

// The message structure is a contract: downstream checks match on exact
// wording and emoji markers, so this asserts the full literal.
func TestComposer_WhatsAppMessage(t *testing.T) {
	c := notify.NewComposer("Lavandería Burbuja", format.Default())

	want := "🧺 *Lavandería Burbuja* 🧺\n\n" +
		"Hola Juan! 👋\n" +
		"Tu orden ha sido registrada:\n\n" +
		"📋 Orden: *ORD-482910*\n" +
		"📅 Recibido: 10/03/2026 09:30\n" +
		"🚚 Entrega: 13/03/2026 15:00\n\n" +
		"*Detalle:*\n" +
		"1. Camisas (Lavado) - 2 und x Bs 5.00 = Bs 10.00\n" +
		"2. Edredón matrimonial (Lavado) - 1.5 kg x Bs 18.00 = Bs 27.00\n" +
		"\n💰 *Total: Bs 37.00*\n\n" +
		"Estado: Pendiente ⏳\n\n" +
		"Gracias por tu preferencia!"

	assert.Equal(t, want, c.WhatsAppMessage(sampleOrden()))
}

func TestComposer_WhatsAppMessage_GreetsByFirstName(t *testing.T) {
	c := notify.NewComposer("Lavandería Burbuja", format.Default())

	msg := c.WhatsAppMessage(sampleOrden())
	assert.Contains(t, msg, "Hola Juan! 👋")
	assert.NotContains(t, msg, "Hola Juan Pérez")
}

func TestComposer_ShareMessage(t *testing.T) {
	c := notify.NewComposer("Lavandería Burbuja", format.Default())

	got := c.ShareMessage(sampleOrden())
	assert.Equal(t, "Orden ORD-482910 - Juan Pérez - Total: Bs 37.00", got)
}
