package handler

import (
	"net/http"
	"time"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/labstack/echo/v4"
)

// entregaOpcionesView lists the delivery shortcuts offered on the delivery
// screen. Express is exactly the minimum window, Recomendado exactly the
// suggested one.
type entregaOpcionesView struct {
	Minimo      time.Time `json:"minimo"`
	Express     time.Time `json:"express"`
	Recomendado time.Time `json:"recomendado"`
}

// entregaOpciones handles GET /api/entregas/opciones
func (h *Handler) entregaOpciones(c echo.Context) error {
	return c.JSON(http.StatusOK, entregaOpcionesView{
		Minimo:      h.deps.Windows.Minimum(),
		Express:     h.deps.Windows.Express(),
		Recomendado: h.deps.Windows.Recomendado(),
	})
}

// finalizar handles POST /api/carritos/:id/finalizar
//
// On success the draft is consumed: the immutable order is stored, published
// to the tracking collaborator, and the QR payload is offered to the render
// sink. Publish and render failures are logged and never roll the order back;
// a render failure only downgrades the response to text-only sharing.
func (h *Handler) finalizar(c echo.Context) error {
	draft, err := h.deps.Drafts.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req finalizarRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, domain.Invalid("orden.finalizar", "Cuerpo de solicitud inválido"))
	}
	if req.FechaEntrega != nil {
		draft = draft.SetDeliveryAt(*req.FechaEntrega)
	}

	orden, err := h.deps.Finalizer.Finalize(draft)
	if err != nil {
		h.deps.Metrics.OrdersRejected.WithLabelValues(domain.ErrorCode(err)).Inc()
		return respondError(c, err)
	}

	if err := h.deps.Orders.Put(orden); err != nil {
		return respondError(c, err)
	}
	h.deps.Drafts.Delete(draft.ID)

	h.deps.Metrics.OrdersCreated.Inc()
	totalF, _ := orden.Total.Float64()
	h.deps.Metrics.OrderValue.Observe(totalF)
	h.deps.Metrics.OrderItemCount.Observe(float64(len(orden.Items)))

	ctx := c.Request().Context()

	if err := h.deps.Publisher.OrderFinalized(ctx, orden); err != nil {
		h.deps.Logger.Error().Err(err).Str("codigo", orden.Codigo).Msg("order handoff failed")
	}

	qrRendered := true
	if err := h.deps.QRSink.Render(ctx, orden.QRPayload); err != nil {
		qrRendered = false
		h.deps.Metrics.QRRenderFailures.Inc()
		h.deps.Logger.Warn().Err(err).Str("codigo", orden.Codigo).Msg("qr render failed, falling back to text share")
	}

	h.deps.Logger.Info().
		Str("codigo", orden.Codigo).
		Str("cliente", orden.Cliente.NombreCompleto()).
		Str("total", orden.Total.StringFixed(2)).
		Int("articulos", len(orden.Items)).
		Msg("order finalized")

	return c.JSON(http.StatusCreated, viewOrden(orden, qrRendered))
}

// getOrden handles GET /api/ordenes/:codigo
func (h *Handler) getOrden(c echo.Context) error {
	orden, err := h.deps.Orders.Get(c.Param("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, viewOrden(orden, true))
}

// mensajeView carries a rendered message for a share channel.
type mensajeView struct {
	Codigo  string `json:"codigo"`
	Canal   string `json:"canal"`
	Mensaje string `json:"mensaje"`
}

// whatsappMensaje handles GET /api/ordenes/:codigo/whatsapp
func (h *Handler) whatsappMensaje(c echo.Context) error {
	orden, err := h.deps.Orders.Get(c.Param("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	h.deps.Metrics.NotificationsBuilt.WithLabelValues("whatsapp").Inc()
	return c.JSON(http.StatusOK, mensajeView{
		Codigo:  orden.Codigo,
		Canal:   "whatsapp",
		Mensaje: h.deps.Composer.WhatsAppMessage(orden),
	})
}

// compartirMensaje handles GET /api/ordenes/:codigo/compartir
func (h *Handler) compartirMensaje(c echo.Context) error {
	orden, err := h.deps.Orders.Get(c.Param("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	h.deps.Metrics.NotificationsBuilt.WithLabelValues("compartir").Inc()
	return c.JSON(http.StatusOK, mensajeView{
		Codigo:  orden.Codigo,
		Canal:   "compartir",
		Mensaje: h.deps.Composer.ShareMessage(orden),
	})
}
