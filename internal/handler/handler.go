// Package handler exposes the order capture workflow over HTTP. Handlers are
// thin consumers of the cart/order packages: all business rules live below,
// and every failure surfaces as a typed domain error mapped to a status code.
package handler

import (
	"net/http"

	"github.com/dquispe/burbuja/internal/cart"
	"github.com/dquispe/burbuja/internal/delivery"
	"github.com/dquispe/burbuja/internal/domain"
	"github.com/dquispe/burbuja/internal/events"
	"github.com/dquispe/burbuja/internal/notify"
	"github.com/dquispe/burbuja/internal/order"
	"github.com/dquispe/burbuja/internal/pricing"
	"github.com/dquispe/burbuja/internal/share"
	"github.com/dquispe/burbuja/internal/telemetry"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Deps wires the handler to its collaborators.
type Deps struct {
	Directory domain.Directory
	Advisor   pricing.Advisor
	Lookup    pricing.CatalogLookup
	Drafts    *cart.Store
	Orders    *order.Store
	Finalizer *order.Finalizer
	Windows   *delivery.Calculator
	Composer  *notify.Composer
	QRSink    share.Sink
	Publisher events.Publisher
	Metrics   *telemetry.BusinessMetrics
	Logger    zerolog.Logger
}

// Handler serves the POS API.
type Handler struct {
	deps Deps
}

// New creates the handler.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts all routes on the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	api.GET("/clientes", h.searchClientes)
	api.POST("/clientes", h.createCliente)

	api.GET("/precios/:tipo", h.suggestPrices)
	api.GET("/catalogo", h.searchCatalogo)

	api.POST("/carritos", h.createCarrito)
	api.GET("/carritos/:id", h.getCarrito)
	api.POST("/carritos/:id/articulos", h.addItem)
	api.PATCH("/carritos/:id/articulos/:itemID", h.editItem)
	api.DELETE("/carritos/:id/articulos/:itemID", h.removeItem)
	api.PUT("/carritos/:id/entrega", h.setEntrega)
	api.POST("/carritos/:id/finalizar", h.finalizar)

	api.GET("/entregas/opciones", h.entregaOpciones)

	api.GET("/ordenes/:codigo", h.getOrden)
	api.GET("/ordenes/:codigo/whatsapp", h.whatsappMensaje)
	api.GET("/ordenes/:codigo/compartir", h.compartirMensaje)
}
