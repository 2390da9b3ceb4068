package handler

import (
	"net/http"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/labstack/echo/v4"
)

// searchClientes handles GET /api/clientes?q=
// A directory failure blocks progression to cart assembly; the client may
// retry, nothing is retried automatically.
func (h *Handler) searchClientes(c echo.Context) error {
	clientes, err := h.deps.Directory.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		h.deps.Logger.Error().Err(err).Str("op", domain.ErrorOp(err)).Msg("client directory search failed")
		return respondError(c, err)
	}
	if clientes == nil {
		clientes = []domain.Cliente{}
	}
	return c.JSON(http.StatusOK, clientes)
}

// createCliente handles POST /api/clientes
func (h *Handler) createCliente(c echo.Context) error {
	var req domain.ClienteDraft
	if err := c.Bind(&req); err != nil {
		return respondError(c, domain.Invalid("cliente.create", "Cuerpo de solicitud inválido"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	cliente, err := h.deps.Directory.Create(c.Request().Context(), req)
	if err != nil {
		if domain.IsCode(err, domain.EUNAVAILABLE) {
			h.deps.Logger.Error().Err(err).Msg("client directory create failed")
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, cliente)
}
