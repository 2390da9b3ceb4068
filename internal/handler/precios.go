package handler

import (
	"net/http"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/labstack/echo/v4"
)

// preciosView lists the price chips for one service type.
type preciosView struct {
	TipoServicio string   `json:"tipoServicio"`
	Sugeridos    []string `json:"sugeridos"`
	PorDefecto   string   `json:"porDefecto"`
}

// suggestPrices handles GET /api/precios/:tipo
func (h *Handler) suggestPrices(c echo.Context) error {
	tipo := domain.TipoServicio(c.Param("tipo"))
	if !tipo.Valid() {
		return respondError(c, domain.ErrServicioInvalido)
	}

	suggestions := h.deps.Advisor.Suggestions(tipo)
	out := preciosView{
		TipoServicio: string(tipo),
		Sugeridos:    make([]string, 0, len(suggestions)),
		PorDefecto:   h.deps.Advisor.Default(tipo).Amount().StringFixed(2),
	}
	for _, s := range suggestions {
		out.Sugeridos = append(out.Sugeridos, s.StringFixed(2))
	}
	return c.JSON(http.StatusOK, out)
}

// catalogoEntryView is one pre-fill suggestion from the external catalog.
type catalogoEntryView struct {
	Nombre string `json:"nombre"`
	Precio string `json:"precio"`
}

// searchCatalogo handles GET /api/catalogo?q=
// Results only pre-fill the price field; they are never authoritative.
func (h *Handler) searchCatalogo(c echo.Context) error {
	entries, err := h.deps.Lookup.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return respondError(c, err)
	}

	out := make([]catalogoEntryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, catalogoEntryView{Nombre: e.Nombre, Precio: e.Precio.StringFixed(2)})
	}
	return c.JSON(http.StatusOK, out)
}
