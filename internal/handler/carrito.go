package handler

import (
	"net/http"

	"github.com/dquispe/burbuja/internal/cart"
	"github.com/dquispe/burbuja/internal/domain"
	"github.com/labstack/echo/v4"
)

// createCarrito handles POST /api/carritos
// The client must already exist in the directory; the draft snapshots it.
func (h *Handler) createCarrito(c echo.Context) error {
	var req createCarritoRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, domain.Invalid("carrito.create", "Cuerpo de solicitud inválido"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	clientes, err := h.deps.Directory.Search(c.Request().Context(), "")
	if err != nil {
		return respondError(c, err)
	}
	var cliente *domain.Cliente
	for i := range clientes {
		if clientes[i].ID == req.ClienteID {
			cliente = &clientes[i]
			break
		}
	}
	if cliente == nil {
		return respondError(c, domain.ErrClienteNotFound)
	}

	draft := cart.NewDraft(*cliente)
	h.deps.Drafts.Put(draft)
	h.deps.Metrics.CartsCreated.Inc()

	return c.JSON(http.StatusCreated, viewCarrito(draft))
}

// getCarrito handles GET /api/carritos/:id
func (h *Handler) getCarrito(c echo.Context) error {
	draft, err := h.deps.Drafts.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, viewCarrito(draft))
}

// addItem handles POST /api/carritos/:id/articulos
// A rejected item leaves the stored draft untouched.
func (h *Handler) addItem(c echo.Context) error {
	draft, err := h.deps.Drafts.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, domain.Invalid("carrito.agregar", "Cuerpo de solicitud inválido"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	item, err := req.draft()
	if err != nil {
		return respondError(c, err)
	}

	next, err := draft.AddItem(item)
	if err != nil {
		return respondError(c, err)
	}

	h.deps.Drafts.Put(next)
	h.deps.Metrics.CartItemsAdd.Inc()

	return c.JSON(http.StatusOK, viewCarrito(next))
}

// editItem handles PATCH /api/carritos/:id/articulos/:itemID
// Service-type changes route the price through the advisor's overwrite rule.
func (h *Handler) editItem(c echo.Context) error {
	draft, err := h.deps.Drafts.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req itemPatchRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, domain.Invalid("carrito.editar", "Cuerpo de solicitud inválido"))
	}

	patch, err := req.patch()
	if err != nil {
		return respondError(c, err)
	}

	next, err := draft.EditItem(c.Param("itemID"), patch, h.deps.Advisor)
	if err != nil {
		return respondError(c, err)
	}

	h.deps.Drafts.Put(next)
	h.deps.Metrics.CartItemsEdit.Inc()

	return c.JSON(http.StatusOK, viewCarrito(next))
}

// removeItem handles DELETE /api/carritos/:id/articulos/:itemID
func (h *Handler) removeItem(c echo.Context) error {
	draft, err := h.deps.Drafts.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	next, err := draft.RemoveItem(c.Param("itemID"))
	if err != nil {
		return respondError(c, err)
	}

	h.deps.Drafts.Put(next)
	return c.JSON(http.StatusOK, viewCarrito(next))
}

// setEntrega handles PUT /api/carritos/:id/entrega
// The timestamp is validated against the minimum lead time immediately so the
// operator sees the rejection while still on the delivery screen.
func (h *Handler) setEntrega(c echo.Context) error {
	draft, err := h.deps.Drafts.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req entregaRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, domain.Invalid("carrito.entrega", "Cuerpo de solicitud inválido"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	if err := h.deps.Windows.Validate(req.FechaEntrega); err != nil {
		return respondError(c, err)
	}

	next := draft.SetDeliveryAt(req.FechaEntrega)
	h.deps.Drafts.Put(next)

	return c.JSON(http.StatusOK, viewCarrito(next))
}
