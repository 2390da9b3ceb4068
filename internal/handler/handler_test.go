package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dquispe/burbuja/internal/cart"
	"github.com/dquispe/burbuja/internal/delivery"
	"github.com/dquispe/burbuja/internal/directory"
	"github.com/dquispe/burbuja/internal/domain"
	"github.com/dquispe/burbuja/internal/events"
	"github.com/dquispe/burbuja/internal/format"
	"github.com/dquispe/burbuja/internal/handler"
	"github.com/dquispe/burbuja/internal/notify"
	"github.com/dquispe/burbuja/internal/order"
	"github.com/dquispe/burbuja/internal/pricing"
	"github.com/dquispe/burbuja/internal/share"
	"github.com/dquispe/burbuja/internal/telemetry"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recibido = time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local)

func fixedClock() func() time.Time {
	return func() time.Time { return recibido }
}

// newServer wires a complete server on fakes and a fixed clock. The returned
// deps can be tweaked before issuing requests.
func newServer(mutate func(*handler.Deps)) *echo.Echo {
	windows := delivery.NewCalculatorAt(fixedClock())
	formatter := format.Default()

	deps := handler.Deps{
		Directory: directory.NewInMemory(
			domain.Cliente{ID: "cli-1", Nombre: "Juan", Apellido: "Pérez", Telefono: "70123456"},
		),
		Advisor: pricing.NewCatalogAdvisor(),
		Lookup: &pricing.MockLookup{Entries: []pricing.CatalogEntry{
			{Nombre: "Camisa", Precio: decimal.NewFromInt(5)},
		}},
		Drafts:    cart.NewStore(),
		Orders:    order.NewStore(),
		Finalizer: order.NewFinalizerAt(order.NewSequenceFrom(0), windows, formatter, fixedClock()),
		Windows:   windows,
		Composer:  notify.NewComposer("Lavandería Burbuja", formatter),
		QRSink:    share.Noop{},
		Publisher: events.Noop{},
		Metrics:   telemetry.NewBusinessMetrics(prometheus.NewRegistry()),
		Logger:    zerolog.Nop(),
	}
	if mutate != nil {
		mutate(&deps)
	}

	e := echo.New()
	handler.New(deps).Register(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func createCarrito(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec, body := do(t, e, http.MethodPost, "/api/carritos", `{"clienteId":"cli-1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func addCamisas(t *testing.T, e *echo.Echo, carritoID string) {
	t.Helper()
	rec, _ := do(t, e, http.MethodPost, "/api/carritos/"+carritoID+"/articulos",
		`{"nombre":"Camisas","tipoServicio":"lavado","unidadCobro":"unidad","cantidad":2,"precio":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderCaptureFlow(t *testing.T) {
	e := newServer(nil)

	carritoID := createCarrito(t, e)
	addCamisas(t, e, carritoID)

	rec, body := do(t, e, http.MethodPost, "/api/carritos/"+carritoID+"/articulos",
		`{"nombre":"Edredón matrimonial","tipoServicio":"lavado","unidadCobro":"kilo","cantidad":1.5,"precio":18}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "37.00", body["total"])
	assert.Equal(t, false, body["tieneArticulosSinPrecio"])

	entrega := recibido.Add(72 * time.Hour).Format(time.RFC3339)
	rec, _ = do(t, e, http.MethodPut, "/api/carritos/"+carritoID+"/entrega",
		fmt.Sprintf(`{"fechaEntrega":%q}`, entrega))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = do(t, e, http.MethodPost, "/api/carritos/"+carritoID+"/finalizar", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ORD-000001", body["codigo"])
	assert.Equal(t, "37.00", body["total"])
	assert.Equal(t, "Pendiente", body["estado"])
	assert.Equal(t, true, body["qrRendered"])
	assert.NotEmpty(t, body["qrPayload"])

	// The draft is consumed.
	rec, _ = do(t, e, http.MethodGet, "/api/carritos/"+carritoID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The order is retrievable by code.
	rec, body = do(t, e, http.MethodGet, "/api/ordenes/ORD-000001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ORD-000001", body["codigo"])

	rec, body = do(t, e, http.MethodGet, "/api/ordenes/ORD-000001/whatsapp", "")
	require.Equal(t, http.StatusOK, rec.Code)
	mensaje, _ := body["mensaje"].(string)
	assert.Contains(t, mensaje, "Hola Juan! 👋")
	assert.Contains(t, mensaje, "*Total: Bs 37.00*")

	rec, body = do(t, e, http.MethodGet, "/api/ordenes/ORD-000001/compartir", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Orden ORD-000001 - Juan Pérez - Total: Bs 37.00", body["mensaje"])
}

func TestCreateCarrito_UnknownCliente(t *testing.T) {
	e := newServer(nil)

	rec, body := do(t, e, http.MethodPost, "/api/carritos", `{"clienteId":"missing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", body["code"])
}

func TestCreateCarrito_DirectoryDown(t *testing.T) {
	e := newServer(func(d *handler.Deps) {
		d.Directory = &directory.Failing{Err: assert.AnError}
	})

	rec, body := do(t, e, http.MethodPost, "/api/carritos", `{"clienteId":"cli-1"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", body["code"])
}

func TestAddItem_ZeroQuantityRejected(t *testing.T) {
	e := newServer(nil)
	carritoID := createCarrito(t, e)

	rec, body := do(t, e, http.MethodPost, "/api/carritos/"+carritoID+"/articulos",
		`{"nombre":"Camisas","tipoServicio":"lavado","unidadCobro":"unidad","cantidad":0,"precio":5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotNil(t, body["fields"])

	// The stored draft is untouched.
	rec, got := do(t, e, http.MethodGet, "/api/carritos/"+carritoID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, got["items"])
}

func TestAddItem_ZeroPrecioMeansUnset(t *testing.T) {
	e := newServer(nil)
	carritoID := createCarrito(t, e)

	rec, body := do(t, e, http.MethodPost, "/api/carritos/"+carritoID+"/articulos",
		`{"nombre":"Terno","tipoServicio":"otros","unidadCobro":"unidad","cantidad":1,"precio":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["tieneArticulosSinPrecio"])
	assert.Equal(t, "0.00", body["total"])
}

func TestEditItem_ServiceTypeChangeAppliesPriceRule(t *testing.T) {
	e := newServer(nil)
	carritoID := createCarrito(t, e)

	rec, body := do(t, e, http.MethodPost, "/api/carritos/"+carritoID+"/articulos",
		`{"nombre":"Camisas","tipoServicio":"lavado","unidadCobro":"unidad","cantidad":2,"precio":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	items := body["items"].([]any)
	itemID := items[0].(map[string]any)["id"].(string)

	rec, body = do(t, e, http.MethodPatch, "/api/carritos/"+carritoID+"/articulos/"+itemID,
		`{"tipoServicio":"planchado"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	item := body["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "planchado", item["tipoServicio"])
	assert.Equal(t, false, item["sinPrecio"], "an unset price picks up the new type's default")
	assert.Equal(t, "2.00", item["precio"])
}

func TestSetEntrega_TooSoonRejected(t *testing.T) {
	e := newServer(nil)
	carritoID := createCarrito(t, e)

	entrega := recibido.Add(24 * time.Hour).Format(time.RFC3339)
	rec, body := do(t, e, http.MethodPut, "/api/carritos/"+carritoID+"/entrega",
		fmt.Sprintf(`{"fechaEntrega":%q}`, entrega))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid", body["code"])
}

func TestFinalizar_UnpricedItemRefused(t *testing.T) {
	e := newServer(nil)
	carritoID := createCarrito(t, e)

	rec, _ := do(t, e, http.MethodPost, "/api/carritos/"+carritoID+"/articulos",
		`{"nombre":"Terno","tipoServicio":"otros","unidadCobro":"unidad","cantidad":1,"precio":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	entrega := recibido.Add(72 * time.Hour).Format(time.RFC3339)
	rec, _ = do(t, e, http.MethodPut, "/api/carritos/"+carritoID+"/entrega",
		fmt.Sprintf(`{"fechaEntrega":%q}`, entrega))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := do(t, e, http.MethodPost, "/api/carritos/"+carritoID+"/finalizar", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid", body["code"])

	// The draft survives the refusal for correction.
	rec, _ = do(t, e, http.MethodGet, "/api/carritos/"+carritoID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFinalizar_EmptyCartRefused(t *testing.T) {
	e := newServer(nil)
	carritoID := createCarrito(t, e)

	rec, body := do(t, e, http.MethodPost, "/api/carritos/"+carritoID+"/finalizar", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid", body["code"])
}

func TestFinalizar_DeliveryInRequestBody(t *testing.T) {
	e := newServer(nil)
	carritoID := createCarrito(t, e)
	addCamisas(t, e, carritoID)

	entrega := recibido.Add(72 * time.Hour).Format(time.RFC3339)
	rec, body := do(t, e, http.MethodPost, "/api/carritos/"+carritoID+"/finalizar",
		fmt.Sprintf(`{"fechaEntrega":%q}`, entrega))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ORD-000001", body["codigo"])
}

func TestFinalizar_QRRenderFailureDowngradesToTextShare(t *testing.T) {
	e := newServer(func(d *handler.Deps) {
		d.QRSink = share.Failing{Err: assert.AnError}
	})
	carritoID := createCarrito(t, e)
	addCamisas(t, e, carritoID)

	entrega := recibido.Add(72 * time.Hour).Format(time.RFC3339)
	rec, _ := do(t, e, http.MethodPut, "/api/carritos/"+carritoID+"/entrega",
		fmt.Sprintf(`{"fechaEntrega":%q}`, entrega))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := do(t, e, http.MethodPost, "/api/carritos/"+carritoID+"/finalizar", "")
	require.Equal(t, http.StatusCreated, rec.Code, "a render failure never rolls the order back")
	assert.Equal(t, false, body["qrRendered"])
	assert.NotEmpty(t, body["qrPayload"], "the payload is still available for text sharing")

	rec, _ = do(t, e, http.MethodGet, "/api/ordenes/ORD-000001", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEntregaOpciones(t *testing.T) {
	e := newServer(nil)

	rec, body := do(t, e, http.MethodGet, "/api/entregas/opciones", "")
	require.Equal(t, http.StatusOK, rec.Code)

	minimo, err := time.Parse(time.RFC3339, body["minimo"].(string))
	require.NoError(t, err)
	express, err := time.Parse(time.RFC3339, body["express"].(string))
	require.NoError(t, err)
	recomendado, err := time.Parse(time.RFC3339, body["recomendado"].(string))
	require.NoError(t, err)

	assert.True(t, minimo.Equal(recibido.Add(48*time.Hour)))
	assert.True(t, express.Equal(minimo))
	assert.True(t, recomendado.Equal(recibido.Add(72*time.Hour)))
}

func TestSuggestPrices(t *testing.T) {
	e := newServer(nil)

	rec, body := do(t, e, http.MethodGet, "/api/precios/lavado", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lavado", body["tipoServicio"])

	sugeridos := body["sugeridos"].([]any)
	require.Len(t, sugeridos, 4)
	assert.Equal(t, "3.00", sugeridos[0])
	assert.Equal(t, "3.00", body["porDefecto"])
}

func TestSuggestPrices_UnknownType(t *testing.T) {
	e := newServer(nil)

	rec, body := do(t, e, http.MethodGet, "/api/precios/tintoreria", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid", body["code"])
}

func TestSearchCatalogo(t *testing.T) {
	e := newServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/catalogo?q=camisa", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var results []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Camisa", results[0]["nombre"])
}

func TestSearchClientes(t *testing.T) {
	e := newServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes?q=juan", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var clientes []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &clientes))
	require.Len(t, clientes, 1)
	assert.Equal(t, "cli-1", clientes[0]["id"])
}

func TestCreateCliente(t *testing.T) {
	e := newServer(nil)

	rec, body := do(t, e, http.MethodPost, "/api/clientes",
		`{"nombre":"María","apellido":"Gonzales","telefono":"71998877"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "María", body["nombre"])
}

func TestCreateCliente_MissingFields(t *testing.T) {
	e := newServer(nil)

	rec, body := do(t, e, http.MethodPost, "/api/clientes", `{"apellido":"Gonzales"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotNil(t, body["fields"])
}

func TestHealth(t *testing.T) {
	e := newServer(nil)

	rec, _ := do(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
