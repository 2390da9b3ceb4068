package domain

import (
	"github.com/shopspring/decimal"
)

// TipoServicio classifies a laundry line item and drives default pricing.
type TipoServicio string

const (
	ServicioLavado    TipoServicio = "lavado"
	ServicioPlanchado TipoServicio = "planchado"
	ServicioOtros     TipoServicio = "otros"
)

// Valid reports whether the service type is one of the known values.
func (t TipoServicio) Valid() bool {
	switch t {
	case ServicioLavado, ServicioPlanchado, ServicioOtros:
		return true
	}
	return false
}

// Label returns the human-readable Spanish label used in messages.
func (t TipoServicio) Label() string {
	switch t {
	case ServicioLavado:
		return "Lavado"
	case ServicioPlanchado:
		return "Planchado"
	case ServicioOtros:
		return "Otros"
	}
	return string(t)
}

// UnidadCobro is the billing unit: per piece or per weight.
type UnidadCobro string

const (
	CobroUnidad UnidadCobro = "unidad"
	CobroKilo   UnidadCobro = "kilo"
)

// Valid reports whether the billing unit is one of the known values.
func (u UnidadCobro) Valid() bool {
	return u == CobroUnidad || u == CobroKilo
}

// Sufijo returns the quantity suffix used in messages ("und" or "kg").
func (u UnidadCobro) Sufijo() string {
	if u == CobroKilo {
		return "kg"
	}
	return "und"
}

// =============================================================================
// Precio
// =============================================================================

var ErrPrecioNegativo = &Error{Code: EINVALID, Message: "El precio no puede ser negativo"}

// Precio is either unset (the operator has not chosen a price yet) or an
// explicit non-negative amount. An unset price marks the item as
// non-finalizable; an explicit price, including an explicit zero, is never
// silently overwritten.
type Precio struct {
	amount decimal.Decimal
	set    bool
}

// PrecioUnset returns the unset price.
func PrecioUnset() Precio {
	return Precio{}
}

// NuevoPrecio returns an explicit price. Negative amounts are rejected.
func NuevoPrecio(amount decimal.Decimal) (Precio, error) {
	if amount.IsNegative() {
		return Precio{}, ErrPrecioNegativo
	}
	return Precio{amount: amount, set: true}, nil
}

// PrecioDe is a convenience constructor from a float literal. It panics on
// negative input; intended for catalogs and tests where amounts are constants.
func PrecioDe(amount float64) Precio {
	p, err := NuevoPrecio(decimal.NewFromFloat(amount))
	if err != nil {
		panic(err)
	}
	return p
}

// Unset reports whether the operator still needs to choose a price.
func (p Precio) Unset() bool {
	return !p.set
}

// Amount returns the explicit amount, or decimal zero when unset.
func (p Precio) Amount() decimal.Decimal {
	return p.amount
}

// Equal reports whether two prices have the same state and amount.
func (p Precio) Equal(o Precio) bool {
	return p.set == o.set && p.amount.Equal(o.amount)
}

// =============================================================================
// Articulo
// =============================================================================

var (
	ErrCantidadInvalida = &Error{Code: EINVALID, Message: "La cantidad debe ser mayor a 0"}
	ErrCantidadPaso     = &Error{Code: EINVALID, Message: "La cantidad no respeta el paso de la unidad de cobro"}
	ErrNombreVacio      = &Error{Code: EINVALID, Message: "El nombre del artículo es obligatorio"}
	ErrServicioInvalido = &Error{Code: EINVALID, Message: "Tipo de servicio inválido"}
	ErrUnidadInvalida   = &Error{Code: EINVALID, Message: "Unidad de cobro inválida"}
)

// pasoKilo is the quantity step for weight-billed items.
var pasoKilo = decimal.NewFromFloat(0.5)

// Articulo is one priced entry in a cart: a garment/service line.
// IDs are ephemeral, assigned when the item enters a cart draft.
type Articulo struct {
	ID       string
	Nombre   string
	Tipo     TipoServicio
	Unidad   UnidadCobro
	Cantidad decimal.Decimal
	Precio   Precio
}

// Subtotal is always derived: precio × cantidad. Zero when the price is unset.
func (a Articulo) Subtotal() decimal.Decimal {
	return a.Precio.Amount().Mul(a.Cantidad)
}

// ValidarCantidad checks that a quantity is positive and respects the billing
// unit's step: whole numbers for unidad, multiples of 0.5 for kilo.
func ValidarCantidad(cantidad decimal.Decimal, unidad UnidadCobro) error {
	if !cantidad.IsPositive() {
		return ErrCantidadInvalida
	}
	switch unidad {
	case CobroUnidad:
		if !cantidad.Equal(cantidad.Truncate(0)) {
			return ErrCantidadPaso
		}
	case CobroKilo:
		if !cantidad.Mod(pasoKilo).IsZero() {
			return ErrCantidadPaso
		}
	default:
		return ErrUnidadInvalida
	}
	return nil
}

// Validar checks the item fields that must hold for the item to enter a cart.
// An unset price is allowed here; it only blocks finalization.
func (a Articulo) Validar() error {
	var err error
	if a.Nombre == "" {
		err = AddFieldError(err, "nombre", ErrNombreVacio.Message)
	}
	if !a.Tipo.Valid() {
		err = AddFieldError(err, "tipoServicio", ErrServicioInvalido.Message)
	}
	if !a.Unidad.Valid() {
		err = AddFieldError(err, "unidadCobro", ErrUnidadInvalida.Message)
	} else if qerr := ValidarCantidad(a.Cantidad, a.Unidad); qerr != nil {
		err = AddFieldError(err, "cantidad", ErrorMessage(qerr))
	}
	return err
}
