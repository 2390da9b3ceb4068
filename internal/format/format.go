// Package format is the locale-parameterized formatting layer shared by the
// QR payload builder and the notification composer. Keeping it separate from
// the templates means template-matching tests stay deterministic regardless of
// the runtime locale.
package format

import (
	"time"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders dates, money and quantities for user-facing payloads.
// The zero value is not useful; use Default or construct explicitly.
type Formatter struct {
	// DateTimeLayout is a Go reference layout, e.g. "02/01/2006 15:04".
	DateTimeLayout string

	// CurrencyPrefix is prepended to money amounts, e.g. "Bs".
	CurrencyPrefix string
}

// Default returns the formatter used by the Bolivian deployment:
// day-first timestamps and bolivianos.
func Default() Formatter {
	return Formatter{
		DateTimeLayout: "02/01/2006 15:04",
		CurrencyPrefix: "Bs",
	}
}

// DateTime renders a timestamp with the configured layout.
func (f Formatter) DateTime(t time.Time) string {
	return t.Format(f.DateTimeLayout)
}

// Money renders an amount with exactly two decimals, no currency prefix.
func (f Formatter) Money(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// MoneyWithCurrency renders "Bs 37.00".
func (f Formatter) MoneyWithCurrency(amount decimal.Decimal) string {
	return f.CurrencyPrefix + " " + f.Money(amount)
}

// Cantidad renders a quantity with its billing-unit suffix: "2 und" for
// per-piece items, "1.5 kg" for per-weight. decimal.String drops trailing
// zeros, so whole weights read "2 kg", not "2.0 kg".
func (f Formatter) Cantidad(cantidad decimal.Decimal, unidad domain.UnidadCobro) string {
	return cantidad.String() + " " + unidad.Sufijo()
}
