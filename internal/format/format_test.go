package format_test

import (
	"testing"
	"time"

	"github.com/dquispe/burbuja/internal/domain"
	"github.com/dquispe/burbuja/internal/format"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_DateTime(t *testing.T) {
	f := format.Default()

	at := time.Date(2026, 3, 13, 15, 5, 0, 0, time.Local)
	assert.Equal(t, "13/03/2026 15:05", f.DateTime(at))
}

func TestFormatter_Money(t *testing.T) {
	f := format.Default()

	assert.Equal(t, "37.00", f.Money(decimal.NewFromInt(37)))
	assert.Equal(t, "27.00", f.Money(decimal.NewFromFloat(1.5).Mul(decimal.NewFromInt(18))))
	assert.Equal(t, "Bs 37.00", f.MoneyWithCurrency(decimal.NewFromInt(37)))
}

func TestFormatter_Cantidad(t *testing.T) {
	f := format.Default()

	assert.Equal(t, "2 und", f.Cantidad(decimal.NewFromInt(2), domain.CobroUnidad))
	assert.Equal(t, "1.5 kg", f.Cantidad(decimal.NewFromFloat(1.5), domain.CobroKilo))
	// Whole weights stay bare, not "2.0 kg".
	assert.Equal(t, "2 kg", f.Cantidad(decimal.NewFromFloat(2.0), domain.CobroKilo))
}

func TestFormatter_CustomLocale(t *testing.T) {
	f := format.Formatter{DateTimeLayout: "2006-01-02 15:04", CurrencyPrefix: "$"}

	at := time.Date(2026, 3, 13, 15, 5, 0, 0, time.Local)
	assert.Equal(t, "2026-03-13 15:05", f.DateTime(at))
	assert.Equal(t, "$ 5.00", f.MoneyWithCurrency(decimal.NewFromInt(5)))
}
