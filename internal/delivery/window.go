// Package delivery computes and validates the promised completion timestamp
// for an order. All computation is pure calendar arithmetic on an injectable
// clock; the calculator performs no I/O and never suspends.
package delivery

import (
	"time"

	"github.com/dquispe/burbuja/internal/domain"
)

const (
	// MinimumLead is the earliest a delivery can be promised.
	MinimumLead = 48 * time.Hour

	// SuggestedLead is the default promise shown to the operator.
	SuggestedLead = 72 * time.Hour

	// DefaultHour is the time-of-day assumed when the operator picks a date
	// without ever having picked a time: 14:00.
	DefaultHour = 14
)

var ErrEntregaMuyPronto = &domain.Error{
	Code:    domain.EINVALID,
	Message: "La fecha de entrega debe ser al menos 48 horas después de la recepción",
}

// Calculator computes delivery windows relative to an injectable clock.
type Calculator struct {
	now func() time.Time
}

// NewCalculator creates a calculator on the real clock.
func NewCalculator() *Calculator {
	return &Calculator{now: time.Now}
}

// NewCalculatorAt creates a calculator on a fixed or fake clock. Used by
// tests and by shift-reporting tools that replay a day.
func NewCalculatorAt(now func() time.Time) *Calculator {
	return &Calculator{now: now}
}

// Minimum returns the earliest valid delivery timestamp: now + 48h.
func (c *Calculator) Minimum() time.Time {
	return c.now().Add(MinimumLead)
}

// Suggested returns the recommended delivery timestamp: now + 72h.
func (c *Calculator) Suggested() time.Time {
	return c.now().Add(SuggestedLead)
}

// Express is the named shortcut for the earliest window. Exactly Minimum.
func (c *Calculator) Express() time.Time {
	return c.Minimum()
}

// Recomendado is the named shortcut for the suggested window. Exactly Suggested.
func (c *Calculator) Recomendado() time.Time {
	return c.Suggested()
}

// Validate fails when the candidate is strictly earlier than the minimum lead
// time. Candidates at or after the minimum pass.
func (c *Calculator) Validate(candidate time.Time) error {
	if candidate.Before(c.Minimum()) {
		return ErrEntregaMuyPronto
	}
	return nil
}

// CombineDate applies a newly picked date part to a previous selection,
// preserving the previous time-of-day. With no previous selection the
// time-of-day defaults to 14:00.
func CombineDate(previous *time.Time, datePart time.Time) time.Time {
	hour, minute := DefaultHour, 0
	if previous != nil {
		hour, minute = previous.Hour(), previous.Minute()
	}
	return time.Date(
		datePart.Year(), datePart.Month(), datePart.Day(),
		hour, minute, 0, 0, datePart.Location(),
	)
}

// CombineTime applies a newly picked time-of-day to a previous selection,
// preserving the previous date. With no previous selection the date comes
// from the time part itself.
func CombineTime(previous *time.Time, timePart time.Time) time.Time {
	base := timePart
	if previous != nil {
		base = *previous
	}
	return time.Date(
		base.Year(), base.Month(), base.Day(),
		timePart.Hour(), timePart.Minute(), 0, 0, base.Location(),
	)
}
