// Package events hands finalized orders off to the external tracking
// collaborator. The handoff is best-effort and strictly after the Orden
// exists: a publish failure is logged and never rolls the order back.
package events

import (
	"context"

	"github.com/dquispe/burbuja/internal/domain"
)

// SubjectOrdenFinalizada is the subject finalized orders are published on.
const SubjectOrdenFinalizada = "ordenes.finalizada"

// Publisher announces finalized orders.
type Publisher interface {
	OrderFinalized(ctx context.Context, o *domain.Orden) error
}

// Noop discards every event. Used when no broker is configured.
type Noop struct{}

func (Noop) OrderFinalized(ctx context.Context, o *domain.Orden) error {
	return nil
}
