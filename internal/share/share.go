// Package share is the boundary to the QR rendering / share-sheet
// collaborator. Success or failure of the sink is opaque to the order
// subsystem: a render failure after finalization downgrades the share to
// text-only and never invalidates the already-created Orden.
package share

import (
	"context"

	"github.com/dquispe/burbuja/internal/domain"
)

// Sink accepts a QR payload for rendering into a scannable image.
type Sink interface {
	Render(ctx context.Context, payload string) error
}

// Noop accepts every payload without doing anything. Used when no renderer is
// attached to the process.
type Noop struct{}

func (Noop) Render(ctx context.Context, payload string) error {
	return nil
}

// Failing always fails. Used to exercise the text-only fallback path.
type Failing struct {
	Err error
}

func (f Failing) Render(ctx context.Context, payload string) error {
	return domain.Unavailable(f.Err, "qr.render", "No se pudo generar la imagen QR")
}
