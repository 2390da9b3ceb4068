package directory

import (
	"context"

	"github.com/dquispe/burbuja/internal/domain"
)

// Failing is a directory stub whose every call fails with EUNAVAILABLE.
// Used to exercise the "directory down blocks cart assembly" path.
type Failing struct {
	Err error
}

func (f *Failing) Search(ctx context.Context, text string) ([]domain.Cliente, error) {
	return nil, domain.Unavailable(f.Err, "directorio.search", "Directorio de clientes no disponible")
}

func (f *Failing) Create(ctx context.Context, draft domain.ClienteDraft) (domain.Cliente, error) {
	return domain.Cliente{}, domain.Unavailable(f.Err, "directorio.create", "Directorio de clientes no disponible")
}
