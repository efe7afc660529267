package snapshot

import (
	"context"

	"github.com/escalamed/plantao/backend/internal/domain"
)

// Store é a porta de persistência do snapshot das escalas. O agregado grava a
// coleção inteira como um único documento identificado pelo nome fixo vindo
// da configuração.
type Store interface {
	// Load devolve a coleção gravada. O segundo retorno indica se existe um
	// snapshot; a ausência de snapshot não é um erro.
	Load(ctx context.Context) ([]domain.Schedule, bool, error)
	Save(ctx context.Context, schedules []domain.Schedule) error
}
