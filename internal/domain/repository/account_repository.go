package repository

import (
	"context"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account.
type AccountRepository interface {
	// Upsert inserta la cuenta si el email no existe. Si existe, no modifica nada y
	// carga en account los valores almacenados. created indica si hubo inserción.
	Upsert(ctx context.Context, account *entity.Account) (created bool, err error)
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
}
