package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
	"github.com/jhoicas/freelancer-crm/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

const accountColumns = `id, email, password_hash, name, COALESCE(company, ''), COALESCE(phone, ''),
	timezone, currency, hourly_rate, COALESCE(bio, ''), skills, COALESCE(website, ''),
	social_links, settings, created_at, updated_at`

// Upsert inserta la cuenta si el email no existe. Con email repetido no toca la fila
// y copia en account los valores almacenados.
func (r *AccountRepo) Upsert(ctx context.Context, account *entity.Account) (bool, error) {
	stamp(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	query := `
		INSERT INTO accounts (id, email, password_hash, name, company, phone, timezone, currency,
			hourly_rate, bio, skills, website, social_links, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (email) DO NOTHING
		RETURNING id`
	var id string
	err := r.q.QueryRow(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.Name,
		nullIfEmpty(account.Company), nullIfEmpty(account.Phone), account.Timezone, account.Currency,
		account.HourlyRate, nullIfEmpty(account.Bio), textArray(account.Skills), nullIfEmpty(account.Website),
		jsonObject(account.SocialLinks), jsonObject(account.Settings), account.CreatedAt, account.UpdatedAt,
	).Scan(&id)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, writeError("upsert account", err)
	}

	existing, err := r.GetByEmail(ctx, account.Email)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, fmt.Errorf("upsert account: conflicto sin fila para %q", account.Email)
	}
	*account = *existing
	return false, nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.getOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

// GetByEmail obtiene una cuenta por email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.getOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
}

func (r *AccountRepo) getOne(ctx context.Context, query string, arg string) (*entity.Account, error) {
	var a entity.Account
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Company, &a.Phone,
		&a.Timezone, &a.Currency, &a.HourlyRate, &a.Bio, &a.Skills, &a.Website,
		&a.SocialLinks, &a.Settings, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}
