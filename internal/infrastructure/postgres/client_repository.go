package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
	"github.com/jhoicas/freelancer-crm/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	stamp(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	query := `
		INSERT INTO clients (id, account_id, name, email, phone, company, website, address, city, state,
			country, postal_code, industry, source, status, priority, notes, tags, avatar,
			social_links, custom_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.AccountID, c.Name, nullIfEmpty(c.Email), nullIfEmpty(c.Phone), nullIfEmpty(c.Company),
		nullIfEmpty(c.Website), nullIfEmpty(c.Address), nullIfEmpty(c.City), nullIfEmpty(c.State),
		nullIfEmpty(c.Country), nullIfEmpty(c.PostalCode), nullIfEmpty(c.Industry), nullIfEmpty(c.Source),
		string(c.Status), string(c.Priority), nullIfEmpty(c.Notes), textArray(c.Tags), nullIfEmpty(c.Avatar),
		jsonObject(c.SocialLinks), jsonObject(c.CustomFields), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return writeError("insert client", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, account_id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(company, ''),
			COALESCE(website, ''), COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''),
			COALESCE(country, ''), COALESCE(postal_code, ''), COALESCE(industry, ''), COALESCE(source, ''),
			status, priority, COALESCE(notes, ''), tags, COALESCE(avatar, ''), social_links, custom_fields,
			created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	var status, priority string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.AccountID, &c.Name, &c.Email, &c.Phone, &c.Company,
		&c.Website, &c.Address, &c.City, &c.State,
		&c.Country, &c.PostalCode, &c.Industry, &c.Source,
		&status, &priority, &c.Notes, &c.Tags, &c.Avatar, &c.SocialLinks, &c.CustomFields,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	c.Status = entity.ClientStatus(status)
	c.Priority = entity.Priority(priority)
	return &c, nil
}
