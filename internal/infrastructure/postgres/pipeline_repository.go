package postgres

import (
	"context"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
	"github.com/jhoicas/freelancer-crm/internal/domain/repository"
)

var (
	_ repository.LeadRepository        = (*LeadRepo)(nil)
	_ repository.OpportunityRepository = (*OpportunityRepo)(nil)
)

// LeadRepo implementación de LeadRepository.
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador.
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Create persiste un lead.
func (r *LeadRepo) Create(ctx context.Context, l *entity.Lead) error {
	stamp(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	query := `
		INSERT INTO leads (id, account_id, name, email, phone, company, source, status, priority, value,
			notes, tags, custom_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.AccountID, l.Name, nullIfEmpty(l.Email), nullIfEmpty(l.Phone), nullIfEmpty(l.Company),
		nullIfEmpty(l.Source), string(l.Status), string(l.Priority), l.Value, nullIfEmpty(l.Notes),
		textArray(l.Tags), jsonObject(l.CustomFields), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return writeError("insert lead", err)
	}
	return nil
}

// OpportunityRepo implementación de OpportunityRepository.
type OpportunityRepo struct {
	q Querier
}

// NewOpportunityRepository construye el adaptador.
func NewOpportunityRepository(q Querier) *OpportunityRepo {
	return &OpportunityRepo{q: q}
}

// Create persiste una oportunidad. lead_id debe existir.
func (r *OpportunityRepo) Create(ctx context.Context, o *entity.Opportunity) error {
	stamp(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	query := `
		INSERT INTO opportunities (id, account_id, lead_id, title, description, value, probability, status,
			expected_close_date, notes, tags, custom_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.AccountID, o.LeadID, o.Title, nullIfEmpty(o.Description), o.Value, o.Probability,
		string(o.Status), o.ExpectedCloseDate, nullIfEmpty(o.Notes), textArray(o.Tags),
		jsonObject(o.CustomFields), o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return writeError("insert opportunity", err)
	}
	return nil
}
