package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
	"github.com/jhoicas/freelancer-crm/internal/domain/repository"
)

var (
	_ repository.CommunicationRepository = (*CommunicationRepo)(nil)
	_ repository.InvoiceRepository       = (*InvoiceRepo)(nil)
)

// CommunicationRepo implementación de CommunicationRepository.
type CommunicationRepo struct {
	q Querier
}

// NewCommunicationRepository construye el adaptador.
func NewCommunicationRepository(q Querier) *CommunicationRepo {
	return &CommunicationRepo{q: q}
}

// Create persiste una comunicación; project_id es opcional.
func (r *CommunicationRepo) Create(ctx context.Context, c *entity.Communication) error {
	stamp(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	query := `
		INSERT INTO communications (id, account_id, client_id, project_id, type, subject, content,
			direction, status, sent_at, duration, notes, attachments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.AccountID, c.ClientID, nullIfEmpty(c.ProjectID), string(c.Type), nullIfEmpty(c.Subject),
		nullIfEmpty(c.Content), string(c.Direction), string(c.Status), c.SentAt, c.Duration,
		nullIfEmpty(c.Notes), textArray(c.Attachments), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return writeError("insert communication", err)
	}
	return nil
}

// InvoiceRepo implementación de InvoiceRepository. Los ítems van en la columna JSONB items.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura con sus ítems.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	stamp(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	items := inv.Items
	if items == nil {
		items = []entity.InvoiceItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal invoice items: %w", err)
	}
	query := `
		INSERT INTO invoices (id, account_id, client_id, project_id, invoice_number, title, description,
			amount, tax, total, currency, status, due_date, sent_at, paid_at, payment_method, notes,
			items, custom_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err = r.q.Exec(ctx, query,
		inv.ID, inv.AccountID, inv.ClientID, nullIfEmpty(inv.ProjectID), inv.InvoiceNumber, inv.Title,
		nullIfEmpty(inv.Description), inv.Amount, inv.Tax, inv.Total, inv.Currency, string(inv.Status),
		inv.DueDate, inv.SentAt, inv.PaidAt, nullIfEmpty(inv.PaymentMethod), nullIfEmpty(inv.Notes),
		string(itemsJSON), jsonObject(inv.CustomFields), inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return writeError("insert invoice", err)
	}
	return nil
}

// GetByID obtiene una factura con sus ítems.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, account_id, client_id, project_id, invoice_number, title, COALESCE(description, ''),
			amount, tax, total, currency, status, due_date, sent_at, paid_at, COALESCE(payment_method, ''),
			COALESCE(notes, ''), items, custom_fields, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	var projectID *string
	var status string
	var itemsJSON []byte
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.AccountID, &inv.ClientID, &projectID, &inv.InvoiceNumber, &inv.Title, &inv.Description,
		&inv.Amount, &inv.Tax, &inv.Total, &inv.Currency, &status, &inv.DueDate, &inv.SentAt, &inv.PaidAt,
		&inv.PaymentMethod, &inv.Notes, &itemsJSON, &inv.CustomFields, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.ProjectID = derefStr(projectID)
	inv.Status = entity.InvoiceStatus(status)
	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, fmt.Errorf("unmarshal invoice items: %w", err)
	}
	return &inv, nil
}
