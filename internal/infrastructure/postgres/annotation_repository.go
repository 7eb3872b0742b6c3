package postgres

import (
	"context"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
	"github.com/jhoicas/freelancer-crm/internal/domain/repository"
)

var (
	_ repository.NoteRepository     = (*NoteRepo)(nil)
	_ repository.TagRepository      = (*TagRepo)(nil)
	_ repository.ReminderRepository = (*ReminderRepo)(nil)
)

// NoteRepo implementación de NoteRepository.
type NoteRepo struct {
	q Querier
}

// NewNoteRepository construye el adaptador.
func NewNoteRepository(q Querier) *NoteRepo {
	return &NoteRepo{q: q}
}

// Create persiste una nota; client_id y project_id son opcionales.
func (r *NoteRepo) Create(ctx context.Context, n *entity.Note) error {
	stamp(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	query := `
		INSERT INTO notes (id, account_id, client_id, project_id, title, content, type, is_private, tags,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.AccountID, nullIfEmpty(n.ClientID), nullIfEmpty(n.ProjectID), nullIfEmpty(n.Title),
		n.Content, string(n.Type), n.IsPrivate, textArray(n.Tags), n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return writeError("insert note", err)
	}
	return nil
}

// TagRepo implementación de TagRepository.
type TagRepo struct {
	q Querier
}

// NewTagRepository construye el adaptador.
func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

// Create persiste una etiqueta.
func (r *TagRepo) Create(ctx context.Context, t *entity.Tag) error {
	stamp(&t.ID, &t.CreatedAt, nil)
	_, err := r.q.Exec(ctx,
		`INSERT INTO tags (id, account_id, name, color, created_at) VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.AccountID, t.Name, t.Color, t.CreatedAt,
	)
	if err != nil {
		return writeError("insert tag", err)
	}
	return nil
}

// ReminderRepo implementación de ReminderRepository.
type ReminderRepo struct {
	q Querier
}

// NewReminderRepository construye el adaptador.
func NewReminderRepository(q Querier) *ReminderRepo {
	return &ReminderRepo{q: q}
}

// Create persiste un recordatorio; client_id es opcional.
func (r *ReminderRepo) Create(ctx context.Context, rem *entity.Reminder) error {
	stamp(&rem.ID, &rem.CreatedAt, &rem.UpdatedAt)
	query := `
		INSERT INTO reminders (id, account_id, client_id, title, description, due_date, type, priority,
			is_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		rem.ID, rem.AccountID, nullIfEmpty(rem.ClientID), rem.Title, nullIfEmpty(rem.Description),
		rem.DueDate, string(rem.Type), string(rem.Priority), rem.IsCompleted, rem.CreatedAt, rem.UpdatedAt,
	)
	if err != nil {
		return writeError("insert reminder", err)
	}
	return nil
}
