package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
	"github.com/jhoicas/freelancer-crm/internal/domain/repository"
)

var (
	_ repository.ProjectRepository = (*ProjectRepo)(nil)
	_ repository.TaskRepository    = (*TaskRepo)(nil)
)

// ProjectRepo implementación de ProjectRepository.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un proyecto. client_id debe existir.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	query := `
		INSERT INTO projects (id, account_id, client_id, title, description, status, priority,
			start_date, end_date, deadline, budget, hourly_rate, total_hours, progress, tags,
			custom_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.AccountID, p.ClientID, p.Title, nullIfEmpty(p.Description), string(p.Status), string(p.Priority),
		p.StartDate, p.EndDate, p.Deadline, p.Budget, p.HourlyRate, p.TotalHours, p.Progress, textArray(p.Tags),
		jsonObject(p.CustomFields), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return writeError("insert project", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	query := `
		SELECT id, account_id, client_id, title, COALESCE(description, ''), status, priority,
			start_date, end_date, deadline, budget, hourly_rate, total_hours, progress, tags,
			custom_fields, created_at, updated_at
		FROM projects WHERE id = $1`
	var p entity.Project
	var status, priority string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.AccountID, &p.ClientID, &p.Title, &p.Description, &status, &priority,
		&p.StartDate, &p.EndDate, &p.Deadline, &p.Budget, &p.HourlyRate, &p.TotalHours, &p.Progress, &p.Tags,
		&p.CustomFields, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	p.Status = entity.ProjectStatus(status)
	p.Priority = entity.Priority(priority)
	return &p, nil
}

// TaskRepo implementación de TaskRepository.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador.
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persiste una tarea. project_id debe existir.
func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	stamp(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	query := `
		INSERT INTO tasks (id, account_id, project_id, title, description, status, priority, due_date,
			estimated_hours, actual_hours, sort_order, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.AccountID, t.ProjectID, t.Title, nullIfEmpty(t.Description), string(t.Status), string(t.Priority),
		t.DueDate, t.EstimatedHours, t.ActualHours, t.Order, textArray(t.Tags), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return writeError("insert task", err)
	}
	return nil
}
