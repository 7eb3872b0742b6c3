package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freelancer-crm/internal/domain"
)

// Task representa una tarea dentro de un proyecto. Order es la posición dentro
// del proyecto y empieza en 1.
type Task struct {
	ID             string
	AccountID      string
	ProjectID      string
	Title          string
	Description    string
	Status         TaskStatus
	Priority       Priority
	DueDate        *time.Time
	EstimatedHours decimal.Decimal
	ActualHours    *decimal.Decimal // nil = aún sin registrar
	Order          int
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate comprueba referencias obligatorias, enumeraciones y el orden.
func (t *Task) Validate() error {
	if t.AccountID == "" || t.ProjectID == "" || t.Title == "" {
		return fmt.Errorf("task: account_id, project_id y title son requeridos: %w", domain.ErrInvalidInput)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("task status %q: %w", t.Status, domain.ErrInvalidEnum)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("task priority %q: %w", t.Priority, domain.ErrInvalidEnum)
	}
	if t.Order < 1 {
		return fmt.Errorf("task order %d: %w", t.Order, domain.ErrOutOfRange)
	}
	return nil
}
