package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freelancer-crm/internal/domain"
)

// Project representa un encargo de un cliente.
// Progress y Status son independientes: nada obliga a Progress=100 cuando Status=COMPLETED.
type Project struct {
	ID           string
	AccountID    string
	ClientID     string
	Title        string
	Description  string
	Status       ProjectStatus
	Priority     Priority
	StartDate    *time.Time
	EndDate      *time.Time
	Deadline     *time.Time
	Budget       decimal.Decimal
	HourlyRate   decimal.Decimal
	TotalHours   decimal.Decimal
	Progress     int // 0-100
	Tags         []string
	CustomFields map[string]any
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate comprueba referencias obligatorias, enumeraciones y el rango de Progress.
func (p *Project) Validate() error {
	if p.AccountID == "" || p.ClientID == "" || p.Title == "" {
		return fmt.Errorf("project: account_id, client_id y title son requeridos: %w", domain.ErrInvalidInput)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("project status %q: %w", p.Status, domain.ErrInvalidEnum)
	}
	if !p.Priority.Valid() {
		return fmt.Errorf("project priority %q: %w", p.Priority, domain.ErrInvalidEnum)
	}
	if p.Progress < 0 || p.Progress > 100 {
		return fmt.Errorf("project progress %d: %w", p.Progress, domain.ErrOutOfRange)
	}
	return nil
}
