package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freelancer-crm/internal/domain"
)

// Lead representa un contacto potencial; no depende de Client.
type Lead struct {
	ID           string
	AccountID    string
	Name         string
	Email        string
	Phone        string
	Company      string
	Source       string
	Status       LeadStatus
	Priority     Priority
	Value        decimal.Decimal // valor estimado
	Notes        string
	Tags         []string
	CustomFields map[string]any
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate comprueba campos obligatorios y enumeraciones.
func (l *Lead) Validate() error {
	if l.AccountID == "" || l.Name == "" {
		return fmt.Errorf("lead: account_id y name son requeridos: %w", domain.ErrInvalidInput)
	}
	if !l.Status.Valid() {
		return fmt.Errorf("lead status %q: %w", l.Status, domain.ErrInvalidEnum)
	}
	if !l.Priority.ValidForContact() {
		return fmt.Errorf("lead priority %q: %w", l.Priority, domain.ErrInvalidEnum)
	}
	return nil
}

// Opportunity representa una venta en curso originada en un lead.
type Opportunity struct {
	ID                string
	AccountID         string
	LeadID            string
	Title             string
	Description       string
	Value             decimal.Decimal
	Probability       int // 0-100
	Status            OpportunityStatus
	ExpectedCloseDate *time.Time
	Notes             string
	Tags              []string
	CustomFields      map[string]any
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate comprueba la referencia al lead, la enumeración y el rango de Probability.
func (o *Opportunity) Validate() error {
	if o.AccountID == "" || o.LeadID == "" || o.Title == "" {
		return fmt.Errorf("opportunity: account_id, lead_id y title son requeridos: %w", domain.ErrInvalidInput)
	}
	if !o.Status.Valid() {
		return fmt.Errorf("opportunity status %q: %w", o.Status, domain.ErrInvalidEnum)
	}
	if o.Probability < 0 || o.Probability > 100 {
		return fmt.Errorf("opportunity probability %d: %w", o.Probability, domain.ErrOutOfRange)
	}
	return nil
}
