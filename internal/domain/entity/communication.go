package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/freelancer-crm/internal/domain"
)

// Communication registra un email, llamada, reunión o mensaje con un cliente.
type Communication struct {
	ID          string
	AccountID   string
	ClientID    string
	ProjectID   string // opcional
	Type        CommunicationType
	Subject     string
	Content     string
	Direction   Direction
	Status      CommunicationStatus
	SentAt      *time.Time
	Duration    *int // minutos, solo llamadas y reuniones
	Notes       string
	Attachments []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate comprueba referencias obligatorias y enumeraciones.
func (c *Communication) Validate() error {
	if c.AccountID == "" || c.ClientID == "" {
		return fmt.Errorf("communication: account_id y client_id son requeridos: %w", domain.ErrInvalidInput)
	}
	if !c.Type.Valid() {
		return fmt.Errorf("communication type %q: %w", c.Type, domain.ErrInvalidEnum)
	}
	if !c.Direction.Valid() {
		return fmt.Errorf("communication direction %q: %w", c.Direction, domain.ErrInvalidEnum)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("communication status %q: %w", c.Status, domain.ErrInvalidEnum)
	}
	return nil
}
