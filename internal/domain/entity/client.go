package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/freelancer-crm/internal/domain"
)

// Client representa un contacto u organización del freelancer.
// Tags es una lista libre de etiquetas, no referencia a Tag.
type Client struct {
	ID           string
	AccountID    string
	Name         string
	Email        string
	Phone        string
	Company      string
	Website      string
	Address      string
	City         string
	State        string
	Country      string
	PostalCode   string
	Industry     string
	Source       string
	Status       ClientStatus
	Priority     Priority
	Notes        string
	Tags         []string
	Avatar       string
	SocialLinks  map[string]string
	CustomFields map[string]any
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate comprueba campos obligatorios y enumeraciones.
func (c *Client) Validate() error {
	if c.AccountID == "" || c.Name == "" {
		return fmt.Errorf("client: account_id y name son requeridos: %w", domain.ErrInvalidInput)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("client status %q: %w", c.Status, domain.ErrInvalidEnum)
	}
	if !c.Priority.ValidForContact() {
		return fmt.Errorf("client priority %q: %w", c.Priority, domain.ErrInvalidEnum)
	}
	return nil
}
