package entity

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jhoicas/freelancer-crm/internal/domain"
)

// Note nota libre, opcionalmente ligada a un cliente y/o proyecto.
type Note struct {
	ID        string
	AccountID string
	ClientID  string // opcional
	ProjectID string // opcional
	Title     string
	Content   string
	Type      NoteType
	IsPrivate bool
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate comprueba campos obligatorios y el tipo.
func (n *Note) Validate() error {
	if n.AccountID == "" || n.Content == "" {
		return fmt.Errorf("note: account_id y content son requeridos: %w", domain.ErrInvalidInput)
	}
	if !n.Type.Valid() {
		return fmt.Errorf("note type %q: %w", n.Type, domain.ErrInvalidEnum)
	}
	return nil
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Tag etiqueta con color. No se referencia desde otras tablas.
type Tag struct {
	ID        string
	AccountID string
	Name      string
	Color     string // #RRGGBB
	CreatedAt time.Time
}

// Validate comprueba nombre y formato del color.
func (t *Tag) Validate() error {
	if t.AccountID == "" || t.Name == "" {
		return fmt.Errorf("tag: account_id y name son requeridos: %w", domain.ErrInvalidInput)
	}
	if !hexColor.MatchString(t.Color) {
		return fmt.Errorf("tag color %q: %w", t.Color, domain.ErrInvalidInput)
	}
	return nil
}

// Reminder recordatorio con fecha de vencimiento, opcionalmente ligado a un cliente.
type Reminder struct {
	ID          string
	AccountID   string
	ClientID    string // opcional
	Title       string
	Description string
	DueDate     time.Time
	Type        ReminderType
	Priority    Priority
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate comprueba campos obligatorios y enumeraciones.
func (r *Reminder) Validate() error {
	if r.AccountID == "" || r.Title == "" {
		return fmt.Errorf("reminder: account_id y title son requeridos: %w", domain.ErrInvalidInput)
	}
	if !r.Type.Valid() {
		return fmt.Errorf("reminder type %q: %w", r.Type, domain.ErrInvalidEnum)
	}
	if !r.Priority.Valid() {
		return fmt.Errorf("reminder priority %q: %w", r.Priority, domain.ErrInvalidEnum)
	}
	return nil
}
