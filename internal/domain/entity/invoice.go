package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freelancer-crm/internal/domain"
)

// InvoiceItem línea de la factura (se persiste como JSONB dentro de la cabecera).
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice representa la factura emitida a un cliente.
// Total se guarda tal como llega; por convención es Amount+Tax pero no se impone.
type Invoice struct {
	ID            string
	AccountID     string
	ClientID      string
	ProjectID     string // opcional
	InvoiceNumber string // único, legible (INV-2024-001)
	Title         string
	Description   string
	Amount        decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Currency      string
	Status        InvoiceStatus
	DueDate       time.Time
	SentAt        *time.Time
	PaidAt        *time.Time
	PaymentMethod string
	Notes         string
	Items         []InvoiceItem
	CustomFields  map[string]any
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ExpectedTotal devuelve Amount+Tax, el total por convención.
func (i *Invoice) ExpectedTotal() decimal.Decimal {
	return i.Amount.Add(i.Tax)
}

// TotalMatches informa si Total coincide con Amount+Tax.
func (i *Invoice) TotalMatches() bool {
	return i.Total.Equal(i.ExpectedTotal())
}

// Validate comprueba referencias obligatorias y la enumeración de estado.
func (i *Invoice) Validate() error {
	if i.AccountID == "" || i.ClientID == "" || i.InvoiceNumber == "" {
		return fmt.Errorf("invoice: account_id, client_id e invoice_number son requeridos: %w", domain.ErrInvalidInput)
	}
	if !i.Status.Valid() {
		return fmt.Errorf("invoice status %q: %w", i.Status, domain.ErrInvalidEnum)
	}
	return nil
}
