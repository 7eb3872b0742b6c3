package repository

import (
	"context"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// CommunicationRepository define el puerto de persistencia para Communication.
type CommunicationRepository interface {
	Create(ctx context.Context, communication *entity.Communication) error
}

// InvoiceRepository define el puerto de persistencia para Invoice (ítems embebidos).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
}
