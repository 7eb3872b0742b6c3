package billing

import (
	"context"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación en PDF de una factura.
// La cuenta es el emisor y el cliente el destinatario.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		account *entity.Account,
		client *entity.Client,
	) ([]byte, error)
}
