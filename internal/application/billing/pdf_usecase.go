package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/freelancer-crm/internal/domain"
	"github.com/jhoicas/freelancer-crm/internal/domain/repository"
)

// PDFUseCase genera el PDF de una factura persistida.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	accountRepo repository.AccountRepository
	clientRepo  repository.ClientRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	accountRepo repository.AccountRepository,
	clientRepo repository.ClientRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		accountRepo: accountRepo,
		clientRepo:  clientRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF carga factura, emisor y cliente y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//   - domain.ErrMissingReference si la cuenta o el cliente de la factura ya no existen.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	// ── 1. Cargar factura ─────────────────────────────────────────────────────
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	// ── 2. Cargar emisor ──────────────────────────────────────────────────────
	account, err := uc.accountRepo.GetByID(ctx, inv.AccountID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cuenta: %w", err)
	}
	if account == nil {
		return nil, "", fmt.Errorf("pdf: cuenta %s: %w", inv.AccountID, domain.ErrMissingReference)
	}

	// ── 3. Cargar cliente ─────────────────────────────────────────────────────
	client, err := uc.clientRepo.GetByID(ctx, inv.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if client == nil {
		return nil, "", fmt.Errorf("pdf: cliente %s: %w", inv.ClientID, domain.ErrMissingReference)
	}

	// ── 4. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, account, client)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("invoice_%s.pdf", inv.InvoiceNumber)
	return pdfBytes, filename, nil
}
