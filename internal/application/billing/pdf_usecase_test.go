package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freelancer-crm/internal/application/billing"
	"github.com/jhoicas/freelancer-crm/internal/domain"
	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeInvoices struct {
	rows map[string]*entity.Invoice
	err  error
}

func (f *fakeInvoices) Create(_ context.Context, inv *entity.Invoice) error {
	f.rows[inv.ID] = inv
	return nil
}

func (f *fakeInvoices) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[id], nil
}

type fakeAccounts struct{ rows map[string]*entity.Account }

func (f *fakeAccounts) Upsert(_ context.Context, a *entity.Account) (bool, error) {
	f.rows[a.ID] = a
	return true, nil
}

func (f *fakeAccounts) GetByID(_ context.Context, id string) (*entity.Account, error) {
	return f.rows[id], nil
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, a := range f.rows {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

type fakeClients struct{ rows map[string]*entity.Client }

func (f *fakeClients) Create(_ context.Context, c *entity.Client) error {
	f.rows[c.ID] = c
	return nil
}

func (f *fakeClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return f.rows[id], nil
}

type fakeGenerator struct {
	calls int
	got   *entity.Invoice
}

func (g *fakeGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice, _ *entity.Account, _ *entity.Client) ([]byte, error) {
	g.calls++
	g.got = inv
	return []byte("%PDF-1.3 fake"), nil
}

func newUseCase() (*billing.PDFUseCase, *fakeInvoices, *fakeAccounts, *fakeClients, *fakeGenerator) {
	invoices := &fakeInvoices{rows: map[string]*entity.Invoice{}}
	accounts := &fakeAccounts{rows: map[string]*entity.Account{}}
	clients := &fakeClients{rows: map[string]*entity.Client{}}
	gen := &fakeGenerator{}

	accounts.rows["acc-1"] = &entity.Account{ID: "acc-1", Email: "demo@freelancercrm.com", Name: "John Doe"}
	clients.rows["cli-1"] = &entity.Client{ID: "cli-1", AccountID: "acc-1", Name: "Sarah Johnson"}
	invoices.rows["inv-1"] = &entity.Invoice{
		ID: "inv-1", AccountID: "acc-1", ClientID: "cli-1",
		InvoiceNumber: "INV-2024-001", Status: entity.InvoicePaid,
	}
	return billing.NewPDFUseCase(invoices, accounts, clients, gen), invoices, accounts, clients, gen
}

// ── DownloadInvoicePDF ────────────────────────────────────────────────────────

func TestDownloadInvoicePDF_Exito(t *testing.T) {
	uc, _, _, _, gen := newUseCase()

	out, filename, err := uc.DownloadInvoicePDF(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "invoice_INV-2024-001.pdf", filename)
	assert.Equal(t, []byte("%PDF-1.3 fake"), out)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "inv-1", gen.got.ID)
}

func TestDownloadInvoicePDF_FacturaInexistente(t *testing.T) {
	uc, _, _, _, gen := newUseCase()

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, gen.calls)
}

func TestDownloadInvoicePDF_ClienteBorrado(t *testing.T) {
	uc, _, _, clients, gen := newUseCase()
	delete(clients.rows, "cli-1")

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrMissingReference)
	assert.Zero(t, gen.calls)
}

func TestDownloadInvoicePDF_CuentaBorrada(t *testing.T) {
	uc, _, accounts, _, _ := newUseCase()
	delete(accounts.rows, "acc-1")

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrMissingReference)
}

func TestDownloadInvoicePDF_ErrorDeRepositorio(t *testing.T) {
	uc, invoices, _, _, _ := newUseCase()
	boom := errors.New("conexión perdida")
	invoices.err = boom

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "inv-1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
