// Package pdf genera el PDF de una factura del freelancer.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre / Empresa     │  N° Factura + Estado         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FROM: email / tel / web      │  FECHAS: emisión / venc.     │
//	│  BILL TO: cliente + contacto                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant | Tarifa | Importe                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuestos / TOTAL                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de referencia + condiciones + notas              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freelancer-crm/internal/application/billing"
	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "Jan 2, 2006"

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	account *entity.Account,
	client *entity.Client,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(account.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, account))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(issuerRow(invoice, account))
	m.AddRows(billToRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(invoice.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(invoice)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre y empresa del freelancer (izq), número y estado (der).
func headerRow(invoice *entity.Invoice, account *entity.Account) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(account.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(account.Company, "Freelancer"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Status: "+string(invoice.Status), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// issuerRow: contacto del emisor y fechas de la factura.
func issuerRow(invoice *entity.Invoice, account *entity.Account) core.Row {
	issued := invoice.CreatedAt
	if invoice.SentAt != nil {
		issued = *invoice.SentAt
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("FROM", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s   |   %s",
				nonEmpty(account.Email, "-"),
				nonEmpty(account.Phone, "-"),
				nonEmpty(account.Website, "-"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Issued: "+issued.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Due: "+invoice.DueDate.Format(dateLayout), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 7,
			}),
		),
	)
}

// billToRow: datos del cliente.
func billToRow(client *entity.Client) core.Row {
	location := strings.Join(nonBlank(client.Address, client.City, client.State, client.Country), ", ")
	return row.New(18).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s   |   %s   |   %s",
				nonEmpty(client.Company, "-"),
				nonEmpty(client.Email, "-"),
				nonEmpty(client.Phone, "-"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New(nonEmpty(location, "-"), props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Rate", 2, align.Right),
		h("Amount", 3, align.Right),
	)
}

// tableItemRows: una fila por ítem.
func tableItemRows(items []entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(it.Rate),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(it.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}
	currency := nonEmpty(invoice.Currency, "USD")

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("Tax:", 7),
			label("TOTAL ("+currency+"):", 13),
		),
		col.New(3).Add(
			value("$"+formatMoney(invoice.Amount), 1),
			value("$"+formatMoney(invoice.Tax), 7),
			grand("$"+formatMoney(invoice.Total), 13),
		),
	)
}

// footerRows: QR con la referencia de pago, condiciones y notas.
func footerRows(invoice *entity.Invoice) []core.Row {
	terms := "Payment method: " + nonEmpty(invoice.PaymentMethod, "-")
	if t, ok := invoice.CustomFields["paymentTerms"].(string); ok && t != "" {
		terms += "   |   Terms: " + t
	}
	if invoice.PaidAt != nil {
		terms += "   |   Paid: " + invoice.PaidAt.Format(dateLayout)
	}

	reference := fmt.Sprintf("%s|%s|%s", invoice.InvoiceNumber, invoice.Total.StringFixed(2), nonEmpty(invoice.Currency, "USD"))

	return []core.Row{
		row.New(36).Add(
			col.New(3).Add(code.NewQr(reference, props.Rect{Percent: 95, Center: true})),
			col.New(9).Add(
				text.New(invoice.Title, props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 3, Left: 3, Color: colorPrimary,
				}),
				text.New(terms, props.Text{Size: 8, Top: 11, Left: 3, Color: colorGray}),
				text.New(nonEmpty(invoice.Notes, invoice.Description), props.Text{
					Size: 8, Top: 18, Left: 3,
				}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func nonBlank(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// formatMoney formatea con dos decimales y comas de miles.
// Ej: 8100 → "8,100.00", 1234567.5 → "1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	if d.IsNegative() {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	buf = append(buf, '.')
	buf = append(buf, frac...)
	return string(buf)
}
