// Package pdf genera la versión PDF del recibo de venta con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda  │  N° Factura + Fecha                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Tel / Método de pago                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | P.Unit | Desc | Total             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / TOTAL                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/tu-usuario/caja-pos/internal/application/billing"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/pos"
)

var _ billing.InvoicePDFGenerator = (*ReceiptPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReceiptPDFGenerator genera el PDF del recibo usando Maroto v2.
type ReceiptPDFGenerator struct {
	currency  string
	storeName string
}

// NewReceiptPDFGenerator construye el generador.
func NewReceiptPDFGenerator(currency, storeName string) *ReceiptPDFGenerator {
	return &ReceiptPDFGenerator{currency: currency, storeName: storeName}
}

// GenerateInvoicePDF genera el PDF del recibo de una factura y devuelve sus bytes.
func (g *ReceiptPDFGenerator) GenerateInvoicePDF(inv *entity.Invoice, items []*entity.InvoiceItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo "+inv.Number, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.customerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y número + fecha (der).
func (g *ReceiptPDFGenerator) headerRow(inv *entity.Invoice) core.Row {
	fecha := inv.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(inv.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// customerRow: cliente y método de pago.
func (g *ReceiptPDFGenerator) customerRow(inv *entity.Invoice) core.Row {
	name := inv.CustomerName
	if name == "" {
		name = "Consumidor final"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s   |   Pago: %s",
				name,
				nonEmpty(inv.CustomerPhone, "—"),
				inv.PaymentMethod,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de artículos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Artículo", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Desc.", 1, align.Center),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la factura.
func (g *ReceiptPDFGenerator) tableItemRows(items []*entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				pos.FormatMoney(g.currency, it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				pos.FormatDiscount(g.currency, it.Discount),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				pos.FormatMoney(g.currency, it.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func (g *ReceiptPDFGenerator) totalsRow(inv *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(18).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value(pos.FormatMoney(g.currency, inv.Subtotal)),
			grandValue(pos.FormatMoney(g.currency, inv.Total)),
		),
		col.New(3),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
