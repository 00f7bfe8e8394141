// Package receipt genera el documento imprimible autocontenido de una
// factura o devolución: HTML con estilos embebidos y un script que dispara
// la impresión tras una pausa corta para que el layout asiente.
package receipt

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/tu-usuario/caja-pos/internal/application/billing"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/pos"
)

var _ billing.ReceiptRenderer = (*Renderer)(nil)

// PrintDelayMs pausa antes de window.print(), en milisegundos.
const PrintDelayMs = 400

// Renderer produce recibos HTML. La salida no persiste nada: es una
// proyección de datos ya leídos.
type Renderer struct {
	currency  string
	storeName string
	tmpl      *template.Template
}

// NewRenderer construye el renderer con el prefijo de moneda y el nombre
// de la tienda para el encabezado.
func NewRenderer(currency, storeName string) (*Renderer, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return nil, fmt.Errorf("receipt: parsear plantilla: %w", err)
	}
	return &Renderer{currency: currency, storeName: storeName, tmpl: tmpl}, nil
}

type receiptLine struct {
	Name     string
	Code     string
	Qty      int64
	Price    string
	Discount string
	Total    string
}

type receiptData struct {
	Title         string
	StoreName     string
	Number        string
	Date          string
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
	Reason        string
	Notes         string
	Lines         []receiptLine
	Subtotal      string
	TotalLabel    string
	Total         string
	PrintDelayMs  int
}

// RenderInvoice genera el recibo de una factura.
func (r *Renderer) RenderInvoice(inv *entity.Invoice, items []*entity.InvoiceItem) ([]byte, error) {
	data := receiptData{
		Title:         "Recibo de venta",
		StoreName:     r.storeName,
		Number:        inv.Number,
		Date:          inv.CreatedAt.Format("02/01/2006 15:04"),
		CustomerName:  inv.CustomerName,
		CustomerPhone: inv.CustomerPhone,
		PaymentMethod: inv.PaymentMethod,
		Subtotal:      pos.FormatMoney(r.currency, inv.Subtotal),
		TotalLabel:    "TOTAL",
		Total:         pos.FormatMoney(r.currency, inv.Total),
		PrintDelayMs:  PrintDelayMs,
	}
	for _, it := range items {
		data.Lines = append(data.Lines, receiptLine{
			Name:     it.ProductName,
			Code:     it.ProductCode,
			Qty:      it.Quantity,
			Price:    pos.FormatMoney(r.currency, it.UnitPrice),
			Discount: pos.FormatDiscount(r.currency, it.Discount),
			Total:    pos.FormatMoney(r.currency, it.Total),
		})
	}
	return r.render(data)
}

// RenderReturn genera el recibo de una devolución.
func (r *Renderer) RenderReturn(rec *entity.ReturnRecord, items []*entity.ReturnItem) ([]byte, error) {
	data := receiptData{
		Title:        "Recibo de devolución",
		StoreName:    r.storeName,
		Number:       rec.InvoiceNumber,
		Date:         rec.ProcessedAt.Format("02/01/2006 15:04"),
		Reason:       rec.Reason,
		Notes:        rec.Notes,
		TotalLabel:   "REEMBOLSO",
		Total:        pos.FormatMoney(r.currency, rec.TotalRefund),
		PrintDelayMs: PrintDelayMs,
	}
	for _, it := range items {
		data.Lines = append(data.Lines, receiptLine{
			Name:     it.ProductName,
			Code:     it.ProductCode,
			Qty:      it.ReturnedQty,
			Price:    pos.FormatMoney(r.currency, it.UnitPrice),
			Discount: pos.FormatDiscount(r.currency, it.Discount),
			Total:    pos.FormatMoney(r.currency, it.Refund),
		})
	}
	return r.render(data)
}

func (r *Renderer) render(data receiptData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("receipt: renderizar: %w", err)
	}
	return buf.Bytes(), nil
}

const receiptTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}} {{.Number}}</title>
<style>
  body { font-family: "Courier New", monospace; font-size: 12px; max-width: 320px; margin: 0 auto; }
  h1 { font-size: 14px; text-align: center; margin: 8px 0 2px; }
  .num { text-align: center; margin: 0 0 8px; }
  .info { margin: 4px 0; }
  table { width: 100%; border-collapse: collapse; }
  th, td { text-align: left; padding: 2px 0; }
  th { border-bottom: 1px dashed #000; }
  td.amount, th.amount { text-align: right; }
  .totals { border-top: 1px dashed #000; margin-top: 6px; padding-top: 4px; }
  .totals div { display: flex; justify-content: space-between; }
  .grand { font-weight: bold; font-size: 13px; }
  footer { text-align: center; margin-top: 10px; }
</style>
</head>
<body>
<h1>{{.StoreName}}</h1>
<h1>{{.Title}}</h1>
<p class="num">{{.Number}} &mdash; {{.Date}}</p>
{{if .CustomerName}}<p class="info">Cliente: {{.CustomerName}}{{if .CustomerPhone}} &middot; {{.CustomerPhone}}{{end}}</p>{{end}}
{{if .PaymentMethod}}<p class="info">Pago: {{.PaymentMethod}}</p>{{end}}
{{if .Reason}}<p class="info">Motivo: {{.Reason}}</p>{{end}}
{{if .Notes}}<p class="info">Notas: {{.Notes}}</p>{{end}}
<table>
  <tr><th>Artículo</th><th>Cant</th><th class="amount">Precio</th><th class="amount">Desc</th><th class="amount">Total</th></tr>
  {{range .Lines}}
  <tr><td>{{.Name}}</td><td>{{.Qty}}</td><td class="amount">{{.Price}}</td><td class="amount">{{.Discount}}</td><td class="amount">{{.Total}}</td></tr>
  {{end}}
</table>
<div class="totals">
  {{if .Subtotal}}<div><span>Subtotal</span><span>{{.Subtotal}}</span></div>{{end}}
  <div class="grand"><span>{{.TotalLabel}}</span><span>{{.Total}}</span></div>
</div>
<footer>&iexcl;Gracias por su compra!</footer>
<script>setTimeout(function () { window.print(); }, {{.PrintDelayMs}});</script>
</body>
</html>
`
