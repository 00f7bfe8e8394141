package pos

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caja-pos/internal/domain"
)

// ReturnLine es un artículo de la factura original con la cantidad que el
// operador decidió devolver y el descuento a aplicar sobre el reembolso.
type ReturnLine struct {
	Code        string
	Name        string
	OriginalQty int64
	ReturnQty   int64 // acotada a [0, OriginalQty]
	UnitPrice   decimal.Decimal
	Discount    Discount
	Reason      string
}

// Refund devuelve el reembolso del artículo: max(0, cantidad×precio − descuento).
// El descuento fijo se aplica una vez sobre la línea, no por unidad.
func (l ReturnLine) Refund() decimal.Decimal {
	gross := decimal.NewFromInt(l.ReturnQty).Mul(l.UnitPrice)
	r := gross.Sub(l.Discount.LineAmount(gross))
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// ValidateReturnLines verifica los límites de cada línea: cantidad devuelta
// en [0, cantidad original] y descuento bien formado.
func ValidateReturnLines(lines []ReturnLine) error {
	for _, l := range lines {
		if l.ReturnQty < 0 || l.ReturnQty > l.OriginalQty {
			return domain.ErrInvalidInput
		}
		if err := l.Discount.Validate(); err != nil {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// ComputeRefund recalcula el resumen de la devolución: unidades devueltas y
// reembolso total. Las líneas con cantidad cero no aportan nada.
func ComputeRefund(lines []ReturnLine) (units int64, total decimal.Decimal) {
	for _, l := range lines {
		if l.ReturnQty <= 0 {
			continue
		}
		units += l.ReturnQty
		total = total.Add(l.Refund())
	}
	return units, total
}
