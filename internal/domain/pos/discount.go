// Package pos contiene la aritmética pura del punto de venta: descuentos,
// totales de línea y de factura, y cálculo de reembolsos por devolución.
// No depende de presentación ni de persistencia, para que cada regla sea
// verificable de forma aislada.
package pos

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tipos de descuento por línea.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

var hundred = decimal.NewFromInt(100)

// Discount describe el descuento aplicado a una línea: porcentaje sobre el
// precio o monto fijo en dinero.
type Discount struct {
	Type  string
	Value decimal.Decimal
}

// NoDiscount descuento neutro (porcentaje 0), el valor por defecto de una línea nueva.
func NoDiscount() Discount {
	return Discount{Type: DiscountPercentage, Value: decimal.Zero}
}

// Validate verifica tipo conocido y valor no negativo.
func (d Discount) Validate() error {
	if d.Type != DiscountPercentage && d.Type != DiscountFixed {
		return fmt.Errorf("tipo de descuento desconocido: %q", d.Type)
	}
	if d.Value.IsNegative() {
		return fmt.Errorf("valor de descuento negativo: %s", d.Value)
	}
	return nil
}

// UnitPrice devuelve el precio unitario con el descuento aplicado.
// Porcentaje: price − price×v/100. Fijo: price − v, con piso en cero cuando
// el descuento excede el precio.
func (d Discount) UnitPrice(price decimal.Decimal) decimal.Decimal {
	switch d.Type {
	case DiscountFixed:
		p := price.Sub(d.Value)
		if p.IsNegative() {
			return decimal.Zero
		}
		return p
	default:
		return price.Sub(price.Mul(d.Value).Div(hundred))
	}
}

// LineAmount devuelve el monto descontado sobre el bruto de una línea.
// Porcentaje: gross×v/100. Fijo: v, una sola vez por línea (así calcula el
// reembolso la caja: no se multiplica por cantidad).
func (d Discount) LineAmount(gross decimal.Decimal) decimal.Decimal {
	if d.Type == DiscountFixed {
		return d.Value
	}
	return gross.Mul(d.Value).Div(hundred)
}

// LineTotal total de una línea de factura: cantidad × precio unitario con
// descuento. Nunca negativo.
func LineTotal(qty int64, price decimal.Decimal, d Discount) decimal.Decimal {
	return decimal.NewFromInt(qty).Mul(d.UnitPrice(price))
}
