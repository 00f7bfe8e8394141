package pos

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatMoney formatea un monto para el recibo: prefijo de moneda fijo y
// exactamente dos decimales.
func FormatMoney(currency string, v decimal.Decimal) string {
	return currency + v.StringFixed(2)
}

// FormatDiscount formatea el descuento para el recibo: "{valor}%" si es
// porcentaje, "{moneda} {valor}" si es monto fijo.
func FormatDiscount(currency string, d Discount) string {
	if d.Type == DiscountFixed {
		return fmt.Sprintf("%s %s", currency, d.Value.String())
	}
	return d.Value.String() + "%"
}
