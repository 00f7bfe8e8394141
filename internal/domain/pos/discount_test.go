package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/caja-pos/internal/domain/pos"
)

// ──────────────────────────────────────────────────────────────────────────────
// Aritmética de descuentos y totales de línea.
//
// Estos tests son el canario de la caja: si alguien cambia la fórmula del
// descuento (porcentaje vs fijo, piso en cero, redondeo) los montos de los
// recibos dejan de cuadrar y el test falla de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestDiscount_UnitPrice(t *testing.T) {
	cases := []struct {
		name     string
		price    string
		discount pos.Discount
		want     string
	}{
		{"porcentaje 10% sobre 100", "100", pos.Discount{Type: pos.DiscountPercentage, Value: d("10")}, "90"},
		{"porcentaje 0%", "50", pos.NoDiscount(), "50"},
		{"fijo 5 sobre 50", "50", pos.Discount{Type: pos.DiscountFixed, Value: d("5")}, "45"},
		{"fijo mayor al precio queda en cero", "10", pos.Discount{Type: pos.DiscountFixed, Value: d("15")}, "0"},
		{"porcentaje 100%", "80", pos.Discount{Type: pos.DiscountPercentage, Value: d("100")}, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.discount.UnitPrice(d(tc.price))
			assert.True(t, got.Equal(d(tc.want)), "esperado %s, obtenido %s", tc.want, got)
		})
	}
}

func TestLineTotal_EjemplosDeCaja(t *testing.T) {
	// 2 × $100 con 10% → 180.00
	total := pos.LineTotal(2, d("100"), pos.Discount{Type: pos.DiscountPercentage, Value: d("10")})
	assert.Equal(t, "180.00", total.StringFixed(2))

	// 1 × $50 con descuento fijo de 5 → 45.00
	total = pos.LineTotal(1, d("50"), pos.Discount{Type: pos.DiscountFixed, Value: d("5")})
	assert.Equal(t, "45.00", total.StringFixed(2))
}

func TestLineTotal_NuncaNegativo(t *testing.T) {
	total := pos.LineTotal(3, d("10"), pos.Discount{Type: pos.DiscountFixed, Value: d("999")})
	assert.False(t, total.IsNegative())
	assert.True(t, total.IsZero())
}

func TestDiscount_Validate(t *testing.T) {
	require.NoError(t, pos.NoDiscount().Validate())
	require.NoError(t, pos.Discount{Type: pos.DiscountFixed, Value: d("3")}.Validate())

	assert.Error(t, pos.Discount{Type: "2x1", Value: d("1")}.Validate(), "tipo desconocido")
	assert.Error(t, pos.Discount{Type: pos.DiscountFixed, Value: d("-1")}.Validate(), "valor negativo")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$225.00", pos.FormatMoney("$", d("225")))
	assert.Equal(t, "$37.00", pos.FormatMoney("$", d("37")))
	assert.Equal(t, "$0.50", pos.FormatMoney("$", d("0.5")))
}

func TestFormatDiscount(t *testing.T) {
	assert.Equal(t, "10%", pos.FormatDiscount("$", pos.Discount{Type: pos.DiscountPercentage, Value: d("10")}))
	assert.Equal(t, "$ 5", pos.FormatDiscount("$", pos.Discount{Type: pos.DiscountFixed, Value: d("5")}))
}
