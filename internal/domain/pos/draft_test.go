package pos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/caja-pos/internal/domain/pos"
)

func lineaValida() pos.Line {
	return pos.Line{
		Code:      "A1",
		Name:      "Café 500g",
		Quantity:  2,
		Available: 10,
		UnitPrice: d("100"),
		Discount:  pos.Discount{Type: pos.DiscountPercentage, Value: d("10")},
	}
}

func TestDraft_AddLine_CalculaTotal(t *testing.T) {
	var dr pos.Draft
	require.NoError(t, dr.AddLine(lineaValida()))

	lines := dr.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "180.00", lines[0].Total.StringFixed(2))
}

func TestDraft_AddLine_Rechazos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*pos.Line)
	}{
		{"código vacío", func(l *pos.Line) { l.Code = "" }},
		{"cantidad cero", func(l *pos.Line) { l.Quantity = 0 }},
		{"cantidad negativa", func(l *pos.Line) { l.Quantity = -1 }},
		{"cantidad mayor al stock", func(l *pos.Line) { l.Quantity = 11 }},
		{"descuento inválido", func(l *pos.Line) { l.Discount.Type = "magia" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var dr pos.Draft
			l := lineaValida()
			tc.mutate(&l)
			err := dr.AddLine(l)
			require.Error(t, err)
			assert.Equal(t, 0, dr.Len(), "un rechazo no debe mutar el borrador")
		})
	}
}

// El subtotal siempre es la suma de los totales de línea vigentes, después
// de cada agregado y de cada eliminación.
func TestDraft_Totals_TrasAddYRemove(t *testing.T) {
	var dr pos.Draft
	require.NoError(t, dr.AddLine(lineaValida())) // 180.00
	require.NoError(t, dr.AddLine(pos.Line{
		Code: "B1", Name: "Filtros", Quantity: 1, Available: 5,
		UnitPrice: d("50"), Discount: pos.Discount{Type: pos.DiscountFixed, Value: d("5")},
	})) // 45.00

	subtotal, total := dr.Totals()
	assert.Equal(t, "225.00", subtotal.StringFixed(2))
	assert.Equal(t, "225.00", total.StringFixed(2), "sin impuestos ni cargos: total = subtotal")

	require.NoError(t, dr.RemoveLine(0))
	subtotal, total = dr.Totals()
	assert.Equal(t, "45.00", subtotal.StringFixed(2))
	assert.Equal(t, "45.00", total.StringFixed(2))
}

func TestDraft_RemoveLine_IndiceFueraDeRango(t *testing.T) {
	var dr pos.Draft
	require.NoError(t, dr.AddLine(lineaValida()))
	assert.Error(t, dr.RemoveLine(-1))
	assert.Error(t, dr.RemoveLine(1))
	assert.Equal(t, 1, dr.Len())
}

func TestDraft_Reset(t *testing.T) {
	var dr pos.Draft
	require.NoError(t, dr.AddLine(lineaValida()))
	dr.Reset()
	assert.Equal(t, 0, dr.Len())
	subtotal, _ := dr.Totals()
	assert.True(t, subtotal.IsZero())
}
