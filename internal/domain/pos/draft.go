package pos

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caja-pos/internal/domain"
)

// Line es una línea del borrador de factura, con el precio y el nombre del
// producto congelados al momento de agregarla.
type Line struct {
	Code      string
	Name      string
	Quantity  int64
	Available int64 // stock disponible al momento de agregar
	UnitPrice decimal.Decimal
	Discount  Discount
	Total     decimal.Decimal
}

// Draft es el borrador de factura en memoria: la lista ordenada de líneas
// que el cajero va armando. No toca persistencia; el dueño del borrador es
// quien lo pasa a las funciones de cálculo.
type Draft struct {
	lines []Line
}

// AddLine valida y agrega una línea, calculando su total. Si la validación
// falla (código vacío, cantidad fuera de rango, descuento inválido) el
// borrador no se modifica.
func (dr *Draft) AddLine(l Line) error {
	if l.Code == "" {
		return domain.ErrInvalidInput
	}
	if l.Quantity <= 0 || l.Quantity > l.Available {
		return domain.ErrInvalidInput
	}
	if err := l.Discount.Validate(); err != nil {
		return domain.ErrInvalidInput
	}
	l.Total = LineTotal(l.Quantity, l.UnitPrice, l.Discount)
	dr.lines = append(dr.lines, l)
	return nil
}

// RemoveLine elimina la línea en la posición i (base cero). Las posiciones
// visibles se renumeran implícitamente al recorrer Lines desde 1.
func (dr *Draft) RemoveLine(i int) error {
	if i < 0 || i >= len(dr.lines) {
		return domain.ErrInvalidInput
	}
	dr.lines = append(dr.lines[:i], dr.lines[i+1:]...)
	return nil
}

// Lines devuelve una copia de las líneas actuales.
func (dr *Draft) Lines() []Line {
	out := make([]Line, len(dr.lines))
	copy(out, dr.lines)
	return out
}

// Len cantidad de líneas del borrador.
func (dr *Draft) Len() int { return len(dr.lines) }

// Totals calcula subtotal y total de la factura. No hay impuestos ni cargos
// adicionales: total = subtotal = suma de totales de línea.
func (dr *Draft) Totals() (subtotal, total decimal.Decimal) {
	for _, l := range dr.lines {
		subtotal = subtotal.Add(l.Total)
	}
	return subtotal, subtotal
}

// Reset descarta todas las líneas.
func (dr *Draft) Reset() { dr.lines = nil }
