package pos

import (
	"fmt"
	"time"
)

// NewInvoiceNumber genera un número de factura legible con formato
// INV-{AAMM}-{NNNN}, donde AAMM son año y mes de emisión a dos dígitos y
// NNNN es un sufijo aleatorio en [1000, 9999]. intn debe comportarse como
// rand.Intn; se inyecta para poder fijarlo en pruebas.
func NewInvoiceNumber(now time.Time, intn func(n int) int) string {
	suffix := 1000 + intn(9000)
	return fmt.Sprintf("INV-%02d%02d-%d", now.Year()%100, int(now.Month()), suffix)
}
