package pos_test

import (
	"math/rand"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/caja-pos/internal/domain/pos"
)

var invoiceNumberRe = regexp.MustCompile(`^INV-(\d{4})-(\d{4})$`)

func TestNewInvoiceNumber_Formato(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

	n := pos.NewInvoiceNumber(now, func(int) int { return 0 })
	assert.Equal(t, "INV-2603-1000", n)

	n = pos.NewInvoiceNumber(now, func(int) int { return 8999 })
	assert.Equal(t, "INV-2603-9999", n)
}

func TestNewInvoiceNumber_SufijoEnRango(t *testing.T) {
	now := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := pos.NewInvoiceNumber(now, rng.Intn)
		m := invoiceNumberRe.FindStringSubmatch(n)
		require.NotNil(t, m, "número %q no cumple el patrón", n)
		assert.Equal(t, "2612", m[1], "AAMM de la fecha de emisión")

		suffix, err := strconv.Atoi(m[2])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 1000)
		assert.LessOrEqual(t, suffix, 9999)
	}
}
