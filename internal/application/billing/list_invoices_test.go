package billing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/caja-pos/internal/application/dto"
	"github.com/tu-usuario/caja-pos/internal/domain"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
)

// seedListing genera n facturas en orden cronológico inverso, una por día
// empezando el 25 de marzo de 2026 hacia atrás.
func seedListing(n int) []*entity.Invoice {
	base := time.Date(2026, 3, 25, 12, 0, 0, 0, time.UTC)
	out := make([]*entity.Invoice, n)
	for i := 0; i < n; i++ {
		out[i] = &entity.Invoice{
			ID:            fmt.Sprintf("inv-%03d", n-i),
			Number:        fmt.Sprintf("INV-2603-%04d", 1000+n-i),
			CustomerName:  "Cliente Mostrador",
			PaymentMethod: entity.PaymentCash,
			Total:         d("100"),
			Status:        entity.InvoiceStatusCompleted,
			CreatedAt:     base.AddDate(0, 0, -i),
		}
	}
	return out
}

func newListUC(listing []*entity.Invoice) *InvoiceUseCase {
	invoiceRepo := &fakeInvoiceRepo{listing: listing}
	productRepo := &fakeProductRepo{}
	tx := &fakeTxRunner{productRepo: productRepo, invoiceRepo: invoiceRepo}
	return NewInvoiceUseCase(tx, productRepo, invoiceRepo, 20)
}

func TestListInvoices_PrimeraPagina(t *testing.T) {
	uc := newListUC(seedListing(25))

	resp, err := uc.ListInvoices(context.Background(), dto.ListInvoicesQuery{})
	require.NoError(t, err)

	assert.Len(t, resp.Invoices, 20)
	assert.True(t, resp.HasMore)
	assert.NotEmpty(t, resp.NextCursor)
	// Orden cronológico inverso: la más reciente primero
	assert.Equal(t, "inv-025", resp.Invoices[0].ID)
}

func TestListInvoices_SegundaPaginaConCursor(t *testing.T) {
	uc := newListUC(seedListing(25))

	first, err := uc.ListInvoices(context.Background(), dto.ListInvoicesQuery{})
	require.NoError(t, err)

	second, err := uc.ListInvoices(context.Background(), dto.ListInvoicesQuery{Cursor: first.NextCursor})
	require.NoError(t, err)

	assert.Len(t, second.Invoices, 5)
	assert.False(t, second.HasMore)
	// Sin solapamiento entre páginas
	assert.Equal(t, "inv-005", second.Invoices[0].ID)
	assert.Equal(t, "inv-001", second.Invoices[4].ID)
}

// El filtro de texto se aplica después del fetch: una página cruda llena
// sigue reportando has_more aunque el filtro deje pocos (o cero) visibles.
func TestListInvoices_FiltroNoAfectaHasMore(t *testing.T) {
	listing := seedListing(25)
	listing[0].CustomerName = "María García"
	listing[1].CustomerName = "Mario Gómez"
	uc := newListUC(listing)

	resp, err := uc.ListInvoices(context.Background(), dto.ListInvoicesQuery{Search: "mar"})
	require.NoError(t, err)

	assert.Len(t, resp.Invoices, 2)
	assert.True(t, resp.HasMore, "has_more se deriva del conteo crudo, no del filtrado")
	assert.NotEmpty(t, resp.NextCursor)
}

func TestListInvoices_BusquedaSinTildesNiMayusculas(t *testing.T) {
	listing := seedListing(5)
	listing[2].CustomerName = "José Pérez"
	uc := newListUC(listing)

	for _, q := range []string{"jose", "JOSÉ", "pérez", "perez"} {
		resp, err := uc.ListInvoices(context.Background(), dto.ListInvoicesQuery{Search: q})
		require.NoError(t, err)
		require.Len(t, resp.Invoices, 1, "búsqueda %q", q)
		assert.Equal(t, "José Pérez", resp.Invoices[0].CustomerName)
	}
}

func TestListInvoices_BusquedaPorNumero(t *testing.T) {
	uc := newListUC(seedListing(5))

	resp, err := uc.ListInvoices(context.Background(), dto.ListInvoicesQuery{Search: "inv-2603-1003"})
	require.NoError(t, err)
	require.Len(t, resp.Invoices, 1)
	assert.Equal(t, "INV-2603-1003", resp.Invoices[0].Number)
}

// La fecha final del rango incluye el día completo: [from, to+1día).
func TestListInvoices_RangoDeFechasInclusivo(t *testing.T) {
	uc := newListUC(seedListing(10))

	resp, err := uc.ListInvoices(context.Background(), dto.ListInvoicesQuery{
		DateFrom: "2026-03-22",
		DateTo:   "2026-03-24",
	})
	require.NoError(t, err)

	require.Len(t, resp.Invoices, 3)
	for _, inv := range resp.Invoices {
		created, err := time.Parse(time.RFC3339, inv.CreatedAt)
		require.NoError(t, err)
		assert.False(t, created.Before(time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC)))
		assert.True(t, created.Before(time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC)))
	}
}

// El corte del día es la medianoche UTC aunque created_at venga en otro huso:
// la comparación es entre instantes, no entre representaciones locales.
func TestListInvoices_CorteDelDiaEnUTC(t *testing.T) {
	lima := time.FixedZone("America/Lima", -5*3600)
	listing := []*entity.Invoice{
		{
			ID: "inv-noche", Number: "INV-2603-2002",
			CustomerName: "Cliente Mostrador", PaymentMethod: entity.PaymentCash,
			Total: d("100"), Status: entity.InvoiceStatusCompleted,
			// 2026-03-24 19:30 en Lima = 2026-03-25 00:30 UTC: ya fuera del día
			CreatedAt: time.Date(2026, 3, 24, 19, 30, 0, 0, lima),
		},
		{
			ID: "inv-tarde", Number: "INV-2603-2001",
			CustomerName: "Cliente Mostrador", PaymentMethod: entity.PaymentCash,
			Total: d("100"), Status: entity.InvoiceStatusCompleted,
			// 2026-03-24 18:30 en Lima = 2026-03-24 23:30 UTC: dentro del día
			CreatedAt: time.Date(2026, 3, 24, 18, 30, 0, 0, lima),
		},
	}
	uc := newListUC(listing)

	resp, err := uc.ListInvoices(context.Background(), dto.ListInvoicesQuery{
		DateFrom: "2026-03-24",
		DateTo:   "2026-03-24",
	})
	require.NoError(t, err)

	require.Len(t, resp.Invoices, 1)
	assert.Equal(t, "inv-tarde", resp.Invoices[0].ID)
}

func TestListInvoices_Invalidos(t *testing.T) {
	uc := newListUC(seedListing(3))

	_, err := uc.ListInvoices(context.Background(), dto.ListInvoicesQuery{Cursor: "no-es-base64!"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ListInvoices(context.Background(), dto.ListInvoicesQuery{DateFrom: "22/03/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCursor_RoundTrip(t *testing.T) {
	uc := newListUC(seedListing(2))

	first, err := uc.ListInvoices(context.Background(), dto.ListInvoicesQuery{})
	require.NoError(t, err)

	cur, err := decodeCursor(first.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, "inv-001", cur.ID)
	assert.Equal(t, time.Date(2026, 3, 24, 12, 0, 0, 0, time.UTC), cur.CreatedAt.UTC())
}
