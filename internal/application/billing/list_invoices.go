package billing

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/tu-usuario/caja-pos/internal/application/dto"
	"github.com/tu-usuario/caja-pos/internal/domain"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ListInvoices devuelve una página del listado en orden cronológico inverso.
//
// El filtro de texto (subcadena sobre número o nombre de cliente, sin
// distinguir mayúsculas ni tildes) y el de fechas se aplican DESPUÉS del
// fetch, sobre la página cruda. HasMore y NextCursor se derivan del conteo
// crudo: una página de 20 registros con filtro que no deja ninguno sigue
// ofreciendo "cargar más". Es el comportamiento documentado de la caja, no
// un bug a corregir en silencio.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, q dto.ListInvoicesQuery) (*dto.ListInvoicesResponse, error) {
	after, err := decodeCursor(q.Cursor)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dateFrom, dateTo, err := parseDateRange(q.DateFrom, q.DateTo)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	raw, err := uc.invoiceRepo.ListPage(uc.pageSize, after)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListInvoicesResponse{
		Invoices: make([]dto.InvoiceSummary, 0, len(raw)),
		HasMore:  len(raw) == uc.pageSize,
	}
	if len(raw) > 0 {
		last := raw[len(raw)-1]
		resp.NextCursor = encodeCursor(repository.PageCursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}

	search := foldText(q.Search)
	for _, inv := range raw {
		if !matchesSearch(inv, search) {
			continue
		}
		if !withinDates(inv.CreatedAt, dateFrom, dateTo) {
			continue
		}
		resp.Invoices = append(resp.Invoices, dto.InvoiceSummary{
			ID:            inv.ID,
			Number:        inv.Number,
			CustomerName:  inv.CustomerName,
			PaymentMethod: inv.PaymentMethod,
			Total:         inv.Total.Round(2),
			Status:        inv.Status,
			CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func matchesSearch(inv *entity.Invoice, folded string) bool {
	if folded == "" {
		return true
	}
	return strings.Contains(foldText(inv.Number), folded) ||
		strings.Contains(foldText(inv.CustomerName), folded)
}

// withinDates: [from, to+1día) — la fecha final incluye el día completo.
// Las fechas se interpretan como medianoche UTC (parseDateRange) y la
// comparación es entre instantes, así que el huso de created_at no altera
// el resultado: el corte del día es siempre la medianoche UTC.
func withinDates(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && !t.Before(to.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

func parseDateRange(fromStr, toStr string) (from, to *time.Time, err error) {
	if fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldText normaliza para búsqueda: minúsculas y sin marcas diacríticas,
// para que "Jose" encuentre a "José".
func foldText(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Cursor opaco: base64("RFC3339Nano|id") del último registro crudo.
func encodeCursor(c repository.PageCursor) string {
	raw := c.CreatedAt.Format(time.RFC3339Nano) + "|" + c.ID
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(s string) (*repository.PageCursor, error) {
	if s == "" {
		return nil, nil
	}
	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("cursor inválido: %w", err)
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("cursor inválido")
	}
	ts, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return nil, fmt.Errorf("cursor inválido: %w", err)
	}
	return &repository.PageCursor{CreatedAt: ts, ID: parts[1]}, nil
}
