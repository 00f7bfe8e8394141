package billing

import (
	"context"

	"github.com/tu-usuario/caja-pos/internal/domain"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/repository"
)

// Fakes en memoria para los casos de uso. Implementan los puertos completos
// aunque cada test use solo una parte.

type fakeProductRepo struct {
	products     []*entity.Product
	decremented  map[string]int64
	decrementErr error
}

func (f *fakeProductRepo) Create(*entity.Product) error            { return nil }
func (f *fakeProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == code || (p.Barcode != "" && p.Barcode == code) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error             { return nil }

func (f *fakeProductRepo) DecrementStock(productID string, qty int64) error {
	if f.decrementErr != nil {
		return f.decrementErr
	}
	if f.decremented == nil {
		f.decremented = make(map[string]int64)
	}
	f.decremented[productID] += qty
	return nil
}

func (f *fakeProductRepo) Delete(string) error { return nil }

type fakeInvoiceRepo struct {
	created    []*entity.Invoice
	items      []*entity.InvoiceItem
	listing    []*entity.Invoice // orden cronológico inverso, para ListPage
	dupNumbers map[string]bool   // números que provocan ErrDuplicate en Create
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if f.dupNumbers[inv.Number] {
		return domain.ErrDuplicate
	}
	f.created = append(f.created, inv)
	return nil
}

func (f *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range f.created {
		if inv.ID == id {
			return inv, nil
		}
	}
	for _, inv := range f.listing {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	for _, inv := range f.created {
		if inv.Number == number {
			return inv, nil
		}
	}
	for _, inv := range f.listing {
		if inv.Number == number {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	for _, it := range f.items {
		if it.InvoiceID == invoiceID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) ListPage(limit int, after *repository.PageCursor) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.listing {
		if after != nil && !beforeCursor(inv, after) {
			continue
		}
		out = append(out, inv)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// beforeCursor replica el keyset (created_at, id) < (cursor.created_at, cursor.id).
func beforeCursor(inv *entity.Invoice, c *repository.PageCursor) bool {
	if inv.CreatedAt.Before(c.CreatedAt) {
		return true
	}
	return inv.CreatedAt.Equal(c.CreatedAt) && inv.ID < c.ID
}

func (f *fakeInvoiceRepo) Delete(id string) error {
	for i, inv := range f.created {
		if inv.ID == id {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTxRunner struct {
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
	returnRepo  repository.ReturnRepository
}

func (f *fakeTxRunner) RunInvoice(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return fn(f.productRepo, f.invoiceRepo)
}

func (f *fakeTxRunner) RunReturn(ctx context.Context, fn func(
	returnRepo repository.ReturnRepository,
) error) error {
	return fn(f.returnRepo)
}
