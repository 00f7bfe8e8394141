package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/caja-pos/internal/domain"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/repository"
)

// ReceiptRenderer puerto del renderer HTML imprimible.
type ReceiptRenderer interface {
	RenderInvoice(inv *entity.Invoice, items []*entity.InvoiceItem) ([]byte, error)
	RenderReturn(rec *entity.ReturnRecord, items []*entity.ReturnItem) ([]byte, error)
}

// InvoicePDFGenerator puerto del generador PDF del recibo.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(inv *entity.Invoice, items []*entity.InvoiceItem) ([]byte, error)
}

// ReceiptUseCase proyecta facturas y devoluciones ya persistidas a un
// documento imprimible. No escribe nada.
type ReceiptUseCase struct {
	invoiceRepo repository.InvoiceRepository
	returnRepo  repository.ReturnRepository
	renderer    ReceiptRenderer
	pdf         InvoicePDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	invoiceRepo repository.InvoiceRepository,
	returnRepo repository.ReturnRepository,
	renderer ReceiptRenderer,
	pdf InvoicePDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		invoiceRepo: invoiceRepo,
		returnRepo:  returnRepo,
		renderer:    renderer,
		pdf:         pdf,
	}
}

// InvoiceReceiptHTML genera el recibo HTML autoimprimible de una factura.
func (uc *ReceiptUseCase) InvoiceReceiptHTML(ctx context.Context, invoiceID string) ([]byte, error) {
	inv, items, err := uc.loadInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderInvoice(inv, items)
}

// InvoiceReceiptPDF genera el recibo PDF de una factura. Devuelve también
// el nombre de archivo sugerido.
func (uc *ReceiptUseCase) InvoiceReceiptPDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, items, err := uc.loadInvoice(invoiceID)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateInvoicePDF(inv, items)
	if err != nil {
		return nil, "", err
	}
	return b, fmt.Sprintf("recibo-%s.pdf", inv.Number), nil
}

// ReturnReceiptHTML genera el recibo HTML autoimprimible de una devolución.
func (uc *ReceiptUseCase) ReturnReceiptHTML(ctx context.Context, returnID string) ([]byte, error) {
	rec, err := uc.returnRepo.GetByID(returnID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.returnRepo.GetItemsByReturnID(returnID)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderReturn(rec, items)
}

func (uc *ReceiptUseCase) loadInvoice(id string) (*entity.Invoice, []*entity.InvoiceItem, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if inv == nil {
		return nil, nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, nil, err
	}
	return inv, items, nil
}
