package billing

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caja-pos/internal/application/dto"
	"github.com/tu-usuario/caja-pos/internal/domain"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/pos"
	"github.com/tu-usuario/caja-pos/internal/domain/repository"
)

// InvoiceUseCase finaliza facturas y resuelve lecturas y borrado.
type InvoiceUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
	pageSize    int
	now         func() time.Time
	intn        func(n int) int
}

// NewInvoiceUseCase construye el caso de uso. pageSize es el tamaño de
// página crudo del listado (20 en producción).
func NewInvoiceUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	pageSize int,
) *InvoiceUseCase {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &InvoiceUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
		pageSize:    pageSize,
		now:         time.Now,
		intn:        rand.Intn,
	}
}

// FinalizeInvoice valida las líneas contra el catálogo actual, arma la
// factura con número INV-AAMM-NNNN y la persiste junto con el descuento de
// stock en una sola transacción. Si la persistencia falla no queda ningún
// registro parcial y el borrador del cliente sigue intacto para reintentar.
func (uc *InvoiceUseCase) FinalizeInvoice(ctx context.Context, in dto.FinalizeInvoiceRequest) (*dto.InvoiceResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.PaymentMethod {
	case entity.PaymentCash, entity.PaymentCard, entity.PaymentTransfer:
	default:
		return nil, domain.ErrInvalidInput
	}

	// Revalidar cada línea con las reglas del borrador, contra el stock
	// actual. Los precios y nombres se congelan desde el catálogo.
	var draft pos.Draft
	productIDs := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Code == "" {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.productRepo.GetByCode(item.Code)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		disc := discountFromRequest(item.DiscountType, item.DiscountValue)
		if err := draft.AddLine(pos.Line{
			Code:      p.SKU,
			Name:      p.Name,
			Quantity:  item.Quantity,
			Available: p.Stock,
			UnitPrice: p.Price,
			Discount:  disc,
		}); err != nil {
			return nil, err
		}
		productIDs = append(productIDs, p.ID)
	}

	now := uc.now()
	subtotal, total := draft.Totals()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		Number:        pos.NewInvoiceNumber(now, uc.intn),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      subtotal,
		Total:         total,
		Status:        entity.InvoiceStatusCompleted,
		CreatedAt:     now,
	}

	lines := draft.Lines()
	items := make([]*entity.InvoiceItem, len(lines))
	for i, l := range lines {
		items[i] = &entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			ProductCode: l.Code,
			ProductName: l.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Discount:    l.Discount,
			Total:       l.Total,
		}
	}

	// El sufijo del número es aleatorio y puede chocar con una factura del
	// mismo mes: ante duplicado se regenera una vez y se reintenta.
	err := uc.persistInvoice(ctx, inv, items, productIDs, lines)
	if errors.Is(err, domain.ErrDuplicate) {
		inv.Number = pos.NewInvoiceNumber(now, uc.intn)
		err = uc.persistInvoice(ctx, inv, items, productIDs, lines)
	}
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items), nil
}

func (uc *InvoiceUseCase) persistInvoice(
	ctx context.Context,
	inv *entity.Invoice,
	items []*entity.InvoiceItem,
	productIDs []string,
	lines []pos.Line,
) error {
	return uc.txRunner.RunInvoice(ctx, func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		for i, l := range lines {
			if err := productRepo.DecrementStock(productIDs[i], l.Quantity); err != nil {
				return err
			}
		}
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetInvoice obtiene una factura por ID con su detalle completo.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items), nil
}

// DeleteInvoice elimina la factura y sus líneas. La confirmación del
// operador es responsabilidad del cliente.
func (uc *InvoiceUseCase) DeleteInvoice(ctx context.Context, id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

// discountFromRequest aplica los defaults del borrador: tipo porcentaje y
// valor cero cuando el cliente no manda descuento.
func discountFromRequest(discType string, value decimal.Decimal) pos.Discount {
	if discType == "" {
		discType = pos.DiscountPercentage
	}
	return pos.Discount{Type: discType, Value: value}
}

func toInvoiceResponse(inv *entity.Invoice, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		Number:        inv.Number,
		CustomerName:  inv.CustomerName,
		CustomerPhone: inv.CustomerPhone,
		PaymentMethod: inv.PaymentMethod,
		Subtotal:      inv.Subtotal.Round(2),
		Total:         inv.Total.Round(2),
		Status:        inv.Status,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		Items:         make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			Code:          it.ProductCode,
			Name:          it.ProductName,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			DiscountType:  it.Discount.Type,
			DiscountValue: it.Discount.Value,
			Total:         it.Total.Round(2),
		})
	}
	return resp
}
