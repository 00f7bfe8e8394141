package returns

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/caja-pos/internal/application/billing"
	"github.com/tu-usuario/caja-pos/internal/application/dto"
	"github.com/tu-usuario/caja-pos/internal/domain"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/pos"
	"github.com/tu-usuario/caja-pos/internal/domain/repository"
)

// ReturnUseCase flujo de devoluciones: búsqueda de la factura original,
// validación de cantidades y persistencia de la devolución.
//
// La búsqueda y la escritura son dos operaciones independientes, sin
// transacción que las agrupe: entre una y otra la factura puede incluso ser
// eliminada. La devolución guarda el número de factura como referencia
// legible, no como llave foránea. La devolución tampoco repone stock.
type ReturnUseCase struct {
	invoiceRepo repository.InvoiceRepository
	returnRepo  repository.ReturnRepository
	txRunner    billing.TxRunner
	now         func() time.Time
}

// NewReturnUseCase construye el caso de uso.
func NewReturnUseCase(
	invoiceRepo repository.InvoiceRepository,
	returnRepo repository.ReturnRepository,
	txRunner billing.TxRunner,
) *ReturnUseCase {
	return &ReturnUseCase{
		invoiceRepo: invoiceRepo,
		returnRepo:  returnRepo,
		txRunner:    txRunner,
		now:         time.Now,
	}
}

// LookupInvoice busca la factura por su número legible y devuelve sus
// artículos originales para que el operador edite cantidades a devolver.
// Número en blanco → ErrInvalidInput; sin coincidencia exacta → ErrNotFound.
func (uc *ReturnUseCase) LookupInvoice(ctx context.Context, number string) (*dto.ReturnLookupResponse, error) {
	if number == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(inv.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.ReturnLookupResponse{
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.Number,
		CustomerName:  inv.CustomerName,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		Items:         make([]dto.ReturnableItem, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.ReturnableItem{
			Code:          it.ProductCode,
			Name:          it.ProductName,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			DiscountType:  it.Discount.Type,
			DiscountValue: it.Discount.Value,
		})
	}
	return resp, nil
}

// ProcessReturn valida y persiste la devolución. Rechaza: motivo principal
// vacío, ninguna cantidad a devolver mayor a cero, cantidades fuera de
// [0, cantidad original] y artículos que no estaban en la factura. Los
// artículos con cantidad cero se excluyen del registro persistido.
func (uc *ReturnUseCase) ProcessReturn(ctx context.Context, in dto.ProcessReturnRequest) (*dto.ReturnResponse, error) {
	if in.InvoiceNumber == "" || in.Reason == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	inv, err := uc.invoiceRepo.GetByNumber(in.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	originals, err := uc.invoiceRepo.GetItemsByInvoiceID(inv.ID)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]*entity.InvoiceItem, len(originals))
	for _, it := range originals {
		byCode[it.ProductCode] = it
	}

	// Un código por entrada: entradas repetidas del mismo artículo podrían
	// validar cada una contra la cantidad original completa y devolver en
	// conjunto más de lo facturado.
	seen := make(map[string]bool, len(in.Items))
	lines := make([]pos.ReturnLine, 0, len(in.Items))
	for _, item := range in.Items {
		orig, ok := byCode[item.Code]
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		if seen[item.Code] {
			return nil, domain.ErrInvalidInput
		}
		seen[item.Code] = true
		discType := item.DiscountType
		if discType == "" {
			discType = pos.DiscountPercentage
		}
		lines = append(lines, pos.ReturnLine{
			Code:        orig.ProductCode,
			Name:        orig.ProductName,
			OriginalQty: orig.Quantity,
			ReturnQty:   item.ReturnQty,
			UnitPrice:   orig.UnitPrice,
			Discount:    pos.Discount{Type: discType, Value: item.DiscountValue},
			Reason:      item.Reason,
		})
	}
	if err := pos.ValidateReturnLines(lines); err != nil {
		return nil, err
	}
	units, totalRefund := pos.ComputeRefund(lines)
	if units == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	returnDate := now
	if in.ReturnDate != "" {
		t, err := time.Parse("2006-01-02", in.ReturnDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		returnDate = t
	}
	action := in.Action
	if action == "" {
		action = entity.ReturnActionRefund
	}

	rec := &entity.ReturnRecord{
		ID:            uuid.New().String(),
		InvoiceNumber: inv.Number,
		ReturnDate:    returnDate,
		Reason:        in.Reason,
		Notes:         in.Notes,
		Action:        action,
		TotalRefund:   totalRefund,
		Status:        entity.ReturnStatusProcessed,
		ProcessedAt:   now,
	}
	var recItems []*entity.ReturnItem
	for _, l := range lines {
		if l.ReturnQty <= 0 {
			continue
		}
		recItems = append(recItems, &entity.ReturnItem{
			ID:          uuid.New().String(),
			ReturnID:    rec.ID,
			ProductCode: l.Code,
			ProductName: l.Name,
			OriginalQty: l.OriginalQty,
			ReturnedQty: l.ReturnQty,
			UnitPrice:   l.UnitPrice,
			Discount:    l.Discount,
			Reason:      l.Reason,
			Refund:      l.Refund(),
		})
	}

	err = uc.txRunner.RunReturn(ctx, func(returnRepo repository.ReturnRepository) error {
		if err := returnRepo.Create(rec); err != nil {
			return err
		}
		for _, it := range recItems {
			if err := returnRepo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReturnResponse(rec, recItems, units), nil
}

// GetReturn obtiene una devolución por ID con sus artículos (para el recibo).
func (uc *ReturnUseCase) GetReturn(ctx context.Context, id string) (*dto.ReturnResponse, error) {
	rec, err := uc.returnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.returnRepo.GetItemsByReturnID(id)
	if err != nil {
		return nil, err
	}
	var units int64
	for _, it := range items {
		units += it.ReturnedQty
	}
	return toReturnResponse(rec, items, units), nil
}

func toReturnResponse(rec *entity.ReturnRecord, items []*entity.ReturnItem, units int64) *dto.ReturnResponse {
	resp := &dto.ReturnResponse{
		ID:            rec.ID,
		InvoiceNumber: rec.InvoiceNumber,
		ReturnDate:    rec.ReturnDate.Format("2006-01-02"),
		Reason:        rec.Reason,
		Notes:         rec.Notes,
		Action:        rec.Action,
		TotalUnits:    units,
		TotalRefund:   rec.TotalRefund.Round(2),
		Status:        rec.Status,
		ProcessedAt:   rec.ProcessedAt.Format(time.RFC3339),
		Items:         make([]dto.ReturnItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.ReturnItemResponse{
			Code:          it.ProductCode,
			Name:          it.ProductName,
			OriginalQty:   it.OriginalQty,
			ReturnedQty:   it.ReturnedQty,
			UnitPrice:     it.UnitPrice,
			DiscountType:  it.Discount.Type,
			DiscountValue: it.Discount.Value,
			Reason:        it.Reason,
			Refund:        it.Refund.Round(2),
		})
	}
	return resp
}
