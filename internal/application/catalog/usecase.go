package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/caja-pos/internal/application/dto"
	"github.com/tu-usuario/caja-pos/internal/domain"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/repository"
)

// CatalogUseCase casos de uso del catálogo: resolución de códigos escaneados
// y administración de productos.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Lookup resuelve un código escaneado a los datos que la caja necesita para
// la línea del borrador. Coincidencia exacta por SKU o código de barras;
// sin coincidencia devuelve ErrNotFound y no tiene efectos secundarios.
func (uc *CatalogUseCase) Lookup(ctx context.Context, code string) (*dto.LookupResponse, error) {
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.LookupResponse{
		Code:      p.SKU,
		Name:      p.Name,
		Price:     p.Price,
		Available: p.Stock,
	}, nil
}

// Create da de alta un producto. SKU obligatorio y único; precio no negativo.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Barcode:     in.Barcode,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// List lista productos con paginación por offset.
func (uc *CatalogUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update modifica nombre, descripción, precio y código de barras. El stock
// no se edita aquí: lo descuenta la facturación.
func (uc *CatalogUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Barcode = in.Barcode
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Round(2),
		Stock:       p.Stock,
	}
}
