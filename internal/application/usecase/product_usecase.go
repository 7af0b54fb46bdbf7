package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-ropa-api/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos.
// No toca stock ni unidades vendidas después de la creación: eso es exclusivo
// del procesamiento de órdenes. Borrar un producto tampoco tiene efectos de
// inventario.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create registra un producto nuevo. Stock y precios iniciales son opcionales.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Size == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Size:      in.Size,
		Stock:     in.Stock,
		LastCost:  in.LastCost,
		SalePrice: in.SalePrice,
		Note:      in.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID devuelve un producto o nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// Update aplica cambios parciales (nombre, talla, precio de venta, nota).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.SalePrice != nil {
		p.SalePrice = *in.SalePrice
	}
	if in.Note != nil {
		p.Note = *in.Note
	}
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List devuelve una página del catálogo, con filtro por nombre o talla.
func (uc *ProductUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.productRepo.Count(ctx, search)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Products: make([]dto.ProductResponse, 0, len(products)),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, p := range products {
		out.Products = append(out.Products, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto del catálogo (sin efectos de inventario).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.productRepo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Size:      p.Size,
		Stock:     p.Stock,
		UnitsSold: p.UnitsSold,
		LastCost:  p.LastCost,
		SalePrice: p.SalePrice,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
