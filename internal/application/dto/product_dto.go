package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Stock y precios iniciales son opcionales (cero por defecto); después de la
// creación solo las órdenes de compra/venta mutan stock, units_sold y precios.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Stock     int             `json:"stock,omitempty"`
	LastCost  decimal.Decimal `json:"last_cost,omitempty"`
	SalePrice decimal.Decimal `json:"sale_price,omitempty"`
	Note      string          `json:"note,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil = sin cambio.
type UpdateProductRequest struct {
	Name      *string          `json:"name,omitempty"`
	Size      *string          `json:"size,omitempty"`
	SalePrice *decimal.Decimal `json:"sale_price,omitempty"`
	Note      *string          `json:"note,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Stock     int             `json:"stock"`
	UnitsSold int             `json:"units_sold"`
	LastCost  decimal.Decimal `json:"last_cost"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse respuesta de GET /api/products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Page     PageResponse      `json:"page"`
}
