package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
)

// ImportOrderSummary fila de listado: cabecera más agregados de sus líneas.
type ImportOrderSummary struct {
	Order       entity.ImportOrder
	TotalItems  int
	TotalAmount decimal.Decimal
}

// ImportOrderRepository define el puerto de persistencia para recibos de mercancía.
// CreateHeader y CreateLine deben usarse dentro de la transacción de la orden.
type ImportOrderRepository interface {
	CreateHeader(ctx context.Context, order *entity.ImportOrder) error
	CreateLine(ctx context.Context, line *entity.ImportOrderLine) error
	List(ctx context.Context, limit, offset int) ([]*ImportOrderSummary, error)
	Count(ctx context.Context) (int, error)
}
