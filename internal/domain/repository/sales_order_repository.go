package repository

import (
	"context"

	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
)

// SalesOrderSummary fila de listado: cabecera más el número de líneas.
type SalesOrderSummary struct {
	Order      entity.SalesOrder
	TotalItems int
}

// SalesOrderRepository define el puerto de persistencia para ventas.
// CreateHeader y CreateLine deben usarse dentro de la transacción de la orden.
type SalesOrderRepository interface {
	CreateHeader(ctx context.Context, order *entity.SalesOrder) error
	CreateLine(ctx context.Context, line *entity.SalesOrderLine) error
	List(ctx context.Context, limit, offset int) ([]*SalesOrderSummary, error)
	Count(ctx context.Context) (int, error)
}
