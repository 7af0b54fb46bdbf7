package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
)

// RecentSale resumen de una venta reciente para el dashboard.
type RecentSale struct {
	OrderID    string
	Label      string
	SaleDate   string
	Total      decimal.Decimal
	TotalItems int
}

// AnalyticsRepository consultas de solo lectura sobre el libro de inventario y
// las tablas de órdenes. Nunca muta el inventario.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int, error)
	// InventoryValue devuelve SUM(stock * last_cost) sobre todo el catálogo.
	InventoryValue(ctx context.Context) (decimal.Decimal, error)
	// SalesThisMonth devuelve SUM(total) de las ventas del mes en curso.
	SalesThisMonth(ctx context.Context) (decimal.Decimal, error)
	// LowStockProducts lista productos con stock por debajo del umbral,
	// ordenados del más crítico al menos.
	LowStockProducts(ctx context.Context, threshold int) ([]*entity.Product, error)
	// RecentSales devuelve las últimas ventas con su número de líneas.
	RecentSales(ctx context.Context, limit int) ([]*RecentSale, error)
	// TopSellers devuelve los productos con más unidades vendidas acumuladas.
	TopSellers(ctx context.Context, limit int) ([]*entity.Product, error)
}
