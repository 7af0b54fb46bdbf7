package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de la tienda.
// Consume products y las tablas de órdenes; nunca las muta.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountProducts devuelve el tamaño del catálogo.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountProducts: %w", err)
	}
	return total, nil
}

// InventoryValue devuelve SUM(stock * last_cost) sobre todo el catálogo.
// COALESCE devuelve cero con el catálogo vacío.
func (r *AnalyticsRepo) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(stock * last_cost), 0) FROM products`,
	).Scan(&value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.InventoryValue: %w", err)
	}
	return value, nil
}

// SalesThisMonth suma los totales de las ventas del mes calendario en curso.
func (r *AnalyticsRepo) SalesThisMonth(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0)
		FROM sales_orders
		WHERE date_trunc('month', sale_date) = date_trunc('month', now())`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SalesThisMonth: %w", err)
	}
	return total, nil
}

// LowStockProducts lista productos con stock bajo el umbral, el más crítico primero.
func (r *AnalyticsRepo) LowStockProducts(ctx context.Context, threshold int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, size, stock, units_sold, last_cost, sale_price, COALESCE(note, ''), created_at, updated_at
		FROM products WHERE stock < $1 ORDER BY stock ASC`
	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("analytics.LowStockProducts: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// RecentSales devuelve las últimas ventas con su número de líneas.
func (r *AnalyticsRepo) RecentSales(ctx context.Context, limit int) ([]*repository.RecentSale, error) {
	query := `
		SELECT so.id, COALESCE(so.label, ''), to_char(so.sale_date, 'YYYY-MM-DD'), so.total, COUNT(sol.id)
		FROM sales_orders so
		LEFT JOIN sales_order_lines sol ON sol.order_id = so.id
		GROUP BY so.id
		ORDER BY so.sale_date DESC, so.created_at DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.RecentSales: %w", err)
	}
	defer rows.Close()
	var list []*repository.RecentSale
	for rows.Next() {
		var s repository.RecentSale
		if err := rows.Scan(&s.OrderID, &s.Label, &s.SaleDate, &s.Total, &s.TotalItems); err != nil {
			return nil, fmt.Errorf("analytics.RecentSales scan: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// TopSellers devuelve los productos con más unidades vendidas acumuladas.
func (r *AnalyticsRepo) TopSellers(ctx context.Context, limit int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, size, stock, units_sold, last_cost, sale_price, COALESCE(note, ''), created_at, updated_at
		FROM products WHERE units_sold > 0 ORDER BY units_sold DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopSellers: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}
