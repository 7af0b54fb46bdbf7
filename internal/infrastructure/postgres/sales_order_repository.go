package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

// CreateHeader inserta la cabecera de una venta con su total ya calculado.
func (r *SalesOrderRepo) CreateHeader(ctx context.Context, order *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (id, label, sale_date, total, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		order.ID, nullIfEmpty(order.Label), order.SaleDate, order.Total,
		nullIfEmpty(order.Note), order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}

// CreateLine inserta una línea referenciando la cabecera.
func (r *SalesOrderRepo) CreateLine(ctx context.Context, line *entity.SalesOrderLine) error {
	query := `
		INSERT INTO sales_order_lines (id, order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, line.ID, line.OrderID, line.ProductID, line.Quantity, line.UnitPrice)
	if err != nil {
		return fmt.Errorf("insert sales order line: %w", err)
	}
	return nil
}

// List lista ventas con el número de líneas. El monto sale de la cabecera.
func (r *SalesOrderRepo) List(ctx context.Context, limit, offset int) ([]*repository.SalesOrderSummary, error) {
	query := `
		SELECT so.id, COALESCE(so.label, ''), so.sale_date, so.total, COALESCE(so.note, ''), so.created_at,
		       COUNT(sol.id)
		FROM sales_orders so
		LEFT JOIN sales_order_lines sol ON sol.order_id = so.id
		GROUP BY so.id
		ORDER BY so.sale_date DESC, so.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()
	var list []*repository.SalesOrderSummary
	for rows.Next() {
		var s repository.SalesOrderSummary
		if err := rows.Scan(&s.Order.ID, &s.Order.Label, &s.Order.SaleDate, &s.Order.Total,
			&s.Order.Note, &s.Order.CreatedAt, &s.TotalItems); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Count cuenta las ventas registradas.
func (r *SalesOrderRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales_orders`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count sales orders: %w", err)
	}
	return total, nil
}
