package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/repository"
)

var _ repository.ImportOrderRepository = (*ImportOrderRepo)(nil)

// ImportOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type ImportOrderRepo struct {
	q Querier
}

// NewImportOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewImportOrderRepository(q Querier) *ImportOrderRepo {
	return &ImportOrderRepo{q: q}
}

// CreateHeader inserta la cabecera de un recibo de mercancía.
func (r *ImportOrderRepo) CreateHeader(ctx context.Context, order *entity.ImportOrder) error {
	query := `
		INSERT INTO import_orders (id, receipt_date, note, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, order.ID, order.ReceiptDate, nullIfEmpty(order.Note), order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert import order: %w", err)
	}
	return nil
}

// CreateLine inserta una línea referenciando la cabecera.
func (r *ImportOrderRepo) CreateLine(ctx context.Context, line *entity.ImportOrderLine) error {
	query := `
		INSERT INTO import_order_lines (id, order_id, product_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, line.ID, line.OrderID, line.ProductID, line.Quantity, line.UnitCost)
	if err != nil {
		return fmt.Errorf("insert import order line: %w", err)
	}
	return nil
}

// List lista recibos con el número de líneas y el monto agregado.
func (r *ImportOrderRepo) List(ctx context.Context, limit, offset int) ([]*repository.ImportOrderSummary, error) {
	query := `
		SELECT io.id, io.receipt_date, COALESCE(io.note, ''), io.created_at,
		       COUNT(iol.id), COALESCE(SUM(iol.quantity * iol.unit_cost), 0)
		FROM import_orders io
		LEFT JOIN import_order_lines iol ON iol.order_id = io.id
		GROUP BY io.id
		ORDER BY io.receipt_date DESC, io.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list import orders: %w", err)
	}
	defer rows.Close()
	var list []*repository.ImportOrderSummary
	for rows.Next() {
		var s repository.ImportOrderSummary
		if err := rows.Scan(&s.Order.ID, &s.Order.ReceiptDate, &s.Order.Note, &s.Order.CreatedAt,
			&s.TotalItems, &s.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan import order: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Count cuenta los recibos registrados.
func (r *ImportOrderRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM import_orders`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count import orders: %w", err)
	}
	return total, nil
}
