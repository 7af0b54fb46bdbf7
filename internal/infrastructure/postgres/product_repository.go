package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, size, stock, units_sold, last_cost, sale_price, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Size, product.Stock, product.UnitsSold,
		product.LastCost, product.SalePrice, nullIfEmpty(product.Note), product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, size, stock, units_sold, last_cost, sale_price, COALESCE(note, ''), created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Size, &p.Stock, &p.UnitsSold,
		&p.LastCost, &p.SalePrice, &p.Note, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza los campos editables del catálogo. Stock, unidades vendidas
// y último costo no se tocan aquí: los maneja el procesamiento de órdenes.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, size = $3, sale_price = $4, note = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Size, product.SalePrice, nullIfEmpty(product.Note), product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con filtro por nombre o talla y paginación.
func (r *ProductRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, size, stock, units_sold, last_cost, sale_price, COALESCE(note, ''), created_at, updated_at
		FROM products`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" WHERE name ILIKE $%d OR size ILIKE $%d", pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Size, &p.Stock, &p.UnitsSold,
			&p.LastCost, &p.SalePrice, &p.Note, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count cuenta productos, con el mismo filtro que List.
func (r *ProductRepo) Count(ctx context.Context, search string) (int, error) {
	query := `SELECT COUNT(*) FROM products`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR size ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// Delete elimina un producto por ID (sin efectos de inventario).
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// GetStock lee el stock actual del producto (dentro de la tx de la orden).
func (r *ProductRepo) GetStock(ctx context.Context, productID string) (int, error) {
	var stock int
	err := r.q.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1`, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get stock: %w", err)
	}
	return stock, nil
}

// AddStock suma quantity al stock y sobrescribe el último costo de compra.
// Delta relativo aplicado en la BD, no read-modify-write.
func (r *ProductRepo) AddStock(ctx context.Context, productID string, quantity int, unitCost decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock + $2, last_cost = $3, updated_at = now() WHERE id = $1`,
		productID, quantity, unitCost,
	)
	if err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveStock resta quantity del stock, acumula unidades vendidas y
// sobrescribe el precio de venta. Delta relativo aplicado en la BD.
// La suficiencia se verifica antes con GetStock, en la misma transacción.
func (r *ProductRepo) RemoveStock(ctx context.Context, productID string, quantity int, unitPrice decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products
		 SET stock = stock - $2, units_sold = units_sold + $2, sale_price = $3, updated_at = now()
		 WHERE id = $1`,
		productID, quantity, unitPrice,
	)
	if err != nil {
		return fmt.Errorf("remove stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
