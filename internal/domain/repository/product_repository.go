package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// GetStock, AddStock y RemoveStock son las únicas operaciones que tocan el
// libro de inventario y deben ejecutarse dentro de la transacción de la orden
// (repositorio atado a la tx del TxRunner). Los ajustes son deltas relativos
// aplicados en la base de datos, nunca read-modify-write con un valor leído antes.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context, search string) (int, error)
	Delete(ctx context.Context, id string) error

	// GetStock lee el stock actual del producto. Devuelve domain.ErrNotFound
	// si el producto no existe.
	GetStock(ctx context.Context, productID string) (int, error)
	// AddStock suma quantity al stock y sobrescribe el último costo de compra.
	AddStock(ctx context.Context, productID string, quantity int, unitCost decimal.Decimal) error
	// RemoveStock resta quantity del stock, suma quantity a unidades vendidas
	// y sobrescribe el precio de venta.
	RemoveStock(ctx context.Context, productID string, quantity int, unitPrice decimal.Decimal) error
}
