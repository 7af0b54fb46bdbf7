package orders

import (
	"context"

	"github.com/tu-usuario/tienda-ropa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad atómica de trabajo de las órdenes:
// si fn devuelve error, ningún insert ni ajuste de stock queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		importRepo repository.ImportOrderRepository,
		salesRepo repository.SalesOrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}
