package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-ropa-api/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/repository"
)

// CreateImportOrderUseCase registra un recibo de mercancía de forma transaccional:
// cabecera, N líneas y N ajustes de inventario, todo o nada.
type CreateImportOrderUseCase struct {
	txRunner TxRunner
}

// NewCreateImportOrderUseCase construye el caso de uso.
func NewCreateImportOrderUseCase(txRunner TxRunner) *CreateImportOrderUseCase {
	return &CreateImportOrderUseCase{txRunner: txRunner}
}

// Execute valida las líneas, inicia una transacción, inserta la cabecera y por
// cada línea (en el orden del request) inserta la fila y suma la cantidad al
// stock del producto sobrescribiendo su último costo. Si dos líneas traen el
// mismo producto, gana el costo de la última procesada.
// Cualquier error hace Rollback y no deja cambio observable.
func (uc *CreateImportOrderUseCase) Execute(ctx context.Context, in dto.CreateImportOrderRequest) (string, error) {
	if err := validateImportLines(in.Lines); err != nil {
		return "", err
	}

	order := &entity.ImportOrder{
		ID:          uuid.New().String(),
		ReceiptDate: in.ReceiptDate,
		Note:        in.Note,
		CreatedAt:   time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		importRepo repository.ImportOrderRepository,
		_ repository.SalesOrderRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := importRepo.CreateHeader(ctx, order); err != nil {
			return err
		}
		for _, l := range in.Lines {
			line := &entity.ImportOrderLine{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitCost:  l.UnitCost,
			}
			if err := importRepo.CreateLine(ctx, line); err != nil {
				return err
			}
			// Delta relativo en la BD: stock = stock + quantity, last_cost = unit_cost
			if err := productRepo.AddStock(ctx, l.ProductID, l.Quantity, l.UnitCost); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return order.ID, nil
}
