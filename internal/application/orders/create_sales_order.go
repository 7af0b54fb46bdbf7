package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa-api/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/repository"
)

// CreateSalesOrderUseCase registra una venta de forma transaccional: cabecera
// con el total calculado desde el request, N líneas y N descuentos de stock,
// todo o nada. Una línea sin stock suficiente aborta la orden completa.
type CreateSalesOrderUseCase struct {
	txRunner TxRunner
}

// NewCreateSalesOrderUseCase construye el caso de uso.
func NewCreateSalesOrderUseCase(txRunner TxRunner) *CreateSalesOrderUseCase {
	return &CreateSalesOrderUseCase{txRunner: txRunner}
}

// orderTotal suma quantity × unit_price sobre las líneas del request.
// El total se calcula una sola vez, antes de persistir; no se recalcula desde
// las filas insertadas.
func orderTotal(lines []dto.SalesLineRequest) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromInt(int64(l.Quantity)).Mul(l.UnitPrice))
	}
	return total
}

// Execute valida las líneas, inicia una transacción, inserta la cabecera y por
// cada línea (en el orden del request): lee el stock actual dentro de la tx,
// verifica suficiencia, inserta la fila y aplica el descuento como delta
// relativo. El chequeo es por línea, no un preflight del lote: dos líneas del
// mismo producto se validan contra el stock ya descontado por la anterior.
// Cualquier error hace Rollback y no deja cambio observable.
func (uc *CreateSalesOrderUseCase) Execute(ctx context.Context, in dto.CreateSalesOrderRequest) (string, error) {
	if err := validateSalesLines(in.Lines); err != nil {
		return "", err
	}

	order := &entity.SalesOrder{
		ID:        uuid.New().String(),
		Label:     in.Label,
		SaleDate:  in.SaleDate,
		Total:     orderTotal(in.Lines),
		Note:      in.Note,
		CreatedAt: time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.ImportOrderRepository,
		salesRepo repository.SalesOrderRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := salesRepo.CreateHeader(ctx, order); err != nil {
			return err
		}
		for _, l := range in.Lines {
			stock, err := productRepo.GetStock(ctx, l.ProductID)
			if err != nil {
				return err
			}
			if stock < l.Quantity {
				return &domain.InsufficientStockError{
					ProductID: l.ProductID,
					Requested: l.Quantity,
					Available: stock,
				}
			}
			line := &entity.SalesOrderLine{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
			}
			if err := salesRepo.CreateLine(ctx, line); err != nil {
				return err
			}
			// Delta relativo en la BD: stock = stock - q, units_sold = units_sold + q,
			// sale_price = unit_price
			if err := productRepo.RemoveStock(ctx, l.ProductID, l.Quantity, l.UnitPrice); err != nil {
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
