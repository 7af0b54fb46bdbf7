package orders

import (
	"context"

	"github.com/tu-usuario/tienda-ropa-api/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/repository"
)

// ListOrdersUseCase listados paginados de recibos y ventas (solo lectura,
// repositorios atados al pool, sin transacción).
type ListOrdersUseCase struct {
	importRepo repository.ImportOrderRepository
	salesRepo  repository.SalesOrderRepository
}

// NewListOrdersUseCase construye el caso de uso.
func NewListOrdersUseCase(importRepo repository.ImportOrderRepository, salesRepo repository.SalesOrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{importRepo: importRepo, salesRepo: salesRepo}
}

// ListImportOrders devuelve una página de recibos con líneas y monto agregados.
func (uc *ListOrdersUseCase) ListImportOrders(ctx context.Context, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	rows, err := uc.importRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.importRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Orders: make([]dto.OrderSummaryResponse, 0, len(rows)),
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, r := range rows {
		out.Orders = append(out.Orders, dto.OrderSummaryResponse{
			ID:          r.Order.ID,
			Date:        r.Order.ReceiptDate,
			Note:        r.Order.Note,
			TotalItems:  r.TotalItems,
			TotalAmount: r.TotalAmount,
		})
	}
	return out, nil
}

// ListSalesOrders devuelve una página de ventas con su número de líneas.
// El monto es el total de la cabecera (calculado al crear la orden).
func (uc *ListOrdersUseCase) ListSalesOrders(ctx context.Context, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	rows, err := uc.salesRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.salesRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Orders: make([]dto.OrderSummaryResponse, 0, len(rows)),
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, r := range rows {
		out.Orders = append(out.Orders, dto.OrderSummaryResponse{
			ID:          r.Order.ID,
			Label:       r.Order.Label,
			Date:        r.Order.SaleDate,
			Note:        r.Order.Note,
			TotalItems:  r.TotalItems,
			TotalAmount: r.Order.Total,
		})
	}
	return out, nil
}
