// Package analytics contiene los casos de uso de solo lectura del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tienda-ropa-api/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/repository"
)

const dashboardTopN = 5 // ventas recientes y más vendidos en el widget

// DashboardUseCase arma el resumen de la tienda a partir del repositorio de
// analítica. Consume el libro de inventario y las tablas de órdenes en modo
// lectura; nunca los muta.
type DashboardUseCase struct {
	analyticsRepo     repository.AnalyticsRepository
	lowStockThreshold int
}

// NewDashboardUseCase construye el caso de uso. threshold define a partir de
// qué stock un producto aparece en la lista de por-agotarse.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, lowStockThreshold int) *DashboardUseCase {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, lowStockThreshold: lowStockThreshold}
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	totalProducts, err := uc.analyticsRepo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: contar productos: %w", err)
	}
	inventoryValue, err := uc.analyticsRepo.InventoryValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: valor de inventario: %w", err)
	}
	monthSales, err := uc.analyticsRepo.SalesThisMonth(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", err)
	}
	lowStock, err := uc.analyticsRepo.LowStockProducts(ctx, uc.lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", err)
	}
	recent, err := uc.analyticsRepo.RecentSales(ctx, dashboardTopN)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", err)
	}
	top, err := uc.analyticsRepo.TopSellers(ctx, dashboardTopN)
	if err != nil {
		return nil, fmt.Errorf("dashboard: más vendidos: %w", err)
	}

	out := &dto.DashboardSummaryDTO{
		TotalProducts:       totalProducts,
		TotalInventoryValue: inventoryValue,
		SalesThisMonth:      monthSales,
		LowStockProducts:    make([]dto.LowStockDTO, 0, len(lowStock)),
		RecentSales:         make([]dto.RecentSaleDTO, 0, len(recent)),
		TopProducts:         make([]dto.TopProductDTO, 0, len(top)),
	}
	for _, p := range lowStock {
		out.LowStockProducts = append(out.LowStockProducts, dto.LowStockDTO{
			ProductID: p.ID, Name: p.Name, Size: p.Size, Stock: p.Stock,
		})
	}
	for _, s := range recent {
		out.RecentSales = append(out.RecentSales, dto.RecentSaleDTO{
			OrderID: s.OrderID, Label: s.Label, SaleDate: s.SaleDate,
			Total: s.Total, TotalItems: s.TotalItems,
		})
	}
	for _, p := range top {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductID: p.ID, Name: p.Name, Size: p.Size,
			UnitsSold: p.UnitsSold, SalePrice: p.SalePrice,
		})
	}
	return out, nil
}
