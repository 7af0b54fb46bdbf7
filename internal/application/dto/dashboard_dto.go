package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs de la tienda: tamaño del catálogo, valor del inventario al último costo,
// ventas del mes en curso, productos por agotarse, ventas recientes y los
// productos más vendidos.
type DashboardSummaryDTO struct {
	TotalProducts       int             `json:"total_products"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"` // SUM(stock * last_cost)
	SalesThisMonth      decimal.Decimal `json:"sales_this_month"`

	LowStockProducts []LowStockDTO   `json:"low_stock_products"`
	RecentSales      []RecentSaleDTO `json:"recent_sales"`
	TopProducts      []TopProductDTO `json:"top_products"`
}

// LowStockDTO producto por debajo del umbral de stock.
type LowStockDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Stock     int    `json:"stock"`
}

// RecentSaleDTO venta reciente para el widget del dashboard.
type RecentSaleDTO struct {
	OrderID    string          `json:"order_id"`
	Label      string          `json:"label,omitempty"`
	SaleDate   string          `json:"sale_date"`
	Total      decimal.Decimal `json:"total"`
	TotalItems int             `json:"total_items"`
}

// TopProductDTO producto ordenado por unidades vendidas acumuladas.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	UnitsSold int             `json:"units_sold"`
	SalePrice decimal.Decimal `json:"sale_price"`
}
