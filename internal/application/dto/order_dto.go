package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportLineRequest línea de un recibo de mercancía.
type ImportLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreateImportOrderRequest body para POST /api/import-orders.
type CreateImportOrderRequest struct {
	ReceiptDate time.Time           `json:"receipt_date"`
	Note        string              `json:"note,omitempty"`
	Lines       []ImportLineRequest `json:"lines"`
}

// SalesLineRequest línea de una venta.
type SalesLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSalesOrderRequest body para POST /api/sales-orders.
type CreateSalesOrderRequest struct {
	Label    string             `json:"label,omitempty"`
	SaleDate time.Time          `json:"sale_date"`
	Note     string             `json:"note,omitempty"`
	Lines    []SalesLineRequest `json:"lines"`
}

// CreateOrderResponse respuesta de creación de órdenes.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// OrderSummaryResponse fila de los listados de órdenes.
type OrderSummaryResponse struct {
	ID          string          `json:"id"`
	Label       string          `json:"label,omitempty"`
	Date        time.Time       `json:"date"`
	Note        string          `json:"note,omitempty"`
	TotalItems  int             `json:"total_items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// OrderListResponse respuesta de GET /api/import-orders y /api/sales-orders.
type OrderListResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
	Page   PageResponse           `json:"page"`
}
