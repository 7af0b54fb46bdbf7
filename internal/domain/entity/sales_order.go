package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrder cabecera de una venta. Total siempre es la suma de
// Quantity × UnitPrice de sus líneas, calculada antes de persistir.
type SalesOrder struct {
	ID        string
	Label     string
	SaleDate  time.Time
	Total     decimal.Decimal
	Note      string
	CreatedAt time.Time
}

// SalesOrderLine línea de una venta: producto, cantidad vendida y precio unitario.
// Precondición: la cantidad no puede superar el stock del producto al momento de
// procesar la línea. Al confirmarse resta Quantity del stock, suma Quantity a
// las unidades vendidas y sobrescribe el precio de venta del producto.
type SalesOrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Amount monto de la línea (Quantity × UnitPrice), siempre derivado.
func (l SalesOrderLine) Amount() decimal.Decimal {
	return decimal.NewFromInt(int64(l.Quantity)).Mul(l.UnitPrice)
}
