package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportOrder cabecera de un recibo de mercancía (entrada de stock).
// Se crea una sola vez, junto con todas sus líneas, en una transacción;
// inmutable después de creada.
type ImportOrder struct {
	ID          string
	ReceiptDate time.Time
	Note        string
	CreatedAt   time.Time
}

// ImportOrderLine línea de un recibo: producto, cantidad recibida y costo unitario.
// Al confirmarse suma Quantity al stock del producto y sobrescribe su último costo.
type ImportOrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitCost  decimal.Decimal
}

// Amount monto de la línea (Quantity × UnitCost), siempre derivado.
func (l ImportOrderLine) Amount() decimal.Decimal {
	return decimal.NewFromInt(int64(l.Quantity)).Mul(l.UnitCost)
}
