package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una unidad vendible (nombre × talla) del catálogo.
// Stock, UnitsSold, LastCost y SalePrice forman el libro mayor de inventario:
// solo los mutan las órdenes de compra (import) y de venta.
// Invariantes: Stock nunca es negativo; UnitsSold nunca decrece.
type Product struct {
	ID        string
	Name      string
	Size      string          // talla (S, M, L, 38, 40...)
	Stock     int             // existencias actuales
	UnitsSold int             // acumulado histórico de unidades vendidas
	LastCost  decimal.Decimal // último costo de compra registrado
	SalePrice decimal.Decimal // precio de venta vigente
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
