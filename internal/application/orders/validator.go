package orders

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa-api/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain"
)

// validateImportLines valida la forma de las líneas de un recibo antes de tocar
// la base de datos: producto presente, cantidad positiva, costo no negativo.
// Los recibos no requieren chequeo de stock (siempre suman).
func validateImportLines(lines []dto.ImportLineRequest) error {
	if len(lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity <= 0 || l.UnitCost.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// validateSalesLines valida la forma de las líneas de una venta.
// La suficiencia de stock NO se comprueba aquí: se comprueba línea por línea
// dentro de la transacción, para que refleje lo ya descontado por líneas
// anteriores de la misma orden.
func validateSalesLines(lines []dto.SalesLineRequest) error {
	if len(lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity <= 0 || l.UnitPrice.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
