package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/tienda-ropa-api/internal/application/analytics"
	"github.com/tu-usuario/tienda-ropa-api/internal/application/dto"
)

// DashboardHandler maneja el endpoint de resumen de la tienda.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los KPIs de la tienda.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_products, total_inventory_value,
// sales_this_month, low_stock_products, recent_sales, top_products).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
