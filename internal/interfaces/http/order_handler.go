package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-ropa-api/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain"
)

// ImportOrderCreator puerto del handler hacia el caso de uso de recibos.
type ImportOrderCreator interface {
	Execute(ctx context.Context, in dto.CreateImportOrderRequest) (string, error)
}

// SalesOrderCreator puerto del handler hacia el caso de uso de ventas.
type SalesOrderCreator interface {
	Execute(ctx context.Context, in dto.CreateSalesOrderRequest) (string, error)
}

// OrderLister puerto del handler hacia los listados de órdenes.
type OrderLister interface {
	ListImportOrders(ctx context.Context, page dto.PageRequest) (*dto.OrderListResponse, error)
	ListSalesOrders(ctx context.Context, page dto.PageRequest) (*dto.OrderListResponse, error)
}

// OrderHandler maneja las peticiones HTTP de recibos de mercancía y ventas.
type OrderHandler struct {
	createImport ImportOrderCreator
	createSales  SalesOrderCreator
	lister       OrderLister
}

// NewOrderHandler construye el handler.
func NewOrderHandler(createImport ImportOrderCreator, createSales SalesOrderCreator, lister OrderLister) *OrderHandler {
	return &OrderHandler{createImport: createImport, createSales: createSales, lister: lister}
}

// CreateImportOrder godoc
// @Summary      Registrar recibo de mercancía
// @Tags         import-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateImportOrderRequest  true  "receipt_date, note, lines[{product_id, quantity, unit_cost}]"
// @Success      201   {object}  dto.CreateOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/import-orders [post]
func (h *OrderHandler) CreateImportOrder(c *fiber.Ctx) error {
	var in dto.CreateImportOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orderID, err := h.createImport.Execute(c.Context(), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateOrderResponse{OrderID: orderID})
}

// CreateSalesOrder godoc
// @Summary      Registrar venta
// @Tags         sales-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesOrderRequest  true  "label, sale_date, note, lines[{product_id, quantity, unit_price}]"
// @Success      201   {object}  dto.CreateOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales-orders [post]
func (h *OrderHandler) CreateSalesOrder(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orderID, err := h.createSales.Execute(c.Context(), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateOrderResponse{OrderID: orderID})
}

// ListImportOrders godoc
// @Summary      Listar recibos de mercancía
// @Tags         import-orders
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/import-orders [get]
func (h *OrderHandler) ListImportOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.lister.ListImportOrders(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListSalesOrders godoc
// @Summary      Listar ventas
// @Tags         sales-orders
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/sales-orders [get]
func (h *OrderHandler) ListSalesOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.lister.ListSalesOrders(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// orderError mapea los errores de dominio de la creación de órdenes a HTTP.
// Cualquier error ya implicó Rollback: no hay cambio parcial observable.
func orderError(c *fiber.Ctx, err error) error {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: stockErr.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
