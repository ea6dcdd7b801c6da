package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"store-api/httputil"
	"store-api/models"
	"store-api/services"
)

// OrderController handles HTTP requests for order operations.
type OrderController struct {
	orders services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orders services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// List handles GET /orders.
func (oc *OrderController) List(c *gin.Context) {
	page, limit, fieldErrs := parsePagination(c)

	filters := models.OrderFilters{
		Status:    c.Query("status"),
		MinAmount: parseFloatQuery(c, "minAmount", &fieldErrs),
		MaxAmount: parseFloatQuery(c, "maxAmount", &fieldErrs),
	}
	if raw := c.Query("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			fieldErrs = append(fieldErrs, httputil.FieldError{
				Field: "userId", Message: "must be a valid UUID", Value: raw,
			})
		} else {
			filters.UserID = &userID
		}
	}
	if len(fieldErrs) > 0 {
		httputil.Error(c, 400, "Validation failed", fieldErrs)
		return
	}

	orders, meta, svcErr := oc.orders.List(c.Request.Context(), filters, page, limit)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}
	httputil.OKPaginated(c, orders, meta)
}

// Get handles GET /orders/:id.
func (oc *OrderController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, svcErr := oc.orders.Get(c.Request.Context(), id)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.OK(c, order)
}

// Create handles POST /orders.
func (oc *OrderController) Create(c *gin.Context) {
	var req models.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, svcErr := oc.orders.Create(c.Request.Context(), &req)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.Created(c, order)
}

// Replace handles PUT /orders/:id.
func (oc *OrderController) Replace(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.ReplaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, svcErr := oc.orders.Replace(c.Request.Context(), id, &req)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.OK(c, order)
}

// Patch handles PATCH /orders/:id.
func (oc *OrderController) Patch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.PatchOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, svcErr := oc.orders.Patch(c.Request.Context(), id, &req)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.OK(c, order)
}

// Delete handles DELETE /orders/:id.
func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if svcErr := oc.orders.Delete(c.Request.Context(), id); svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.Message(c, "Order deleted successfully")
}
