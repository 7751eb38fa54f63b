package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
	"github.com/mdfaizanashrafi/sovereon/internal/middleware"
)

// OrderHandler handles the caller's orders.
type OrderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService portssvc.OrderSvcFacade) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// registerOrderRoutes mounts the order routes on the authenticated group.
func registerOrderRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewOrderHandler(services.Order)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
	}
}

// Create godoc
// @Summary Place an order for a catalog service
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response "Service not found"
// @Security BearerAuth
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError(""))
		return
	}

	var req dto.CreateOrderRequest
	if err := bindStrictJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.orderService.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, result)
}

// List godoc
// @Summary List the caller's orders
// @Tags orders
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError(""))
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// Get godoc
// @Summary Get one of the caller's orders
// @Description An order belonging to another user is reported as not found.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError(""))
		return
	}

	result, err := h.orderService.GetOrder(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}
