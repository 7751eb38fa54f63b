package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
	"github.com/mdfaizanashrafi/sovereon/internal/middleware"
)

// PaymentHandler handles the caller's payments.
type PaymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService portssvc.PaymentSvcFacade) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// registerPaymentRoutes mounts the payment routes on the authenticated group.
func registerPaymentRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewPaymentHandler(services.Payment)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.Create)
		payments.GET("", h.List)
		payments.GET("/:id", h.Get)
	}
}

// Create godoc
// @Summary Record a payment against an invoice or order
// @Description Capture is stubbed: the payment succeeds immediately and a referenced invoice is marked paid.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError(""))
		return
	}

	var req dto.CreatePaymentRequest
	if err := bindStrictJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.paymentService.CreatePayment(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, result)
}

// List godoc
// @Summary List the caller's payments
// @Tags payments
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError(""))
		return
	}

	result, err := h.paymentService.ListPayments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// Get godoc
// @Summary Get one of the caller's payments
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError(""))
		return
	}

	result, err := h.paymentService.GetPayment(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}
