package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
	"github.com/mdfaizanashrafi/sovereon/internal/middleware"
)

// SubscriptionHandler handles the caller's subscriptions.
type SubscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService portssvc.SubscriptionSvcFacade) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// registerSubscriptionRoutes mounts the subscription routes on the
// authenticated group.
func registerSubscriptionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewSubscriptionHandler(services.Subscription)

	subs := rg.Group("/subscriptions")
	{
		subs.POST("", h.Create)
		subs.GET("", h.List)
		subs.POST("/:id/cancel", h.Cancel)
	}
}

// Create godoc
// @Summary Subscribe to a catalog service
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body dto.CreateSubscriptionRequest true "Subscription details"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response "Service not found"
// @Security BearerAuth
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError(""))
		return
	}

	var req dto.CreateSubscriptionRequest
	if err := bindStrictJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.subscriptionService.CreateSubscription(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, result)
}

// List godoc
// @Summary List the caller's subscriptions
// @Tags subscriptions
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /subscriptions [get]
func (h *SubscriptionHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError(""))
		return
	}

	result, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// Cancel godoc
// @Summary Cancel one of the caller's subscriptions
// @Description Cancellation is idempotent in effect: an already cancelled subscription keeps its original cancellation time.
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError(""))
		return
	}

	result, err := h.subscriptionService.CancelSubscription(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}
