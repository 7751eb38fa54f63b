package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
)

// ServiceHandler serves the public services catalog.
type ServiceHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(catalogService portssvc.CatalogSvcFacade) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

// registerServiceRoutes sets up the catalog routes. These are public; the
// catalog is the agency's storefront.
func registerServiceRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewServiceHandler(services.Catalog)

	catalog := r.Group("/api/services")
	{
		catalog.GET("", h.List)
		catalog.GET("/:slug", h.GetBySlug)
	}
}

// List godoc
// @Summary List active catalog services
// @Tags services
// @Produce json
// @Success 200 {object} dto.Response
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	result, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// GetBySlug godoc
// @Summary Get a catalog service by slug
// @Tags services
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /services/{slug} [get]
func (h *ServiceHandler) GetBySlug(c *gin.Context) {
	result, err := h.catalogService.GetServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}
