package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickride/internal/catalog"
	"quickride/internal/domain"
)

// CatalogHandler serves the vehicle classes and location suggestions.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetVehicles handles GET /v1/vehicles
func (h *CatalogHandler) GetVehicles(c *gin.Context) {
	respondJSON(c, http.StatusOK, catalog.Vehicles())
}

// SearchLocations handles GET /v1/locations?q=
func (h *CatalogHandler) SearchLocations(c *gin.Context) {
	results := catalog.SearchLocations(c.Query("q"))
	if results == nil {
		results = []domain.Location{}
	}
	respondJSON(c, http.StatusOK, gin.H{"locations": results})
}
