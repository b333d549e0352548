package catalog

import (
	"github.com/gin-gonic/gin"

	"synapflow-backend/internal/shared/server/respond"
)

// Handler exposes the active reference catalog over HTTP.
type Handler struct {
	Catalog Catalog
}

// NewHandler constructs a Handler.
func NewHandler(cat Catalog) *Handler {
	return &Handler{Catalog: cat}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", h.get)
}

func (h *Handler) get(c *gin.Context) {
	respond.OK(c, h.Catalog)
}
