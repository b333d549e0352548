package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"synapflow-backend/internal/shared/config"
	"synapflow-backend/internal/shared/server/middleware"
	"synapflow-backend/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes to the API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries everything NewRouter needs; handlers are built in
// bootstrap so the router stays free of storage wiring.
type RouterDeps struct {
	Config             config.Config
	CatalogHandler     RouteRegistrar
	AssessmentsHandler RouteRegistrar
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.DefaultRateLimitConfig()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.AssessmentsHandler != nil {
		deps.AssessmentsHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
