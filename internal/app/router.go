package app

import (
	"github.com/gin-gonic/gin"
	"github.com/lindenb1/impress/internal/interfaces/handlers"
	"go.uber.org/zap"
)

type Handlers struct {
	Access *handlers.AccessHandler
	Config *handlers.ConfigHandler
	Health *handlers.HealthHandler
}

func NewRouter(h Handlers, languages []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.LocaleMiddleware(languages))
	r.Use(handlers.RequestLogger(logger))
	r.Use(handlers.HeadToGetMiddleware())
	r.Use(handlers.CORSMiddleware())

	r.GET("/__lbheartbeat__", h.Health.Liveness)
	r.GET("/__heartbeat__", h.Health.Readiness)

	api := r.Group("/api/v1.0")
	{
		api.GET("/config/", h.Config.Get)
		api.GET("/documents/:id/accesses/", h.Access.List)
		api.HEAD("/documents/:id/accesses/", h.Access.List)
	}

	return r
}
