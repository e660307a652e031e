// README: API gateway; registers HTTP routes and delegates to the trip handler.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripforge/internal/http/handlers"
	"tripforge/internal/http/middleware"
	"tripforge/internal/logger"
)

type ServerDeps struct {
	Trips *handlers.TripHandler
	Log   logger.Logger
}

func NewRouter(deps ServerDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Recovery(deps.Log),
		middleware.Logging(deps.Log),
		cors.Default(),
	)

	api := r.Group("/api")
	api.POST("/trips", deps.Trips.Create)
	api.GET("/trips/:id", deps.Trips.Get)
	api.POST("/trips/:id/regenerate", deps.Trips.Regenerate)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
