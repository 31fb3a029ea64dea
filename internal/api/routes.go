package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hitchmap/internal/api/handlers"
)

type Router struct {
	queryHandler *handlers.QueryHandler
	metrics      http.Handler
}

// NewRouter wires the handlers. metrics may be nil, in which case the
// /metrics endpoint is not registered.
func NewRouter(queryHandler *handlers.QueryHandler, metrics http.Handler) *Router {
	return &Router{
		queryHandler: queryHandler,
		metrics:      metrics,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	engine.POST("/query", r.queryHandler.Query)

	if r.metrics != nil {
		engine.GET("/metrics", gin.WrapH(r.metrics))
	}
}
