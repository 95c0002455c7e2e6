package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"buddha-num-conv/internal/config"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// Router sets up HTTP routes for the API
type Router struct {
	handler *Handler
	engine  *gin.Engine
}

// NewRouter creates a new API router
func NewRouter(cfg *config.Config) *Router {
	if cfg == nil {
		cfg = config.Default()
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), requestID())

	router := &Router{
		handler: NewHandler(cfg.DefaultFormat),
		engine:  engine,
	}

	router.setupRoutes()
	return router
}

// setupRoutes configures all HTTP routes
func (r *Router) setupRoutes() {
	r.engine.GET("/healthz", r.handler.Healthz)

	v1 := r.engine.Group("/v1")

	// Conversion endpoints
	v1.POST("/conversions", r.handler.Convert)
	v1.GET("/conversions", r.handler.ConvertQuery)

	// Scale table endpoints
	v1.GET("/scales", r.handler.ListScales)
	v1.GET("/scales/:ordinal", r.handler.GetScale)
}

// requestID echoes the caller's X-Request-ID or assigns a new one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Run starts the HTTP server on addr
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// ServeHTTP implements http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

// Handler returns the underlying HTTP handler
func (r *Router) Handler() http.Handler {
	return r.engine
}
