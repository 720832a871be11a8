package server

import (
	"net/http"
	"time"

	"tulook/internal/auth"
	"tulook/internal/handlers"
	"tulook/internal/middleware"
	"tulook/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Options struct {
	AllowedOrigins  []string
	RateLimitPerMin int
	Swagger         bool
}

// NewRouter wires every route of the service.
func NewRouter(h *handlers.Handler, live *ws.Handler, gate *auth.Gate, log *zap.Logger, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	origins := opts.AllowedOrigins
	allowAll := len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
	if allowAll {
		origins = nil
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowAllOrigins:  allowAll,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !allowAll,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if opts.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/admin/login", middleware.RateLimit(opts.RateLimitPerMin), h.AdminLogin)
		authGroup.POST("/refresh", h.RefreshToken)
	}

	api := r.Group("/api")
	{
		api.GET("/shop", h.GetShop)
		api.GET("/services", h.GetServices)
		api.GET("/barbers", h.GetBarbers)
		api.GET("/barbers/:name", h.GetBarber)
		api.GET("/barbers/:name/wisdom", h.GetWisdom)

		api.GET("/queue/board", h.GetBoard)
		api.POST("/queue", middleware.RateLimit(opts.RateLimitPerMin), h.Register)
		api.GET("/queue/ws", live.PublicQueue)

		api.GET("/checkout/:id", h.GetCheckout)
		api.POST("/checkout/:id/transfer", h.StartTransfer)
		api.POST("/checkout/:id/venue", h.PayAtVenue)
	}

	admin := r.Group("/api/admin", auth.Middleware(gate))
	{
		admin.GET("/queue", h.AdminListQueue)
		admin.POST("/queue/:id/serve", h.ServeEntry)
		admin.POST("/queue/:id/finish", h.FinishEntry)
		admin.POST("/queue/:id/paid", h.ConfirmPayment)
		admin.DELETE("/queue/:id", h.DeleteEntry)
		admin.GET("/settings", h.GetSettings)
		admin.PUT("/settings", h.SaveSettings)
		admin.GET("/ws", live.AdminQueue)
	}

	return r
}
