package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rincon-reservas/internal/handler/api"
	"rincon-reservas/internal/handler/httperr"
	"rincon-reservas/internal/handler/middleware"
	"rincon-reservas/internal/pkg/config"
)

const (
	msgRouteNotFound    = "Ruta no encontrada"
	msgMethodNotAllowed = "Método no permitido"
)

type Handlers struct {
	Reservation *api.ReservationHandler
	Email       *api.EmailHandler
	Pricing     *api.PricingHandler
}

// NewRouter mounts the reservation API on engine. Reads are open; every POST
// goes through the shared redis rate limiter.
func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, rdb *redis.Client, h Handlers) {
	// recovery stays outermost so panics in any later middleware are caught
	engine.Use(
		middleware.CustomRecovery(),
		middleware.NewCORSMiddleware(cfg.CORS),
		logger.LoggingMiddleware(),
		middleware.ErrorHandler(),
	)

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(notFound)
	engine.NoMethod(methodNotAllowed)

	engine.GET("/health", healthCheck(cfg.App))
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	reads := engine.Group("/api")
	reads.GET("/exchange-rate", h.Pricing.ExchangeRate)
	reads.GET("/areas", h.Pricing.Areas)

	writes := engine.Group("/api",
		middleware.NewRateLimiter(cfg.RateLimit, cfg.Redis.KeyPrefix, rdb),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)
	writes.POST("/process-reservation", h.Reservation.ProcessReservation)
	writes.POST("/send-email", h.Email.Send)
	writes.POST("/quote", h.Pricing.Quote)
}

// @Summary Health check
// @Description Liveness probe for the reservation API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(app config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "rincon-reservas",
			"env":     app.Env,
		})
	}
}

func notFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, httperr.NewResponse(http.StatusNotFound, msgRouteNotFound))
}

func methodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, httperr.NewResponse(http.StatusMethodNotAllowed, msgMethodNotAllowed))
}
