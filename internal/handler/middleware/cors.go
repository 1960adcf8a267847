package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"rincon-reservas/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always lets browsers send and read the request ID and read
// the rate-limit headers. A "*" origin turns credentials off.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     withDefaults(cfg.AllowMethods, http.MethodGet, http.MethodPost, http.MethodOptions),
		AllowHeaders:     withDefaults(cfg.AllowHeaders, RequestIDHeader),
		ExposeHeaders:    withDefaults(cfg.ExposeHeaders, RequestIDHeader, HeaderRateLimit, HeaderRateRemaining, HeaderRetryAfter),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins, "allow_all", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}

func withDefaults(values []string, required ...string) []string {
	out := slices.Clone(values)
	for _, r := range required {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
