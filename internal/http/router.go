// README: HTTP router registration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"courierfee/internal/http/handlers"
	"courierfee/internal/http/middleware"
	"courierfee/internal/modules/fee"
)

func NewRouter(feeService *fee.Service, logger *slog.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))

	feeHandler := handlers.NewFeeHandler(feeService)
	r.GET("/api/v1/fees/calculate", feeHandler.Calculate)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
