package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"hipchat_notify/internal/config"
	"hipchat_notify/internal/http/controller"
	"hipchat_notify/internal/http/middleware"
	"hipchat_notify/internal/metrics"
)

func NewRouter(cfg *config.Config, handler *controller.Handler, m metrics.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		otelgin.Middleware(cfg.OTELServiceName),
		middleware.ZapLogger(logger),
		middleware.Metrics(m),
		middleware.ZapRecovery(logger),
	)

	router.GET("/health", func(c *gin.Context) {
		c.Status(200)
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.POST("/rooms/:room/notification", handler.NotifyRoom)
	router.POST("/users/:user/message", handler.NotifyUser)

	return router
}
