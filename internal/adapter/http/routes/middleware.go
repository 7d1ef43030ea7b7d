package routes

import (
	"net/http"
	"strings"
	"time"

	"insurance_designer/pkg"
	"insurance_designer/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const defaultServiceName = "insurance-designer"

var errPanic = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

func setMiddlewares(router *gin.Engine, serviceName string) {
	if strings.TrimSpace(serviceName) == "" {
		serviceName = defaultServiceName
	}
	router.Use(otelgin.Middleware(serviceName))
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.FullPath()).Msg("Recovered from panic")
		c.AbortWithStatusJSON(errPanic.HTTPStatus, errPanic.ToHTTPError())
	}))
}

// requestLogger replaces gin.Logger with one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("trace_id", tracing.GetTraceID(c.Request.Context())).
			Msg("[http] request")
	}
}

func addMetricsRoutes(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
