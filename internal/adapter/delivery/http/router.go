package http

import (
	"time"

	handler "chainlist-catalog/internal/adapter/handler/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// NewRouter sets up the routes for the chain handler and common health checks.
func NewRouter(h *handler.ChainHandler, logger *zap.Logger) *router.Router {
	r := router.New()

	logger.Info("Setting up application-specific routes...")
	r.GET("/chains", h.GetAllChains)
	r.GET("/chains/{chainId:[0-9]+}", h.GetChain)
	r.GET("/chains/{chainId:[0-9]+}/rpcs", h.GetChainRPCs)
	r.GET("/stats", h.GetStats)

	r.GET("/health", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("OK")
	})

	logger.Info("All routes registered.")
	return r
}

// LoggingMiddleware logs every request with its status and duration.
func LoggingMiddleware(next fasthttp.RequestHandler, logger *zap.Logger) fasthttp.RequestHandler {
	logger = logger.Named("HTTP")
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		logger.Info("Request handled",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("uri", ctx.RequestURI()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
