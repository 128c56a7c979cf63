package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// BasicMiddlewareGroupConfig defines configuration options for building the middleware group.
type BasicMiddlewareGroupConfig struct {
	OctetStreamLimit int64 // Max allowed body size for octet-stream requests.
	EnableStackTrace bool  // Enable stack traces in panic recovery middleware.
	EnablePprof      bool  // Expose runtime profiles under /api/v1/debug/pprof.
}

// BasicMiddlewareGroup returns a list of preconfigured middleware for the HTTP server.
// It includes request IDs, CORS, panic recovery, access logging, health checks,
// optional profiling and request size limiting.
func BasicMiddlewareGroup(cfg BasicMiddlewareGroupConfig) []fiber.Handler {
	handlers := []fiber.Handler{
		requestid.New(),
		cors.New(),
		recover.New(recover.Config{EnableStackTrace: cfg.EnableStackTrace}),
		logger.New(logger.Config{
			Format:     "date=${time} request_id=${locals:requestid} status=${status} method=${method} path=${path} latency=${latency} err=${error}\n",
			TimeFormat: "02-Jan-2006 15:04:05",
		}),
		healthcheck.New(),
	}
	if cfg.EnablePprof {
		handlers = append(handlers, pprof.New(pprof.Config{Prefix: "/api/v1"}))
	}
	return append(handlers, LimitOctetStreamBodyMiddleware(cfg.OctetStreamLimit))
}
