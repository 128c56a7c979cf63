package server

import (
	"context"
	"fmt"
	"time"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/ports"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/ports/middleware"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/ticketing"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TicketingProvider is the read and storage surface of the ticketing client served over HTTP.
// *ticketing.Client satisfies it.
type TicketingProvider = ports.TicketingProvider

// Config holds the configuration settings for the HTTP server
type Config struct {
	// AppName is the name of the application.
	AppName string `mapstructure:"app_name"`

	// Port is the TCP port on which the server will listen.
	Port int `mapstructure:"port"`

	// Addr is the address the server will bind to.
	Addr string `mapstructure:"addr"`

	// ServerHeader is the value of the Server header returned in HTTP responses.
	ServerHeader string `mapstructure:"server_header"`

	// AdminBearerToken is the token required to access admin-only endpoints.
	AdminBearerToken string `mapstructure:"admin_bearer_token"`

	// StorageAPIKey is used by the admin storage endpoints when a request carries no key of its own.
	StorageAPIKey string `mapstructure:"storage_api_key"`

	// OctetStreamLimit defines the maximum allowed size (in bytes) of image uploads.
	OctetStreamLimit int64 `mapstructure:"octet_stream_limit"`

	// ConnectionReadTimeout defines the maximum duration an active connection is allowed to stay open.
	// Once this threshold is exceeded, the connection will be forcefully closed.
	ConnectionReadTimeout time.Duration `mapstructure:"connection_read_timeout_limit"`

	// EnablePprof exposes runtime profiles under /api/v1/debug/pprof.
	EnablePprof bool `mapstructure:"enable_pprof"`
}

// DefaultConfig provides a default configuration with reasonable values for local development.
var DefaultConfig = Config{
	AppName:               "Ticketing API v0.0.0",
	Port:                  3000,
	Addr:                  "localhost",
	ServerHeader:          "Ticketing API",
	AdminBearerToken:      uuid.NewString(),
	OctetStreamLimit:      middleware.ReadBodyLimit32MB,
	ConnectionReadTimeout: 10 * time.Second,
}

// ServerOption defines a functional option for configuring an HTTP server.
// These options allow for flexible setup of middlewares and configurations.
type ServerOption func(*ServerHTTP)

// WithMiddleware adds a Fiber middleware handler to the HTTP server configuration.
// It returns a ServerOption that appends the given middleware to the server's middleware stack.
func WithMiddleware(f fiber.Handler) ServerOption {
	return func(s *ServerHTTP) {
		s.middleware = append(s.middleware, f)
	}
}

// WithTicketing sets the ticketing client served by the HTTP handlers.
func WithTicketing(provider TicketingProvider) ServerOption {
	return func(s *ServerHTTP) {
		s.ticketing = provider
	}
}

// WithMetricsGatherer sets the registry exposed under /metrics.
// The prometheus default gatherer is used otherwise.
func WithMetricsGatherer(g prometheus.Gatherer) ServerOption {
	return func(s *ServerHTTP) {
		s.gatherer = g
	}
}

// WithAdminBearerToken sets the admin bearer token used for authenticating
// admin routes on the HTTP server.
func WithAdminBearerToken(token string) ServerOption {
	return func(s *ServerHTTP) {
		s.cfg.AdminBearerToken = token
	}
}

// WithStorageAPIKey sets the storage API key used by admin storage routes
// for requests without the X-Storage-Api-Key header.
func WithStorageAPIKey(key string) ServerOption {
	return func(s *ServerHTTP) {
		s.cfg.StorageAPIKey = key
	}
}

// WithOctetStreamLimit returns a ServerOption that sets the maximum allowed size (in bytes)
// for incoming requests with Content-Type: application/octet-stream.
func WithOctetStreamLimit(limit int64) ServerOption {
	return func(s *ServerHTTP) {
		s.cfg.OctetStreamLimit = limit
		s.app = newFiberApp(s.cfg)
	}
}

// WithConfig sets the configuration for the HTTP server using the provided Config.
// It initializes a new Fiber application with the specified server settings.
func WithConfig(cfg Config) ServerOption {
	return func(s *ServerHTTP) {
		s.cfg = cfg
		s.app = newFiberApp(cfg)
	}
}

// ServerHTTP represents the HTTP server instance, including configuration,
// Fiber app instance, middleware stack, and the ticketing client behind the handlers.
type ServerHTTP struct {
	cfg        Config          // cfg holds the server configuration settings.
	app        *fiber.App      // app is the Fiber application instance serving HTTP requests.
	middleware []fiber.Handler // middleware is a list of Fiber middleware functions to be applied globally.
	ticketing  TicketingProvider
	gatherer   prometheus.Gatherer
}

// SocketAddr builds the address string for binding.
func (s *ServerHTTP) SocketAddr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Addr, s.cfg.Port)
}

// ListenAndServe starts the HTTP server and begins listening on the configured socket address.
// It blocks until the server is stopped or an error occurs.
func (s *ServerHTTP) ListenAndServe(ctx context.Context) error {
	return s.app.Listen(s.SocketAddr())
}

// Shutdown gracefully shuts down the HTTP server using the provided context,
// allowing ongoing requests to complete within the context's deadline.
func (s *ServerHTTP) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// New creates and configures a new instance of ServerHTTP.
// It applies the options, mounts the global middleware, the public API routes,
// the bearer-protected admin routes and the monitoring endpoints.
// Panics if no ticketing provider was configured.
func New(opts ...ServerOption) *ServerHTTP {
	srv := &ServerHTTP{
		cfg:      DefaultConfig,
		app:      newFiberApp(DefaultConfig),
		gatherer: prometheus.DefaultGatherer,
	}

	for _, o := range opts {
		o(srv)
	}

	if srv.ticketing == nil {
		panic("ticketing provider cannot be nil")
	}

	group := middleware.BasicMiddlewareGroup(middleware.BasicMiddlewareGroupConfig{
		EnableStackTrace: true,
		EnablePprof:      srv.cfg.EnablePprof,
		OctetStreamLimit: srv.cfg.OctetStreamLimit,
	})
	for _, h := range append(group, srv.middleware...) {
		srv.app.Use(h)
	}

	registry := ports.NewHandlerRegistryService(srv.ticketing, srv.cfg.StorageAPIKey)

	api := srv.app.Group("/api/v1")
	registry.RegisterPublic(api)
	registry.RegisterAdmin(api.Group("/admin", middleware.BearerTokenAuthorizationMiddleware(srv.cfg.AdminBearerToken)))

	srv.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{})))
	srv.app.Get("/monitor", monitor.New(monitor.Config{Title: "Ticketing API"}))

	return srv
}

// newFiberApp creates and returns a new instance of a fiber.App with the provided configuration.
// The app is configured with case-sensitive routing, strict routing, custom server headers, and read timeout settings.
func newFiberApp(cfg Config) *fiber.App {
	bodyLimit := fiber.DefaultBodyLimit
	if int(cfg.OctetStreamLimit)+1 > bodyLimit {
		bodyLimit = int(cfg.OctetStreamLimit) + 1
	}

	return fiber.New(fiber.Config{
		CaseSensitive: true,
		StrictRouting: true,
		ServerHeader:  cfg.ServerHeader,
		AppName:       cfg.AppName,
		ReadTimeout:   cfg.ConnectionReadTimeout,
		BodyLimit:     bodyLimit,
		ErrorHandler:  ports.ErrorHandler(),
	})
}

var _ TicketingProvider = (*ticketing.Client)(nil)
