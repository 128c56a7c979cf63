package ports

import (
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/app"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/ports/dto"
	"github.com/gofiber/fiber/v2"
)

// ResolveGatewayURLHandler is a Fiber-compatible HTTP handler that resolves a
// content URI to the URL of the first reachable gateway.
type ResolveGatewayURLHandler struct {
	service *app.GatewayService
}

// Handle processes an HTTP GET request carrying the URI in the `uri` query parameter.
// On success, it returns a 200 OK response with the resolved URL.
func (h *ResolveGatewayURLHandler) Handle(c *fiber.Ctx) error {
	uri := c.Query("uri")
	url, err := h.service.ResolveURI(c.UserContext(), uri)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.ResolveGatewayURLResponse{URI: uri, URL: url})
}

// NewResolveGatewayURLHandler constructs a new ResolveGatewayURLHandler with the given provider.
// Panics if the provider is nil.
func NewResolveGatewayURLHandler(provider app.GatewayURLProvider) *ResolveGatewayURLHandler {
	if provider == nil {
		panic("gateway url provider cannot be nil")
	}
	return &ResolveGatewayURLHandler{service: app.NewGatewayService(provider)}
}
