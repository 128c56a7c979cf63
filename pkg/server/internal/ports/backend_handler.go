package ports

import (
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/backend"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/app"
	"github.com/gofiber/fiber/v2"
)

// BackendHandler passes catalog queries through to the ticketing REST backend.
// The backend's status code and JSON body are returned unmodified.
type BackendHandler struct {
	service *app.BackendService
}

// Countries handles GET /countries.
func (h *BackendHandler) Countries(c *fiber.Ctx) error {
	res, err := h.service.Countries(c.UserContext())
	if err != nil {
		return err
	}
	return passthrough(c, res)
}

// Places handles GET /places?country=.
func (h *BackendHandler) Places(c *fiber.Ctx) error {
	res, err := h.service.Places(c.UserContext(), c.Query("country"))
	if err != nil {
		return err
	}
	return passthrough(c, res)
}

// SearchEvents handles POST /search/events. An empty body searches without filters.
func (h *BackendHandler) SearchEvents(c *fiber.Ctx) error {
	query := backend.EventsQuery{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&query); err != nil {
			return NewRequestBodyParserError(err)
		}
	}

	res, err := h.service.SearchEvents(c.UserContext(), query)
	if err != nil {
		return err
	}
	return passthrough(c, res)
}

func passthrough(c *fiber.Ctx, res *backend.Response) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(res.StatusCode).Send(res.Body)
}

// NewBackendHandler constructs a new BackendHandler with the given provider.
// Panics if the provider is nil.
func NewBackendHandler(provider app.BackendProvider) *BackendHandler {
	if provider == nil {
		panic("backend provider cannot be nil")
	}
	return &BackendHandler{service: app.NewBackendService(provider)}
}
