package ports

import (
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/app"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/ports/dto"
	"github.com/gofiber/fiber/v2"
)

// EventsHandler serves event views merged with their off-chain metadata.
type EventsHandler struct {
	service *app.EventsService
}

// GetEvent handles GET /events/:id.
func (h *EventsHandler) GetEvent(c *fiber.Ctx) error {
	view, err := h.service.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// GetEvents handles POST /events/batch. The response keeps the request order.
func (h *EventsHandler) GetEvents(c *fiber.Ctx) error {
	var body dto.IDsRequest
	if err := c.BodyParser(&body); err != nil {
		return NewRequestBodyParserError(err)
	}

	views, err := h.service.GetEvents(c.UserContext(), body.IDs)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(views)
}

// GetCategories handles GET /events/:id/categories.
func (h *EventsHandler) GetCategories(c *fiber.Ctx) error {
	views, err := h.service.GetCategories(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(views)
}

// NewEventsHandler constructs a new EventsHandler with the given provider.
// Panics if the provider is nil.
func NewEventsHandler(provider app.EventsProvider) *EventsHandler {
	if provider == nil {
		panic("events provider cannot be nil")
	}
	return &EventsHandler{service: app.NewEventsService(provider)}
}
