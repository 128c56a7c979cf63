package ports

import (
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/app"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/ports/dto"
	"github.com/gofiber/fiber/v2"
)

// TicketsHandler serves ticket views and marketplace listings.
type TicketsHandler struct {
	service *app.TicketsService
}

// GetTicket handles GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	view, err := h.service.GetTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// GetTickets handles POST /tickets/batch. The response keeps the request order.
func (h *TicketsHandler) GetTickets(c *fiber.Ctx) error {
	var body dto.IDsRequest
	if err := c.BodyParser(&body); err != nil {
		return NewRequestBodyParserError(err)
	}

	views, err := h.service.GetTickets(c.UserContext(), body.IDs)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(views)
}

// GetListedTicket handles GET /marketplace/tickets/:id.
func (h *TicketsHandler) GetListedTicket(c *fiber.Ctx) error {
	view, err := h.service.GetListedTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// NewTicketsHandler constructs a new TicketsHandler with the given provider.
// Panics if the provider is nil.
func NewTicketsHandler(provider app.TicketsProvider) *TicketsHandler {
	if provider == nil {
		panic("tickets provider cannot be nil")
	}
	return &TicketsHandler{service: app.NewTicketsService(provider)}
}
