package ports

import (
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/ports/dto"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/ticketing"
	"github.com/gofiber/fiber/v2"
)

// NetworkProvider exposes the chain constants of the ticketing client.
type NetworkProvider interface {
	Network() ticketing.Network
}

// NetworkHandler returns the chain the server reads from.
type NetworkHandler struct {
	provider NetworkProvider
}

// Handle processes GET /network.
func (h *NetworkHandler) Handle(c *fiber.Ctx) error {
	n := h.provider.Network()
	return c.Status(fiber.StatusOK).JSON(dto.NetworkResponse{
		RPCURL:    n.RPCURL,
		ChainID:   n.ChainID,
		TokenName: n.TokenName,
		Label:     n.Label,
	})
}

// NewNetworkHandler constructs a new NetworkHandler. Panics if the provider is nil.
func NewNetworkHandler(provider NetworkProvider) *NetworkHandler {
	if provider == nil {
		panic("network provider cannot be nil")
	}
	return &NetworkHandler{provider: provider}
}
