package ticketing

import (
	"context"
	"fmt"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/contracts"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/listeners"
)

// Listen invokes handle for every log of the named contract event until ctx is done.
// The emitting contract is derived from the event name.
func (c *Client) Listen(ctx context.Context, name string, handle listeners.Handler) error {
	src, ok := listeners.SourceOf(name)
	if !ok {
		return fmt.Errorf("listen: unknown event %q", name)
	}
	return listeners.Listen(ctx, c.contract(src), name, handle)
}

func (c *Client) contract(src listeners.Source) *contracts.Contract {
	switch src {
	case listeners.SourceTicketController:
		return c.controller.Contract
	case listeners.SourceTickets:
		return c.tickets.Contract
	case listeners.SourceMarketplace:
		return c.marketplace.Contract
	default:
		return c.events.Contract
	}
}
