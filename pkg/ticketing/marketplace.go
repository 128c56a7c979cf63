package ticketing

import (
	"context"
	"math/big"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/contracts"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
)

// FetchAllListedTicketIDs reads the identifiers of every listed ticket.
func (c *Client) FetchAllListedTicketIDs(ctx context.Context) ([]*big.Int, error) {
	return c.marketplace.FetchAllListedTicketIDs(ctx)
}

// ListTicket builds the transaction listing a ticket for sale at price.
func (c *Client) ListTicket(ticketID, price *big.Int) (*contracts.UnsignedTx, error) {
	return c.marketplace.ListTicket(ticketID, price)
}

// UpdateListedTicketPrice builds the transaction changing the price of a listed ticket.
func (c *Client) UpdateListedTicketPrice(ticketID, price *big.Int) (*contracts.UnsignedTx, error) {
	return c.marketplace.UpdateListedTicketPrice(ticketID, price)
}

// BuyListedTickets builds the transaction buying listed tickets for price in total.
func (c *Client) BuyListedTickets(ticketIDs []*big.Int, price *big.Int) (*contracts.UnsignedTx, error) {
	return c.marketplace.BuyListedTickets(ticketIDs, price)
}

// CancelListedTicket builds the transaction withdrawing a ticket from sale.
func (c *Client) CancelListedTicket(ticketID *big.Int) (*contracts.UnsignedTx, error) {
	return c.marketplace.CancelListedTicket(ticketID)
}

// GetListedTicketByID returns the ticket view extended with its marketplace price and listing state.
func (c *Client) GetListedTicketByID(ctx context.Context, ticketID *big.Int) (metadata.Record, error) {
	view, err := c.GetSingleTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	listed, err := c.marketplace.GetListedTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	view[KeyPrice] = listed.Price
	view[KeyIsListed] = listed.IsListed
	return view, nil
}

// GetListedTicketDataByID reads the marketplace state of a ticket.
func (c *Client) GetListedTicketDataByID(ctx context.Context, ticketID *big.Int) (contracts.ListedTicket, error) {
	return c.marketplace.GetListedTicketByID(ctx, ticketID)
}

// SetSecondaryMarketTicketFeePercentage builds the transaction setting the resale fee.
func (c *Client) SetSecondaryMarketTicketFeePercentage(percent float64) (*contracts.UnsignedTx, error) {
	bps, err := FeeBasisPoints(percent)
	if err != nil {
		return nil, err
	}
	return c.marketplace.SetTicketFeePercentage(bps)
}

// WithdrawSecondaryMarketFees builds the transaction paying out the collected resale fees.
func (c *Client) WithdrawSecondaryMarketFees() (*contracts.UnsignedTx, error) {
	return c.marketplace.WithdrawFees()
}
