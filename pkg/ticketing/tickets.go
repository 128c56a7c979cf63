package ticketing

import (
	"context"
	"fmt"
	"math/big"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/contracts"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
	"github.com/ethereum/go-ethereum/common"
)

// BuyTickets builds the purchase transaction. One event category selects the
// single-event overload, several select the multi-event one. The transaction
// value is the sum of price times amount over priceData.
func (c *Client) BuyTickets(uris []gateway.ContentURI, categories []contracts.EventCategory, priceData []contracts.PriceData, places []contracts.Place) (*contracts.UnsignedTx, error) {
	return c.controller.BuyTickets(uriStrings(uris), categories, priceData, places)
}

// AddRefundDeadline builds the transaction adding a refund deadline to an event.
func (c *Client) AddRefundDeadline(eventID *big.Int, refund contracts.RefundData) (*contracts.UnsignedTx, error) {
	return c.controller.AddRefundDeadline(eventID, refund)
}

// ReturnTicket builds the transaction returning a ticket for a refund.
func (c *Client) ReturnTicket(p contracts.TicketParams) (*contracts.UnsignedTx, error) {
	return c.controller.ReturnTicket(p)
}

// WithdrawRefund builds the transaction paying out the refund of a returned ticket.
func (c *Client) WithdrawRefund(eventID, ticketID *big.Int) (*contracts.UnsignedTx, error) {
	return c.controller.WithdrawRefund(eventID, ticketID)
}

// WithdrawEventBalance builds the transaction paying the event balance to its cashier.
func (c *Client) WithdrawEventBalance(eventID *big.Int) (*contracts.UnsignedTx, error) {
	return c.controller.WithdrawEventBalance(eventID)
}

// ClipTicket builds the transaction marking a ticket as used at the entrance.
func (c *Client) ClipTicket(eventID, ticketID, signatureTimestamp *big.Int, signature []byte) (*contracts.UnsignedTx, error) {
	return c.controller.ClipTicket(eventID, ticketID, signatureTimestamp, signature)
}

// BookTickets builds the transaction reserving tickets without payment.
func (c *Client) BookTickets(uris []gateway.ContentURI, eventID *big.Int, categories []contracts.CategoryAmount, places []contracts.BookingPlace) (*contracts.UnsignedTx, error) {
	return c.controller.BookTickets(uriStrings(uris), eventID, categories, places)
}

// SendInvitation builds the transaction handing booked tickets to accounts.
func (c *Client) SendInvitation(eventID *big.Int, ticketIDs []*big.Int, accounts []common.Address) (*contracts.UnsignedTx, error) {
	return c.controller.SendInvitation(eventID, ticketIDs, accounts)
}

// GetAddressTicketIDsByEvent reads the tickets of an event held by account.
func (c *Client) GetAddressTicketIDsByEvent(ctx context.Context, eventID *big.Int, account common.Address) ([]*big.Int, error) {
	return c.controller.GetAddressTicketIDsByEvent(ctx, eventID, account)
}

// GetContractTicketIDsByEvent reads the tickets of an event still held by the controller.
func (c *Client) GetContractTicketIDsByEvent(ctx context.Context, eventID *big.Int) ([]*big.Int, error) {
	return c.controller.GetAddressTicketIDsByEvent(ctx, eventID, c.controller.Address())
}

// SetTicketFeePercentage builds the transaction setting the primary sale fee.
func (c *Client) SetTicketFeePercentage(percent float64) (*contracts.UnsignedTx, error) {
	bps, err := FeeBasisPoints(percent)
	if err != nil {
		return nil, err
	}
	return c.controller.SetTicketFeePercentage(bps)
}

// WithdrawFees builds the transaction paying out the collected primary sale fees.
func (c *Client) WithdrawFees() (*contracts.UnsignedTx, error) {
	return c.controller.WithdrawFees()
}

// IsTicketUsable reports whether the current holder can still consume the ticket.
func (c *Client) IsTicketUsable(ctx context.Context, ticketID *big.Int) (bool, error) {
	owner, err := c.tickets.OwnerOf(ctx, ticketID)
	if err != nil {
		return false, fmt.Errorf("ticket %s owner: %w", ticketID, err)
	}
	return c.tickets.IsConsumableBy(ctx, owner, ticketID, big.NewInt(1))
}

// GetSingleTicketByID returns the ticket merged with its metadata. A ticket whose
// metadata cannot be resolved is returned as its on-chain record. The caller's id
// is always set on the view.
func (c *Client) GetSingleTicketByID(ctx context.Context, ticketID *big.Int) (metadata.Record, error) {
	ticket, err := c.tickets.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("fetch ticket %s: %w", ticketID, err)
	}

	view := c.metadata.EnrichOrRaw(ctx, gateway.ContentURI(ticket.TokenURI), ticket.Record())
	view[KeyID] = ticketID
	return view, nil
}

// GetTicketsByIDs returns the tickets in input order. Tickets with unreachable
// metadata degrade to their on-chain record, a failing on-chain read aborts the
// batch with a *metadata.BatchAbortError.
func (c *Client) GetTicketsByIDs(ctx context.Context, ticketIDs []*big.Int) ([]metadata.Record, error) {
	return metadata.ResolveAll(ctx, ticketIDs, c.GetSingleTicketByID)
}

// FetchTicketOwnerOf reads the holder of a ticket.
func (c *Client) FetchTicketOwnerOf(ctx context.Context, ticketID *big.Int) (common.Address, error) {
	return c.tickets.OwnerOf(ctx, ticketID)
}

func uriStrings(uris []gateway.ContentURI) []string {
	out := make([]string, len(uris))
	for i, u := range uris {
		out[i] = string(u)
	}
	return out
}
