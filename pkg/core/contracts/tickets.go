package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Tickets binds the ticket token contract.
type Tickets struct {
	*Contract
}

// OwnerOf reads the holder of a ticket.
func (t *Tickets) OwnerOf(ctx context.Context, ticketID *big.Int) (common.Address, error) {
	out, err := t.Call(ctx, common.Address{}, "ownerOf", ticketID)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// IsConsumableBy reports whether consumer can consume amount units of the ticket.
// The call is issued as consumer.
func (t *Tickets) IsConsumableBy(ctx context.Context, consumer common.Address, ticketID, amount *big.Int) (bool, error) {
	out, err := t.Call(ctx, consumer, "isConsumableBy", consumer, ticketID, amount)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// GetTicket reads the on-chain state of a ticket.
func (t *Tickets) GetTicket(ctx context.Context, ticketID *big.Int) (Ticket, error) {
	out, err := t.Call(ctx, common.Address{}, "getTicket", ticketID)
	if err != nil {
		return Ticket{}, err
	}
	return *abi.ConvertType(out[0], new(Ticket)).(*Ticket), nil
}

// NewTickets binds the ticket token contract deployed at address.
func NewTickets(address common.Address, backend Backend) (*Tickets, error) {
	c, err := NewContract("tickets", TicketsABI, address, backend)
	if err != nil {
		return nil, err
	}
	return &Tickets{Contract: c}, nil
}
