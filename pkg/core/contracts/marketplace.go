package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Marketplace binds the secondary ticket marketplace.
type Marketplace struct {
	*Contract
}

// ListTicket builds the transaction listing a ticket for sale at price.
func (m *Marketplace) ListTicket(ticketID, price *big.Int) (*UnsignedTx, error) {
	return m.Transact("listTicket", nil, ticketID, price)
}

// UpdateListedTicketPrice builds the transaction changing the price of a listed ticket.
func (m *Marketplace) UpdateListedTicketPrice(ticketID, price *big.Int) (*UnsignedTx, error) {
	return m.Transact("updateListedTicketPrice", nil, ticketID, price)
}

// BuyListedTickets builds the transaction buying listed tickets for price in total.
// A single ticket uses buyListedTicket, several use buyMultipleListedTickets.
func (m *Marketplace) BuyListedTickets(ticketIDs []*big.Int, price *big.Int) (*UnsignedTx, error) {
	if len(ticketIDs) == 1 {
		return m.Transact("buyListedTicket", price, ticketIDs[0])
	}
	return m.Transact("buyMultipleListedTickets", price, ticketIDs)
}

// CancelListedTicket builds the transaction removing a ticket from sale.
func (m *Marketplace) CancelListedTicket(ticketID *big.Int) (*UnsignedTx, error) {
	return m.Transact("cancelListedTicket", nil, ticketID)
}

// SetTicketFeePercentage builds the transaction setting the resale fee in basis points.
func (m *Marketplace) SetTicketFeePercentage(bps *big.Int) (*UnsignedTx, error) {
	return m.Transact("setTicketFeePercentage", nil, bps)
}

// WithdrawFees builds the transaction paying the collected resale fees to the contract owner.
func (m *Marketplace) WithdrawFees() (*UnsignedTx, error) {
	return m.Transact("withdrawFees", nil)
}

// FetchAllListedTicketIDs reads the identifiers of every listed ticket.
func (m *Marketplace) FetchAllListedTicketIDs(ctx context.Context) ([]*big.Int, error) {
	out, err := m.Call(ctx, common.Address{}, "fetchAllListedTicketIds")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int), nil
}

// GetListedTicketByID reads the marketplace state of a ticket.
func (m *Marketplace) GetListedTicketByID(ctx context.Context, ticketID *big.Int) (ListedTicket, error) {
	out, err := m.Call(ctx, common.Address{}, "getListedTicketById", ticketID)
	if err != nil {
		return ListedTicket{}, err
	}
	return *abi.ConvertType(out[0], new(ListedTicket)).(*ListedTicket), nil
}

// NewMarketplace binds the marketplace deployed at address.
func NewMarketplace(address common.Address, backend Backend) (*Marketplace, error) {
	c, err := NewContract("marketplace", MarketplaceABI, address, backend)
	if err != nil {
		return nil, err
	}
	return &Marketplace{Contract: c}, nil
}
