package contracts

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Overloads of buyTickets as named by the abi package: the first declaration keeps
// the plain name, the second one gets the numeric suffix.
const (
	MethodBuyTicketsSingleEvent    = "buyTickets"
	MethodBuyTicketsMultipleEvents = "buyTickets0"
)

// ErrNoEventCategory is returned by BuyTickets when no event category is given.
var ErrNoEventCategory = errors.New("at least one event category is required")

// TicketController binds the ticket controller facet: primary sales, bookings,
// refunds and clipping.
type TicketController struct {
	*Contract
}

// CalculateTotalValue returns the funds to attach to a purchase: the sum of price × amount.
func CalculateTotalValue(priceData []PriceData) *big.Int {
	total := new(big.Int)
	for _, p := range priceData {
		if p.Price == nil || p.Amount == nil {
			continue
		}
		total.Add(total, new(big.Int).Mul(p.Price, p.Amount))
	}
	return total
}

// BuyTickets builds the purchase transaction. A single event category selects the
// single-event overload, several select the multi-event overload. The attached
// value is CalculateTotalValue(priceData).
func (t *TicketController) BuyTickets(tokenURIs []string, categories []EventCategory, priceData []PriceData, places []Place) (*UnsignedTx, error) {
	value := CalculateTotalValue(priceData)

	switch len(categories) {
	case 0:
		return nil, ErrNoEventCategory
	case 1:
		return t.Transact(MethodBuyTicketsSingleEvent, value,
			categories[0].EventID,
			categories[0].CategoryID,
			priceData,
			places,
			tokenURIs,
		)
	default:
		return t.Transact(MethodBuyTicketsMultipleEvents, value, categories, priceData, places, tokenURIs)
	}
}

// AddRefundDeadline builds the transaction adding a refund deadline to an event.
func (t *TicketController) AddRefundDeadline(eventID *big.Int, refund RefundData) (*UnsignedTx, error) {
	return t.Transact("addRefundDeadline", nil, eventID, refund)
}

// ReturnTicket builds the transaction returning a ticket for refund.
func (t *TicketController) ReturnTicket(p TicketParams) (*UnsignedTx, error) {
	return t.Transact("returnTicket", nil, p)
}

// WithdrawRefund builds the transaction paying out the refund of a returned ticket.
func (t *TicketController) WithdrawRefund(eventID, ticketID *big.Int) (*UnsignedTx, error) {
	return t.Transact("withdrawRefund", nil, eventID, ticketID)
}

// WithdrawEventBalance builds the transaction paying the event balance to its cashier.
func (t *TicketController) WithdrawEventBalance(eventID *big.Int) (*UnsignedTx, error) {
	return t.Transact("withdrawEventBalance", nil, eventID)
}

// ClipTicket builds the transaction marking a ticket as used at the venue.
func (t *TicketController) ClipTicket(eventID, ticketID, signatureTimestamp *big.Int, signature []byte) (*UnsignedTx, error) {
	return t.Transact("clipTicket", nil, eventID, ticketID, signatureTimestamp, signature)
}

// BookTickets builds the transaction reserving tickets without payment.
func (t *TicketController) BookTickets(tokenURIs []string, eventID *big.Int, categories []CategoryAmount, places []BookingPlace) (*UnsignedTx, error) {
	return t.Transact("bookTickets", nil, eventID, categories, places, tokenURIs)
}

// SendInvitation builds the transaction transferring booked tickets to the invited accounts.
func (t *TicketController) SendInvitation(eventID *big.Int, ticketIDs []*big.Int, accounts []common.Address) (*UnsignedTx, error) {
	return t.Transact("sendInvitation", nil, eventID, ticketIDs, accounts)
}

// SetTicketFeePercentage builds the transaction setting the primary sale fee in basis points.
func (t *TicketController) SetTicketFeePercentage(bps *big.Int) (*UnsignedTx, error) {
	return t.Transact("setTicketFeePercentage", nil, bps)
}

// WithdrawFees builds the transaction paying the collected fees to the contract owner.
func (t *TicketController) WithdrawFees() (*UnsignedTx, error) {
	return t.Transact("withdrawFees", nil)
}

// GetAddressTicketIDsByEvent reads the tickets of an event held by account.
func (t *TicketController) GetAddressTicketIDsByEvent(ctx context.Context, eventID *big.Int, account common.Address) ([]*big.Int, error) {
	out, err := t.Call(ctx, account, "getAddressTicketIdsByEvent", eventID)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int), nil
}

// NewTicketController binds the ticket controller facet deployed at address.
func NewTicketController(address common.Address, backend Backend) (*TicketController, error) {
	c, err := NewContract("ticketController", TicketControllerABI, address, backend)
	if err != nil {
		return nil, err
	}
	return &TicketController{Contract: c}, nil
}
