package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// RefundData is a refund deadline: tickets returned before Date are refunded by Percentage.
type RefundData struct {
	Date       *big.Int
	Percentage *big.Int
}

// DownPayment describes a partial upfront payment for category tickets.
type DownPayment struct {
	Price           *big.Int
	FinalAmountDate *big.Int
}

// orZero replaces unset amounts with zero, an unset down payment means none.
func (d DownPayment) orZero() DownPayment {
	if d.Price == nil {
		d.Price = new(big.Int)
	}
	if d.FinalAmountDate == nil {
		d.FinalAmountDate = new(big.Int)
	}
	return d
}

// Event is the on-chain state of an event.
type Event struct {
	StartDate                    *big.Int
	EndDate                      *big.Int
	MaxTicketPerClient           *big.Int
	OnlyWhiteListedUsers         bool
	AreAllCategoryTicketsBuyable bool
	Status                       uint8
	Cashier                      common.Address
	PostponeTime                 *big.Int
	RefundData                   []RefundData
}

// Record returns the event fields keyed by their contract names.
func (e Event) Record() map[string]any {
	refunds := make([]map[string]any, 0, len(e.RefundData))
	for _, r := range e.RefundData {
		refunds = append(refunds, map[string]any{"date": r.Date, "percentage": r.Percentage})
	}
	return map[string]any{
		"startDate":                    e.StartDate,
		"endDate":                      e.EndDate,
		"maxTicketPerClient":           e.MaxTicketPerClient,
		"onlyWhiteListedUsers":         e.OnlyWhiteListedUsers,
		"areAllCategoryTicketsBuyable": e.AreAllCategoryTicketsBuyable,
		"status":                       e.Status,
		"cashier":                      e.Cashier.Hex(),
		"postponeTime":                 e.PostponeTime,
		"refundData":                   refunds,
	}
}

// Category is the on-chain state of a ticket category. CID addresses its metadata document.
type Category struct {
	ID                    *big.Int `abi:"id"`
	EventID               *big.Int `abi:"eventId"`
	CID                   string   `abi:"cid"`
	SaleStartDate         *big.Int
	SaleEndDate           *big.Int
	TicketsCount          *big.Int
	TicketPrice           *big.Int
	DiscountsTicketsCount []*big.Int
	DiscountsPercentage   []*big.Int
	DownPayment           DownPayment
	HasPlaces             bool
	AreTicketsBuyable     bool
}

// Record returns the category fields keyed by their contract names.
func (c Category) Record() map[string]any {
	return map[string]any{
		"id":                    c.ID,
		"eventId":               c.EventID,
		"cid":                   c.CID,
		"saleStartDate":         c.SaleStartDate,
		"saleEndDate":           c.SaleEndDate,
		"ticketsCount":          c.TicketsCount,
		"ticketPrice":           c.TicketPrice,
		"discountsTicketsCount": c.DiscountsTicketsCount,
		"discountsPercentage":   c.DiscountsPercentage,
		"downPayment": map[string]any{
			"price":           c.DownPayment.Price,
			"finalAmountDate": c.DownPayment.FinalAmountDate,
		},
		"hasPlaces":         c.HasPlaces,
		"areTicketsBuyable": c.AreTicketsBuyable,
	}
}

// EventMember is an account holding a role in an event team.
type EventMember struct {
	Account common.Address
	Role    [32]byte
}

// Ticket is the on-chain state of a ticket. TokenURI addresses its metadata document.
type Ticket struct {
	EventID    *big.Int `abi:"eventId"`
	CategoryID *big.Int `abi:"categoryId"`
	Row        *big.Int
	Seat       *big.Int
	TokenURI   string `abi:"tokenUri"`
	IsUsed     bool
}

// Record returns the ticket fields keyed by their contract names.
func (t Ticket) Record() map[string]any {
	return map[string]any{
		"eventId":    t.EventID,
		"categoryId": t.CategoryID,
		"row":        t.Row,
		"seat":       t.Seat,
		"tokenUri":   t.TokenURI,
		"isUsed":     t.IsUsed,
	}
}

// ListedTicket is the marketplace state of a ticket.
type ListedTicket struct {
	Seller   common.Address
	Price    *big.Int
	IsListed bool
}

// PriceData is the price paid per ticket and the number of tickets at that price.
type PriceData struct {
	Amount *big.Int
	Price  *big.Int
}

// Place is a seat position.
type Place struct {
	Row  *big.Int
	Seat *big.Int
}

// BookingPlace is a seat reserved for an account. The zero address keeps the ticket with the contract.
type BookingPlace struct {
	Row     *big.Int
	Seat    *big.Int
	Account common.Address
}

// EventCategory points to a category of an event.
type EventCategory struct {
	EventID    *big.Int `abi:"eventId"`
	CategoryID *big.Int `abi:"categoryId"`
}

// CategoryAmount is a number of tickets to book in a category.
type CategoryAmount struct {
	CategoryID   *big.Int `abi:"categoryId"`
	TicketAmount *big.Int
}

// TicketParams identifies a ticket to be returned.
type TicketParams struct {
	EventID    *big.Int `abi:"eventId"`
	CategoryID *big.Int `abi:"categoryId"`
	TicketID   *big.Int `abi:"ticketId"`
}

// EventParams are the on-chain parameters of a new event.
type EventParams struct {
	MaxTicketPerClient   *big.Int
	StartDate            *big.Int
	EndDate              *big.Int
	OnlyWhiteListedUsers bool
}

// CategoryParams are the on-chain parameters of a new ticket category.
type CategoryParams struct {
	SaleStartDate         *big.Int
	SaleEndDate           *big.Int
	TicketsCount          *big.Int
	TicketPrice           *big.Int
	HasPlaces             bool
	DiscountsTicketsCount []*big.Int
	DiscountsPercentage   []*big.Int
	DownPayment           DownPayment
}

// CategoryUpdateParams are the mutable on-chain parameters of a ticket category.
type CategoryUpdateParams struct {
	TicketPrice           *big.Int
	DiscountsTicketsCount []*big.Int
	DiscountsPercentage   []*big.Int
	DownPayment           DownPayment
}
