package listeners

import (
	"context"
	"fmt"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/contracts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gookit/slog"
)

// Source names the contract that emits an event.
type Source int

const (
	SourceEvents Source = iota
	SourceTicketController
	SourceTickets
	SourceMarketplace
)

func (s Source) String() string {
	switch s {
	case SourceEvents:
		return "events"
	case SourceTicketController:
		return "ticketController"
	case SourceTickets:
		return "tickets"
	case SourceMarketplace:
		return "marketplace"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Contract events that can be listened to.
const (
	EventCreated             = "EventCreated"
	EventUpdated             = "EventUpdated"
	EventCanceled            = "EventCanceled"
	EventPostponed           = "EventPostponed"
	EventCashierUpdated      = "EventCashierUpdated"
	CategoryCreated          = "CategoryCreated"
	CategoryUpdated          = "CategoryUpdated"
	CategoryDeleted          = "CategoryDeleted"
	CategorySaleDatesUpdated = "CategorySaleDatesUpdated"
	CategorySellChanged      = "CategorySellChanged"
	AllCategorySellChanged   = "AllCategorySellChanged"
	CategoryTicketsAdded     = "CategoryTicketsAdded"
	CategoryTicketsRemoved   = "CategoryTicketsRemoved"
	RoleGranted              = "RoleGranted"
	RoleRevoked              = "RoleRevoked"
	TicketsBought            = "TicketsBought"
	TicketsBooked            = "TicketsBooked"
	TicketClipped            = "TicketClipped"
	TicketRefunded           = "TicketRefunded"
	RefundWithdrawn          = "RefundWithdrawn"
	RefundDateAdded          = "RefundDateAdded"
	EventBalanceWithdrawn    = "EventBalanceWithdrawn"
	TicketLocked             = "Locked"
	TicketUnlocked           = "Unlocked"
	TicketListed             = "TicketListed"
	ListedTicketBought       = "ListedTicketBought"
	ListedTicketCanceled     = "ListedTicketCanceled"
	ListedTicketPriceUpdated = "ListedTicketPriceUpdated"
)

var sources = map[string]Source{
	EventCreated:             SourceEvents,
	EventUpdated:             SourceEvents,
	EventCanceled:            SourceEvents,
	EventPostponed:           SourceEvents,
	EventCashierUpdated:      SourceEvents,
	CategoryCreated:          SourceEvents,
	CategoryUpdated:          SourceEvents,
	CategoryDeleted:          SourceEvents,
	CategorySaleDatesUpdated: SourceEvents,
	CategorySellChanged:      SourceEvents,
	AllCategorySellChanged:   SourceEvents,
	CategoryTicketsAdded:     SourceEvents,
	CategoryTicketsRemoved:   SourceEvents,
	RoleGranted:              SourceEvents,
	RoleRevoked:              SourceEvents,
	TicketsBought:            SourceTicketController,
	TicketsBooked:            SourceTicketController,
	TicketClipped:            SourceTicketController,
	TicketRefunded:           SourceTicketController,
	RefundWithdrawn:          SourceTicketController,
	RefundDateAdded:          SourceTicketController,
	EventBalanceWithdrawn:    SourceTicketController,
	TicketLocked:             SourceTickets,
	TicketUnlocked:           SourceTickets,
	TicketListed:             SourceMarketplace,
	ListedTicketBought:       SourceMarketplace,
	ListedTicketCanceled:     SourceMarketplace,
	ListedTicketPriceUpdated: SourceMarketplace,
}

// SourceOf returns the contract emitting the named event.
func SourceOf(name string) (Source, bool) {
	s, ok := sources[name]
	return s, ok
}

// Event is a decoded contract log.
type Event struct {
	Name     string
	Contract common.Address
	Args     map[string]any
	Log      types.Log
}

// Handler is invoked for every decoded log, in delivery order.
type Handler func(ev Event)

// Listen subscribes to the named event of the contract and invokes handle for
// every log until ctx is done or the subscription fails. Logs that cannot be
// decoded are skipped.
func Listen(ctx context.Context, c *contracts.Contract, name string, handle Handler) error {
	if handle == nil {
		return fmt.Errorf("listen %s: handler is nil", name)
	}

	logs, sub, err := c.WatchLogs(ctx, name)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	slog.Debugf("listening for %s on %s", name, c.Address().Hex())
	for {
		select {
		case l := <-logs:
			args, err := c.UnpackLog(name, l)
			if err != nil {
				slog.Warnf("skipping %s log in tx %s: %v", name, l.TxHash.Hex(), err)
				continue
			}
			handle(Event{Name: name, Contract: l.Address, Args: args, Log: l})
		case err := <-sub.Err():
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
