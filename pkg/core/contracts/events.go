package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Events binds the events facet: event lifecycle, team members and ticket categories.
type Events struct {
	*Contract
}

// CreateEvent builds the transaction minting a new event whose metadata lives at tokenURI.
func (e *Events) CreateEvent(tokenURI string, p EventParams) (*UnsignedTx, error) {
	return e.Transact("createEvent", nil, p.MaxTicketPerClient, p.StartDate, p.EndDate, p.OnlyWhiteListedUsers, tokenURI)
}

// RemoveEvent builds the transaction removing an event.
func (e *Events) RemoveEvent(eventID *big.Int) (*UnsignedTx, error) {
	return e.Transact("removeEvent", nil, eventID)
}

// UpdateEventTokenURI builds the transaction pointing the event at a new metadata document.
func (e *Events) UpdateEventTokenURI(eventID *big.Int, tokenURI string) (*UnsignedTx, error) {
	return e.Transact("updateEventTokenUri", nil, eventID, tokenURI)
}

// AddTeamMember builds the transaction granting role to account within the event.
func (e *Events) AddTeamMember(eventID *big.Int, role [32]byte, account common.Address) (*UnsignedTx, error) {
	return e.Transact("addTeamMember", nil, eventID, role, account)
}

// RemoveTeamMember builds the transaction revoking role from account within the event.
func (e *Events) RemoveTeamMember(eventID *big.Int, role [32]byte, account common.Address) (*UnsignedTx, error) {
	return e.Transact("removeTeamMember", nil, eventID, role, account)
}

// SetEventCashier builds the transaction replacing the event cashier.
func (e *Events) SetEventCashier(eventID *big.Int, oldCashier, newCashier common.Address) (*UnsignedTx, error) {
	return e.Transact("setEventCashier", nil, eventID, oldCashier, newCashier)
}

// CreateTicketCategory builds the transaction adding a category whose metadata lives at cid.
func (e *Events) CreateTicketCategory(cid string, eventID *big.Int, p CategoryParams) (*UnsignedTx, error) {
	return e.Transact("createTicketCategory", nil,
		eventID,
		cid,
		p.SaleStartDate,
		p.SaleEndDate,
		p.TicketsCount,
		p.TicketPrice,
		p.HasPlaces,
		p.DiscountsTicketsCount,
		p.DiscountsPercentage,
		p.DownPayment.orZero(),
	)
}

// UpdateCategory builds the transaction updating the metadata and prices of a category.
func (e *Events) UpdateCategory(cid string, eventID, categoryID *big.Int, p CategoryUpdateParams) (*UnsignedTx, error) {
	return e.Transact("updateCategory", nil,
		eventID,
		categoryID,
		cid,
		p.TicketPrice,
		p.DiscountsTicketsCount,
		p.DiscountsPercentage,
		p.DownPayment.orZero(),
	)
}

// RemoveCategory builds the transaction deleting a category.
func (e *Events) RemoveCategory(eventID, categoryID *big.Int) (*UnsignedTx, error) {
	return e.Transact("removeCategory", nil, eventID, categoryID)
}

// AddCategoryTicketsCount builds the transaction raising the ticket supply of a category.
func (e *Events) AddCategoryTicketsCount(eventID, categoryID, count *big.Int) (*UnsignedTx, error) {
	return e.Transact("addCategoryTicketsCount", nil, eventID, categoryID, count)
}

// RemoveCategoryTicketsCount builds the transaction lowering the ticket supply of a category.
func (e *Events) RemoveCategoryTicketsCount(eventID, categoryID, count *big.Int) (*UnsignedTx, error) {
	return e.Transact("removeCategoryTicketsCount", nil, eventID, categoryID, count)
}

// ManageCategorySelling builds the transaction opening or closing sales of one category.
func (e *Events) ManageCategorySelling(eventID, categoryID *big.Int, buyable bool) (*UnsignedTx, error) {
	return e.Transact("manageCategorySelling", nil, eventID, categoryID, buyable)
}

// ManageAllCategorySelling builds the transaction opening or closing sales of every category.
func (e *Events) ManageAllCategorySelling(eventID *big.Int, buyable bool) (*UnsignedTx, error) {
	return e.Transact("manageAllCategorySelling", nil, eventID, buyable)
}

// UpdateCategorySaleDates builds the transaction moving the sale window of a category.
func (e *Events) UpdateCategorySaleDates(eventID, categoryID, saleStart, saleEnd *big.Int) (*UnsignedTx, error) {
	return e.Transact("updateCategorySaleDates", nil, eventID, categoryID, saleStart, saleEnd)
}

// PostponeEvent builds the transaction postponing an event by postponeTime seconds.
func (e *Events) PostponeEvent(eventID, postponeTime *big.Int) (*UnsignedTx, error) {
	return e.Transact("postponeEvent", nil, eventID, postponeTime)
}

// CancelEvent builds the transaction canceling an event.
func (e *Events) CancelEvent(eventID *big.Int) (*UnsignedTx, error) {
	return e.Transact("cancelEvent", nil, eventID)
}

// WithdrawFromCanceledEvent builds the transaction refunding the sender's tickets of a canceled event.
func (e *Events) WithdrawFromCanceledEvent(eventID *big.Int) (*UnsignedTx, error) {
	return e.Transact("withdrawFromCanceledEvent", nil, eventID)
}

// FetchEventByID reads the on-chain state of an event.
func (e *Events) FetchEventByID(ctx context.Context, eventID *big.Int) (Event, error) {
	out, err := e.Call(ctx, common.Address{}, "fetchEventById", eventID)
	if err != nil {
		return Event{}, err
	}
	return *abi.ConvertType(out[0], new(Event)).(*Event), nil
}

// FetchAllEvents reads the on-chain state of every event.
func (e *Events) FetchAllEvents(ctx context.Context) ([]Event, error) {
	out, err := e.Call(ctx, common.Address{}, "fetchAllEvents")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]Event)).(*[]Event), nil
}

// FetchOwnedEvents reads the identifiers of the events owned by owner.
func (e *Events) FetchOwnedEvents(ctx context.Context, owner common.Address) ([]*big.Int, error) {
	out, err := e.Call(ctx, owner, "fetchOwnedEvents")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int), nil
}

// FetchAllEventIDs reads the identifiers of every event.
func (e *Events) FetchAllEventIDs(ctx context.Context) ([]*big.Int, error) {
	out, err := e.Call(ctx, common.Address{}, "fetchAllEventIds")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int), nil
}

// TokenURI reads the metadata URI of an event.
func (e *Events) TokenURI(ctx context.Context, eventID *big.Int) (string, error) {
	out, err := e.Call(ctx, common.Address{}, "tokenURI", eventID)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// GetEventMembers reads the team of an event.
func (e *Events) GetEventMembers(ctx context.Context, eventID *big.Int) ([]EventMember, error) {
	out, err := e.Call(ctx, common.Address{}, "getEventMembers", eventID)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]EventMember)).(*[]EventMember), nil
}

// FetchCategoriesByEventID reads the on-chain state of every category of an event.
func (e *Events) FetchCategoriesByEventID(ctx context.Context, eventID *big.Int) ([]Category, error) {
	out, err := e.Call(ctx, common.Address{}, "fetchCategoriesByEventId", eventID)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]Category)).(*[]Category), nil
}

// NewEvents binds the events facet deployed at address.
func NewEvents(address common.Address, backend Backend) (*Events, error) {
	c, err := NewContract("events", EventsABI, address, backend)
	if err != nil {
		return nil, err
	}
	return &Events{Contract: c}, nil
}
