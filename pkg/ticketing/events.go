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

// Keys added to the merged views next to the contract fields.
const (
	KeyEventID  = "eventId"
	KeyCID      = "cid"
	KeyID       = "id"
	KeyPrice    = "price"
	KeyIsListed = "isListed"
)

// CreateEvent builds the transaction creating an event whose metadata lives at uri.
func (c *Client) CreateEvent(uri gateway.ContentURI, p contracts.EventParams) (*contracts.UnsignedTx, error) {
	return c.events.CreateEvent(string(uri), p)
}

// FetchEvent returns the event merged with its metadata. Failing to resolve or
// fetch the metadata fails the call.
func (c *Client) FetchEvent(ctx context.Context, eventID *big.Int) (metadata.Record, error) {
	uri, err := c.events.TokenURI(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("fetch event %s: %w", eventID, err)
	}
	event, err := c.events.FetchEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("fetch event %s: %w", eventID, err)
	}

	raw := metadata.Record{KeyEventID: eventID, KeyCID: uri}
	for k, v := range event.Record() {
		raw[k] = v
	}

	view, err := c.metadata.Enrich(ctx, gateway.ContentURI(uri), raw)
	if err != nil {
		return nil, fmt.Errorf("fetch event %s: %w", eventID, err)
	}
	return view, nil
}

// FetchEvents returns the events in input order. Any failing event aborts the
// batch with a *metadata.BatchAbortError.
func (c *Client) FetchEvents(ctx context.Context, eventIDs []*big.Int) ([]metadata.Record, error) {
	return metadata.ResolveAll(ctx, eventIDs, c.FetchEvent)
}

// FetchContractEvents returns the on-chain state of every event.
func (c *Client) FetchContractEvents(ctx context.Context) ([]contracts.Event, error) {
	return c.events.FetchAllEvents(ctx)
}

// FetchOwnedEvents returns the merged views of the events owned by owner.
func (c *Client) FetchOwnedEvents(ctx context.Context, owner common.Address) ([]metadata.Record, error) {
	ids, err := c.events.FetchOwnedEvents(ctx, owner)
	if err != nil {
		return nil, err
	}
	return c.FetchEvents(ctx, ids)
}

// RemoveEvent builds the transaction removing an event.
func (c *Client) RemoveEvent(eventID *big.Int) (*contracts.UnsignedTx, error) {
	return c.events.RemoveEvent(eventID)
}

// UpdateEvent builds the transaction pointing the event at the metadata living at uri.
func (c *Client) UpdateEvent(uri gateway.ContentURI, eventID *big.Int) (*contracts.UnsignedTx, error) {
	return c.events.UpdateEventTokenURI(eventID, string(uri))
}

// GetEventIPFSURI reads the metadata URI of an event.
func (c *Client) GetEventIPFSURI(ctx context.Context, eventID *big.Int) (gateway.ContentURI, error) {
	uri, err := c.events.TokenURI(ctx, eventID)
	return gateway.ContentURI(uri), err
}

// AddTeamMember builds the transaction granting role to account within the event.
func (c *Client) AddTeamMember(eventID *big.Int, role [32]byte, account common.Address) (*contracts.UnsignedTx, error) {
	return c.events.AddTeamMember(eventID, role, account)
}

// RemoveTeamMember builds the transaction revoking role from account within the event.
func (c *Client) RemoveTeamMember(eventID *big.Int, role [32]byte, account common.Address) (*contracts.UnsignedTx, error) {
	return c.events.RemoveTeamMember(eventID, role, account)
}

// GetEventMembers reads the team of an event.
func (c *Client) GetEventMembers(ctx context.Context, eventID *big.Int) ([]contracts.EventMember, error) {
	return c.events.GetEventMembers(ctx, eventID)
}

// FetchAllEventIDs reads the identifiers of every event.
func (c *Client) FetchAllEventIDs(ctx context.Context) ([]*big.Int, error) {
	return c.events.FetchAllEventIDs(ctx)
}

// SetEventCashier builds the transaction replacing the event cashier.
func (c *Client) SetEventCashier(eventID *big.Int, oldCashier, newCashier common.Address) (*contracts.UnsignedTx, error) {
	return c.events.SetEventCashier(eventID, oldCashier, newCashier)
}

// CreateTicketCategory builds the transaction adding a category whose metadata lives at uri.
func (c *Client) CreateTicketCategory(uri gateway.ContentURI, eventID *big.Int, p contracts.CategoryParams) (*contracts.UnsignedTx, error) {
	return c.events.CreateTicketCategory(string(uri), eventID, p)
}

// UpdateCategory builds the transaction updating a category and its metadata URI.
func (c *Client) UpdateCategory(uri gateway.ContentURI, eventID, categoryID *big.Int, p contracts.CategoryUpdateParams) (*contracts.UnsignedTx, error) {
	return c.events.UpdateCategory(string(uri), eventID, categoryID, p)
}

// RemoveCategory builds the transaction removing a category.
func (c *Client) RemoveCategory(eventID, categoryID *big.Int) (*contracts.UnsignedTx, error) {
	return c.events.RemoveCategory(eventID, categoryID)
}

// AddCategoryTicketsCount builds the transaction raising the ticket supply of a category.
func (c *Client) AddCategoryTicketsCount(eventID, categoryID, count *big.Int) (*contracts.UnsignedTx, error) {
	return c.events.AddCategoryTicketsCount(eventID, categoryID, count)
}

// RemoveCategoryTicketsCount builds the transaction lowering the ticket supply of a category.
func (c *Client) RemoveCategoryTicketsCount(eventID, categoryID, count *big.Int) (*contracts.UnsignedTx, error) {
	return c.events.RemoveCategoryTicketsCount(eventID, categoryID, count)
}

// ManageCategorySelling builds the transaction opening or closing sales of a category.
func (c *Client) ManageCategorySelling(eventID, categoryID *big.Int, buyable bool) (*contracts.UnsignedTx, error) {
	return c.events.ManageCategorySelling(eventID, categoryID, buyable)
}

// ManageAllCategorySelling builds the transaction opening or closing sales of every category of the event.
func (c *Client) ManageAllCategorySelling(eventID *big.Int, buyable bool) (*contracts.UnsignedTx, error) {
	return c.events.ManageAllCategorySelling(eventID, buyable)
}

// FetchCategoriesByEventID returns the categories of an event merged with their
// metadata, in contract order. A category whose metadata cannot be resolved is
// returned as its on-chain record.
func (c *Client) FetchCategoriesByEventID(ctx context.Context, eventID *big.Int) ([]metadata.Record, error) {
	categories, err := c.events.FetchCategoriesByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("fetch categories of event %s: %w", eventID, err)
	}

	return metadata.ResolveAll(ctx, categories, func(ctx context.Context, category contracts.Category) (metadata.Record, error) {
		return c.metadata.EnrichOrRaw(ctx, gateway.ContentURI(category.CID), category.Record()), nil
	})
}

// UpdateCategorySaleDates builds the transaction moving the sale window of a category.
func (c *Client) UpdateCategorySaleDates(eventID, categoryID, saleStart, saleEnd *big.Int) (*contracts.UnsignedTx, error) {
	return c.events.UpdateCategorySaleDates(eventID, categoryID, saleStart, saleEnd)
}

// PostponeEvent builds the transaction postponing an event by postponeTime seconds.
func (c *Client) PostponeEvent(eventID, postponeTime *big.Int) (*contracts.UnsignedTx, error) {
	return c.events.PostponeEvent(eventID, postponeTime)
}

// CancelEvent builds the transaction canceling an event.
func (c *Client) CancelEvent(eventID *big.Int) (*contracts.UnsignedTx, error) {
	return c.events.CancelEvent(eventID)
}

// WithdrawFromCanceledEvent builds the transaction refunding the tickets of a canceled event.
func (c *Client) WithdrawFromCanceledEvent(eventID *big.Int) (*contracts.UnsignedTx, error) {
	return c.events.WithdrawFromCanceledEvent(eventID)
}
