package app

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
)

// EventsProvider defines the contract for reading events merged with their metadata.
type EventsProvider interface {
	FetchEvent(ctx context.Context, eventID *big.Int) (metadata.Record, error)
	FetchEvents(ctx context.Context, eventIDs []*big.Int) ([]metadata.Record, error)
	FetchCategoriesByEventID(ctx context.Context, eventID *big.Int) ([]metadata.Record, error)
}

// EventsService exposes event views to the HTTP layer.
type EventsService struct {
	provider EventsProvider
}

// GetEvent returns a single event view. A metadata failure fails the call.
func (s *EventsService) GetEvent(ctx context.Context, id string) (metadata.Record, error) {
	eventID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	view, err := s.provider.FetchEvent(ctx, eventID)
	if err != nil {
		return nil, NewEventFetchError(err)
	}
	return view, nil
}

// GetEvents returns the events in request order. The first failing event aborts the batch.
func (s *EventsService) GetEvents(ctx context.Context, ids []string) ([]metadata.Record, error) {
	eventIDs, err := ParseIDs(ids)
	if err != nil {
		return nil, err
	}

	views, err := s.provider.FetchEvents(ctx, eventIDs)
	if err != nil {
		return nil, NewBatchFetchError("event", err)
	}
	return views, nil
}

// GetCategories returns the categories of an event. Categories with unreachable
// metadata degrade to their on-chain record.
func (s *EventsService) GetCategories(ctx context.Context, id string) ([]metadata.Record, error) {
	eventID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	views, err := s.provider.FetchCategoriesByEventID(ctx, eventID)
	if err != nil {
		return nil, NewCategoriesFetchError(err)
	}
	return views, nil
}

// NewEventsService creates a new EventsService with the given provider.
// Panics if the provider is nil.
func NewEventsService(provider EventsProvider) *EventsService {
	if provider == nil {
		panic("events provider cannot be nil")
	}
	return &EventsService{provider: provider}
}

// NewEventFetchError returns an Error indicating that an event could not be read.
func NewEventFetchError(err error) Error {
	return classifyProviderError(err, "Unable to fetch the event. Please try again later or contact the support team.")
}

// NewCategoriesFetchError returns an Error indicating that the categories of an event could not be read.
func NewCategoriesFetchError(err error) Error {
	return classifyProviderError(err, "Unable to fetch the event categories. Please try again later or contact the support team.")
}

// NewBatchFetchError returns an Error naming the position and the identifier of the
// item that aborted a batch read.
func NewBatchFetchError(kind string, err error) Error {
	var abort *metadata.BatchAbortError
	if !errors.As(err, &abort) {
		return classifyProviderError(err, fmt.Sprintf("Unable to fetch the %ss. Please try again later or contact the support team.", kind))
	}
	return classifyProviderError(err, fmt.Sprintf("Unable to fetch the %s %s at position %d. Please try again later or contact the support team.", kind, abort.ID, abort.Index))
}
