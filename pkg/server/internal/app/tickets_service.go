package app

import (
	"context"
	"math/big"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
)

// TicketsProvider defines the contract for reading tickets merged with their metadata.
type TicketsProvider interface {
	GetSingleTicketByID(ctx context.Context, ticketID *big.Int) (metadata.Record, error)
	GetTicketsByIDs(ctx context.Context, ticketIDs []*big.Int) ([]metadata.Record, error)
	GetListedTicketByID(ctx context.Context, ticketID *big.Int) (metadata.Record, error)
}

// TicketsService exposes ticket views to the HTTP layer.
type TicketsService struct {
	provider TicketsProvider
}

// GetTicket returns a single ticket view. Unreachable metadata degrades to the on-chain record.
func (s *TicketsService) GetTicket(ctx context.Context, id string) (metadata.Record, error) {
	ticketID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	view, err := s.provider.GetSingleTicketByID(ctx, ticketID)
	if err != nil {
		return nil, NewTicketFetchError(err)
	}
	return view, nil
}

// GetTickets returns the tickets in request order. Only a failing on-chain read aborts the batch.
func (s *TicketsService) GetTickets(ctx context.Context, ids []string) ([]metadata.Record, error) {
	ticketIDs, err := ParseIDs(ids)
	if err != nil {
		return nil, err
	}

	views, err := s.provider.GetTicketsByIDs(ctx, ticketIDs)
	if err != nil {
		return nil, NewBatchFetchError("ticket", err)
	}
	return views, nil
}

// GetListedTicket returns the ticket view extended with its marketplace listing.
func (s *TicketsService) GetListedTicket(ctx context.Context, id string) (metadata.Record, error) {
	ticketID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	view, err := s.provider.GetListedTicketByID(ctx, ticketID)
	if err != nil {
		return nil, NewListedTicketFetchError(err)
	}
	return view, nil
}

// NewTicketsService creates a new TicketsService with the given provider.
// Panics if the provider is nil.
func NewTicketsService(provider TicketsProvider) *TicketsService {
	if provider == nil {
		panic("tickets provider cannot be nil")
	}
	return &TicketsService{provider: provider}
}

// NewTicketFetchError returns an Error indicating that a ticket could not be read.
func NewTicketFetchError(err error) Error {
	return classifyProviderError(err, "Unable to fetch the ticket. Please try again later or contact the support team.")
}

// NewListedTicketFetchError returns an Error indicating that a marketplace listing could not be read.
func NewListedTicketFetchError(err error) Error {
	return classifyProviderError(err, "Unable to fetch the listed ticket. Please try again later or contact the support team.")
}
