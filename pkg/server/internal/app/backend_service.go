package app

import (
	"context"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/backend"
)

// BackendProvider defines the contract for querying the ticketing REST backend.
type BackendProvider interface {
	FetchCountriesFromServer(ctx context.Context) (*backend.Response, error)
	FetchPlacesFromServer(ctx context.Context, country string) (*backend.Response, error)
	FetchAllEventsFromServer(ctx context.Context, query backend.EventsQuery) (*backend.Response, error)
}

// BackendService passes catalog queries through to the REST backend.
type BackendService struct {
	provider BackendProvider
}

// Countries returns the backend's country list unmodified.
func (s *BackendService) Countries(ctx context.Context) (*backend.Response, error) {
	res, err := s.provider.FetchCountriesFromServer(ctx)
	if err != nil {
		return nil, NewBackendQueryError(err)
	}
	return res, nil
}

// Places returns the places of a country unmodified. The country is required.
func (s *BackendService) Places(ctx context.Context, country string) (*backend.Response, error) {
	if country == "" {
		return nil, NewEmptyCountryError()
	}

	res, err := s.provider.FetchPlacesFromServer(ctx, country)
	if err != nil {
		return nil, NewBackendQueryError(err)
	}
	return res, nil
}

// SearchEvents forwards the query to the backend events index.
func (s *BackendService) SearchEvents(ctx context.Context, query backend.EventsQuery) (*backend.Response, error) {
	res, err := s.provider.FetchAllEventsFromServer(ctx, query)
	if err != nil {
		return nil, NewBackendQueryError(err)
	}
	return res, nil
}

// NewBackendService creates a new BackendService with the given provider.
// Panics if the provider is nil.
func NewBackendService(provider BackendProvider) *BackendService {
	if provider == nil {
		panic("backend provider cannot be nil")
	}
	return &BackendService{provider: provider}
}

// NewEmptyCountryError returns an Error indicating that the country parameter is empty.
func NewEmptyCountryError() Error {
	return Error{
		errorType: ErrorTypeIncorrectInput,
		err:       "country cannot be empty",
		slug:      "A valid country must be provided to list places.",
	}
}

// NewBackendQueryError returns an Error indicating that the backend could not answer the query.
func NewBackendQueryError(err error) Error {
	return classifyProviderError(err, "Unable to query the ticketing backend. Please try again later.")
}
