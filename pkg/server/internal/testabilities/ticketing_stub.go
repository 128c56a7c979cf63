package testabilities

import (
	"context"
	"math/big"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/backend"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/app"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/ticketing"
)

// TestNetwork is the chain description returned by the TestTicketingStub.
var TestNetwork = ticketing.Network{
	RPCURL:    "https://api.avax-test.network/ext/bc/C/rpc",
	ChainID:   "0xa869",
	TokenName: "AVAX",
	Label:     "Avalanche Fuji",
}

// ProviderStateAsserter is an interface for asserting internal state after a test run.
type ProviderStateAsserter interface {
	AssertCalled()
}

// GatewayURLProvider extends app.GatewayURLProvider with the ability
// to assert whether it was called during a test.
type GatewayURLProvider interface {
	app.GatewayURLProvider
	ProviderStateAsserter
}

// EventsProvider extends app.EventsProvider with the ability
// to assert whether it was called during a test.
type EventsProvider interface {
	app.EventsProvider
	ProviderStateAsserter
}

// TicketsProvider extends app.TicketsProvider with the ability
// to assert whether it was called during a test.
type TicketsProvider interface {
	app.TicketsProvider
	ProviderStateAsserter
}

// BackendProvider extends app.BackendProvider with the ability
// to assert whether it was called during a test.
type BackendProvider interface {
	app.BackendProvider
	ProviderStateAsserter
}

// StorageProvider extends app.StorageProvider with the ability
// to assert whether it was called during a test.
type StorageProvider interface {
	app.StorageProvider
	ProviderStateAsserter
}

// TestTicketingStubOption is a functional option type used to configure a TestTicketingStub.
type TestTicketingStubOption func(*TestTicketingStub)

// WithGatewayURLProvider sets a custom GatewayURLProvider in a TestTicketingStub.
func WithGatewayURLProvider(provider GatewayURLProvider) TestTicketingStubOption {
	return func(stub *TestTicketingStub) {
		stub.gatewayURLProvider = provider
	}
}

// WithEventsProvider sets a custom EventsProvider in a TestTicketingStub.
func WithEventsProvider(provider EventsProvider) TestTicketingStubOption {
	return func(stub *TestTicketingStub) {
		stub.eventsProvider = provider
	}
}

// WithTicketsProvider sets a custom TicketsProvider in a TestTicketingStub.
func WithTicketsProvider(provider TicketsProvider) TestTicketingStubOption {
	return func(stub *TestTicketingStub) {
		stub.ticketsProvider = provider
	}
}

// WithBackendProvider sets a custom BackendProvider in a TestTicketingStub.
func WithBackendProvider(provider BackendProvider) TestTicketingStubOption {
	return func(stub *TestTicketingStub) {
		stub.backendProvider = provider
	}
}

// WithStorageProvider sets a custom StorageProvider in a TestTicketingStub.
func WithStorageProvider(provider StorageProvider) TestTicketingStubOption {
	return func(stub *TestTicketingStub) {
		stub.storageProvider = provider
	}
}

// TestTicketingStub is a test implementation of the ticketing client surface served over HTTP.
// Every capability delegates to a provider mock; providers that were not configured
// expect not to be called.
type TestTicketingStub struct {
	t                  *testing.T
	gatewayURLProvider GatewayURLProvider
	eventsProvider     EventsProvider
	ticketsProvider    TicketsProvider
	backendProvider    BackendProvider
	storageProvider    StorageProvider
}

// CreateGatewayURL delegates to the configured gateway URL provider.
func (s *TestTicketingStub) CreateGatewayURL(ctx context.Context, uri gateway.ContentURI) (string, error) {
	s.t.Helper()
	return s.gatewayURLProvider.CreateGatewayURL(ctx, uri)
}

// FetchEvent delegates to the configured events provider.
func (s *TestTicketingStub) FetchEvent(ctx context.Context, eventID *big.Int) (metadata.Record, error) {
	s.t.Helper()
	return s.eventsProvider.FetchEvent(ctx, eventID)
}

// FetchEvents delegates to the configured events provider.
func (s *TestTicketingStub) FetchEvents(ctx context.Context, eventIDs []*big.Int) ([]metadata.Record, error) {
	s.t.Helper()
	return s.eventsProvider.FetchEvents(ctx, eventIDs)
}

// FetchCategoriesByEventID delegates to the configured events provider.
func (s *TestTicketingStub) FetchCategoriesByEventID(ctx context.Context, eventID *big.Int) ([]metadata.Record, error) {
	s.t.Helper()
	return s.eventsProvider.FetchCategoriesByEventID(ctx, eventID)
}

// GetSingleTicketByID delegates to the configured tickets provider.
func (s *TestTicketingStub) GetSingleTicketByID(ctx context.Context, ticketID *big.Int) (metadata.Record, error) {
	s.t.Helper()
	return s.ticketsProvider.GetSingleTicketByID(ctx, ticketID)
}

// GetTicketsByIDs delegates to the configured tickets provider.
func (s *TestTicketingStub) GetTicketsByIDs(ctx context.Context, ticketIDs []*big.Int) ([]metadata.Record, error) {
	s.t.Helper()
	return s.ticketsProvider.GetTicketsByIDs(ctx, ticketIDs)
}

// GetListedTicketByID delegates to the configured tickets provider.
func (s *TestTicketingStub) GetListedTicketByID(ctx context.Context, ticketID *big.Int) (metadata.Record, error) {
	s.t.Helper()
	return s.ticketsProvider.GetListedTicketByID(ctx, ticketID)
}

// FetchCountriesFromServer delegates to the configured backend provider.
func (s *TestTicketingStub) FetchCountriesFromServer(ctx context.Context) (*backend.Response, error) {
	s.t.Helper()
	return s.backendProvider.FetchCountriesFromServer(ctx)
}

// FetchPlacesFromServer delegates to the configured backend provider.
func (s *TestTicketingStub) FetchPlacesFromServer(ctx context.Context, country string) (*backend.Response, error) {
	s.t.Helper()
	return s.backendProvider.FetchPlacesFromServer(ctx, country)
}

// FetchAllEventsFromServer delegates to the configured backend provider.
func (s *TestTicketingStub) FetchAllEventsFromServer(ctx context.Context, query backend.EventsQuery) (*backend.Response, error) {
	s.t.Helper()
	return s.backendProvider.FetchAllEventsFromServer(ctx, query)
}

// UploadDataToIPFS delegates to the configured storage provider.
func (s *TestTicketingStub) UploadDataToIPFS(ctx context.Context, apiKey string, metadata any) (gateway.ContentURI, error) {
	s.t.Helper()
	return s.storageProvider.UploadDataToIPFS(ctx, apiKey, metadata)
}

// UploadImageToIPFS delegates to the configured storage provider.
func (s *TestTicketingStub) UploadImageToIPFS(ctx context.Context, apiKey string, data []byte, contentType string) (gateway.ContentURI, error) {
	s.t.Helper()
	return s.storageProvider.UploadImageToIPFS(ctx, apiKey, data, contentType)
}

// UploadArrayToIPFS delegates to the configured storage provider.
func (s *TestTicketingStub) UploadArrayToIPFS(ctx context.Context, apiKey string, items []any) ([]gateway.ContentURI, error) {
	s.t.Helper()
	return s.storageProvider.UploadArrayToIPFS(ctx, apiKey, items)
}

// DeleteFromIPFS delegates to the configured storage provider.
func (s *TestTicketingStub) DeleteFromIPFS(ctx context.Context, apiKey, uri string) error {
	s.t.Helper()
	return s.storageProvider.DeleteFromIPFS(ctx, apiKey, uri)
}

// Network returns TestNetwork.
func (s *TestTicketingStub) Network() ticketing.Network {
	return TestNetwork
}

// AssertProvidersState asserts the call state of every configured provider.
func (s *TestTicketingStub) AssertProvidersState() {
	s.t.Helper()

	s.gatewayURLProvider.AssertCalled()
	s.eventsProvider.AssertCalled()
	s.ticketsProvider.AssertCalled()
	s.backendProvider.AssertCalled()
	s.storageProvider.AssertCalled()
}

// NewTestTicketingStub creates a TestTicketingStub whose providers expect no calls,
// then applies the options.
func NewTestTicketingStub(t *testing.T, opts ...TestTicketingStubOption) *TestTicketingStub {
	stub := TestTicketingStub{
		t:                  t,
		gatewayURLProvider: NewGatewayURLProviderMock(t, GatewayURLProviderMockExpectations{CreateGatewayURLCall: false}),
		eventsProvider:     NewEventsProviderMock(t, EventsProviderMockExpectations{}),
		ticketsProvider:    NewTicketsProviderMock(t, TicketsProviderMockExpectations{}),
		backendProvider:    NewBackendProviderMock(t, BackendProviderMockExpectations{}),
		storageProvider:    NewStorageProviderMock(t, StorageProviderMockExpectations{}),
	}

	for _, opt := range opts {
		opt(&stub)
	}
	return &stub
}
