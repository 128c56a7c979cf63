package testabilities

import (
	"context"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/backend"
	"github.com/stretchr/testify/require"
)

// BackendProviderMockExpectations defines the expected behavior and outcomes for a BackendProviderMock.
type BackendProviderMockExpectations struct {
	CountriesCall    bool
	PlacesCall       bool
	SearchEventsCall bool
	Response         *backend.Response
	Error            error
}

// BackendProviderMock is a simple mock implementation of app.BackendProvider.
type BackendProviderMock struct {
	t                  *testing.T
	expectations       BackendProviderMockExpectations
	countriesCalled    bool
	placesCalled       bool
	searchEventsCalled bool
	country            string
	query              backend.EventsQuery
}

// FetchCountriesFromServer returns the configured response.
func (m *BackendProviderMock) FetchCountriesFromServer(ctx context.Context) (*backend.Response, error) {
	m.t.Helper()
	m.countriesCalled = true
	return m.respond()
}

// FetchPlacesFromServer records the country and returns the configured response.
func (m *BackendProviderMock) FetchPlacesFromServer(ctx context.Context, country string) (*backend.Response, error) {
	m.t.Helper()
	m.placesCalled = true
	m.country = country
	return m.respond()
}

// FetchAllEventsFromServer records the query and returns the configured response.
func (m *BackendProviderMock) FetchAllEventsFromServer(ctx context.Context, query backend.EventsQuery) (*backend.Response, error) {
	m.t.Helper()
	m.searchEventsCalled = true
	m.query = query
	return m.respond()
}

func (m *BackendProviderMock) respond() (*backend.Response, error) {
	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	return m.expectations.Response, nil
}

// Country returns the country of the last places query.
func (m *BackendProviderMock) Country() string {
	return m.country
}

// Query returns the last events search query.
func (m *BackendProviderMock) Query() backend.EventsQuery {
	return m.query
}

// AssertCalled checks if the provider methods were called as expected.
func (m *BackendProviderMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.CountriesCall, m.countriesCalled, "Discrepancy between expected and actual CountriesCall")
	require.Equal(m.t, m.expectations.PlacesCall, m.placesCalled, "Discrepancy between expected and actual PlacesCall")
	require.Equal(m.t, m.expectations.SearchEventsCall, m.searchEventsCalled, "Discrepancy between expected and actual SearchEventsCall")
}

// NewBackendProviderMock creates a new BackendProviderMock with the given expectations.
func NewBackendProviderMock(t *testing.T, expectations BackendProviderMockExpectations) *BackendProviderMock {
	return &BackendProviderMock{
		t:            t,
		expectations: expectations,
	}
}
