package testabilities

import (
	"context"
	"math/big"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
	"github.com/stretchr/testify/require"
)

// EventsProviderMockExpectations defines the expected behavior and outcomes for an EventsProviderMock.
type EventsProviderMockExpectations struct {
	FetchEventCall      bool
	FetchEventsCall     bool
	FetchCategoriesCall bool
	Event               metadata.Record
	Events              []metadata.Record
	Categories          []metadata.Record
	Error               error
}

// EventsProviderMock is a simple mock implementation of app.EventsProvider.
// It records the identifiers it was asked for.
type EventsProviderMock struct {
	t                   *testing.T
	expectations        EventsProviderMockExpectations
	fetchEventCalled    bool
	fetchEventsCalled   bool
	fetchCategoriesCall bool
	ids                 []*big.Int
}

// FetchEvent returns the configured event view.
func (m *EventsProviderMock) FetchEvent(ctx context.Context, eventID *big.Int) (metadata.Record, error) {
	m.t.Helper()
	m.fetchEventCalled = true
	m.ids = []*big.Int{eventID}

	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	return m.expectations.Event, nil
}

// FetchEvents returns the configured event views.
func (m *EventsProviderMock) FetchEvents(ctx context.Context, eventIDs []*big.Int) ([]metadata.Record, error) {
	m.t.Helper()
	m.fetchEventsCalled = true
	m.ids = eventIDs

	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	return m.expectations.Events, nil
}

// FetchCategoriesByEventID returns the configured category views.
func (m *EventsProviderMock) FetchCategoriesByEventID(ctx context.Context, eventID *big.Int) ([]metadata.Record, error) {
	m.t.Helper()
	m.fetchCategoriesCall = true
	m.ids = []*big.Int{eventID}

	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	return m.expectations.Categories, nil
}

// IDs returns the identifiers passed to the last call.
func (m *EventsProviderMock) IDs() []*big.Int {
	return m.ids
}

// AssertCalled checks if the provider methods were called as expected.
func (m *EventsProviderMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.FetchEventCall, m.fetchEventCalled, "Discrepancy between expected and actual FetchEventCall")
	require.Equal(m.t, m.expectations.FetchEventsCall, m.fetchEventsCalled, "Discrepancy between expected and actual FetchEventsCall")
	require.Equal(m.t, m.expectations.FetchCategoriesCall, m.fetchCategoriesCall, "Discrepancy between expected and actual FetchCategoriesCall")
}

// NewEventsProviderMock creates a new EventsProviderMock with the given expectations.
func NewEventsProviderMock(t *testing.T, expectations EventsProviderMockExpectations) *EventsProviderMock {
	return &EventsProviderMock{
		t:            t,
		expectations: expectations,
	}
}
