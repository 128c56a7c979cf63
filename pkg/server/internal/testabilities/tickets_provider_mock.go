package testabilities

import (
	"context"
	"math/big"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
	"github.com/stretchr/testify/require"
)

// TicketsProviderMockExpectations defines the expected behavior and outcomes for a TicketsProviderMock.
type TicketsProviderMockExpectations struct {
	GetTicketCall       bool
	GetTicketsCall      bool
	GetListedTicketCall bool
	Ticket              metadata.Record
	Tickets             []metadata.Record
	Error               error
}

// TicketsProviderMock is a simple mock implementation of app.TicketsProvider.
type TicketsProviderMock struct {
	t                     *testing.T
	expectations          TicketsProviderMockExpectations
	getTicketCalled       bool
	getTicketsCalled      bool
	getListedTicketCalled bool
	ids                   []*big.Int
}

// GetSingleTicketByID returns the configured ticket view.
func (m *TicketsProviderMock) GetSingleTicketByID(ctx context.Context, ticketID *big.Int) (metadata.Record, error) {
	m.t.Helper()
	m.getTicketCalled = true
	m.ids = []*big.Int{ticketID}

	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	return m.expectations.Ticket, nil
}

// GetTicketsByIDs returns the configured ticket views.
func (m *TicketsProviderMock) GetTicketsByIDs(ctx context.Context, ticketIDs []*big.Int) ([]metadata.Record, error) {
	m.t.Helper()
	m.getTicketsCalled = true
	m.ids = ticketIDs

	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	return m.expectations.Tickets, nil
}

// GetListedTicketByID returns the configured ticket view as a listing.
func (m *TicketsProviderMock) GetListedTicketByID(ctx context.Context, ticketID *big.Int) (metadata.Record, error) {
	m.t.Helper()
	m.getListedTicketCalled = true
	m.ids = []*big.Int{ticketID}

	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	return m.expectations.Ticket, nil
}

// IDs returns the identifiers passed to the last call.
func (m *TicketsProviderMock) IDs() []*big.Int {
	return m.ids
}

// AssertCalled checks if the provider methods were called as expected.
func (m *TicketsProviderMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.GetTicketCall, m.getTicketCalled, "Discrepancy between expected and actual GetTicketCall")
	require.Equal(m.t, m.expectations.GetTicketsCall, m.getTicketsCalled, "Discrepancy between expected and actual GetTicketsCall")
	require.Equal(m.t, m.expectations.GetListedTicketCall, m.getListedTicketCalled, "Discrepancy between expected and actual GetListedTicketCall")
}

// NewTicketsProviderMock creates a new TicketsProviderMock with the given expectations.
func NewTicketsProviderMock(t *testing.T, expectations TicketsProviderMockExpectations) *TicketsProviderMock {
	return &TicketsProviderMock{
		t:            t,
		expectations: expectations,
	}
}
