package testabilities

import (
	"context"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/stretchr/testify/require"
)

// GatewayURLProviderMockExpectations defines the expected behavior and outcomes for a GatewayURLProviderMock.
type GatewayURLProviderMockExpectations struct {
	CreateGatewayURLCall bool
	URL                  string
	Error                error
}

// DefaultGatewayURLProviderMockExpectations resolves every URI to a fixed gateway URL.
var DefaultGatewayURLProviderMockExpectations = GatewayURLProviderMockExpectations{
	CreateGatewayURLCall: true,
	URL:                  "https://nftstorage.link/ipfs/bafyevent/metadata.json",
}

// GatewayURLProviderMock is a simple mock implementation of app.GatewayURLProvider.
type GatewayURLProviderMock struct {
	t            *testing.T
	expectations GatewayURLProviderMockExpectations
	called       bool
	uri          gateway.ContentURI
}

// CreateGatewayURL records the URI and returns the configured URL or error.
func (m *GatewayURLProviderMock) CreateGatewayURL(ctx context.Context, uri gateway.ContentURI) (string, error) {
	m.t.Helper()
	m.called = true
	m.uri = uri

	if m.expectations.Error != nil {
		return "", m.expectations.Error
	}
	return m.expectations.URL, nil
}

// URI returns the last URI the mock was asked to resolve.
func (m *GatewayURLProviderMock) URI() gateway.ContentURI {
	return m.uri
}

// AssertCalled checks if the CreateGatewayURL method was called as expected.
func (m *GatewayURLProviderMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.CreateGatewayURLCall, m.called, "Discrepancy between expected and actual CreateGatewayURLCall")
}

// NewGatewayURLProviderMock creates a new GatewayURLProviderMock with the given expectations.
func NewGatewayURLProviderMock(t *testing.T, expectations GatewayURLProviderMockExpectations) *GatewayURLProviderMock {
	return &GatewayURLProviderMock{
		t:            t,
		expectations: expectations,
	}
}
