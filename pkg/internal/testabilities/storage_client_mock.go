package testabilities

import (
	"context"
	"fmt"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/stretchr/testify/require"
)

// StorageClientMockExpectations defines the expected behavior of the StorageClientMock.
// StoreErrors maps the zero-based call number of Store to the error it returns.
type StorageClientMockExpectations struct {
	StoreErrors     map[int]error
	DeleteError     error
	StoreCalls      int
	ExpectedDeletes []string
}

// StorageClientMock is an in-memory storage client. Successful stores return
// ipfs://cid-<n>/metadata.json where n is the call number.
type StorageClientMock struct {
	t            *testing.T
	expectations StorageClientMockExpectations
	stored       []any
	deleted      []string
	apiKeys      []string
}

// Store records the metadata and returns the configured outcome.
func (m *StorageClientMock) Store(ctx context.Context, apiKey string, metadata any) (gateway.ContentURI, error) {
	m.t.Helper()
	n := len(m.stored)
	m.stored = append(m.stored, metadata)
	m.apiKeys = append(m.apiKeys, apiKey)
	if err := m.expectations.StoreErrors[n]; err != nil {
		return "", err
	}
	return gateway.ContentURI(fmt.Sprintf("ipfs://cid-%d/metadata.json", n)), nil
}

// StoreBlob records the payload as a stored item.
func (m *StorageClientMock) StoreBlob(ctx context.Context, apiKey string, data []byte, contentType string) (gateway.ContentURI, error) {
	m.t.Helper()
	n := len(m.stored)
	m.stored = append(m.stored, data)
	m.apiKeys = append(m.apiKeys, apiKey)
	if err := m.expectations.StoreErrors[n]; err != nil {
		return "", err
	}
	return gateway.ContentURI(fmt.Sprintf("ipfs://cid-%d", n)), nil
}

// Delete records the content identifier.
func (m *StorageClientMock) Delete(ctx context.Context, apiKey, cid string) error {
	m.t.Helper()
	m.deleted = append(m.deleted, cid)
	m.apiKeys = append(m.apiKeys, apiKey)
	return m.expectations.DeleteError
}

// Stored returns the stored items in call order.
func (m *StorageClientMock) Stored() []any {
	return m.stored
}

// APIKeys returns the API keys used by every call, in call order.
func (m *StorageClientMock) APIKeys() []string {
	return m.apiKeys
}

// AssertCalled verifies the number of stores and the deleted identifiers.
func (m *StorageClientMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.StoreCalls, len(m.stored), "Discrepancy between expected and actual Store calls")
	require.Equal(m.t, m.expectations.ExpectedDeletes, m.deleted, "Discrepancy between expected and actual Delete calls")
}

// NewStorageClientMock creates a new StorageClientMock with the given expectations.
func NewStorageClientMock(t *testing.T, expectations StorageClientMockExpectations) *StorageClientMock {
	return &StorageClientMock{t: t, expectations: expectations}
}
