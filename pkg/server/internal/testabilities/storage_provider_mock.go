package testabilities

import (
	"context"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/stretchr/testify/require"
)

// StorageProviderMockExpectations defines the expected behavior and outcomes for a StorageProviderMock.
type StorageProviderMockExpectations struct {
	UploadCall      bool
	UploadImageCall bool
	UploadBatchCall bool
	DeleteCall      bool
	URI             gateway.ContentURI
	URIs            []gateway.ContentURI
	Error           error
}

// StorageProviderMock is a simple mock implementation of app.StorageProvider.
// It records the API key and the payload of the last call.
type StorageProviderMock struct {
	t                 *testing.T
	expectations      StorageProviderMockExpectations
	uploadCalled      bool
	uploadImageCalled bool
	uploadBatchCalled bool
	deleteCalled      bool
	apiKey            string
	payload           any
	contentType       string
}

// UploadDataToIPFS records the document and returns the configured URI.
func (m *StorageProviderMock) UploadDataToIPFS(ctx context.Context, apiKey string, metadata any) (gateway.ContentURI, error) {
	m.t.Helper()
	m.uploadCalled = true
	m.apiKey, m.payload = apiKey, metadata

	if m.expectations.Error != nil {
		return "", m.expectations.Error
	}
	return m.expectations.URI, nil
}

// UploadImageToIPFS records the image and returns the configured URI.
func (m *StorageProviderMock) UploadImageToIPFS(ctx context.Context, apiKey string, data []byte, contentType string) (gateway.ContentURI, error) {
	m.t.Helper()
	m.uploadImageCalled = true
	m.apiKey, m.payload, m.contentType = apiKey, data, contentType

	if m.expectations.Error != nil {
		return "", m.expectations.Error
	}
	return m.expectations.URI, nil
}

// UploadArrayToIPFS records the documents and returns the configured URIs.
func (m *StorageProviderMock) UploadArrayToIPFS(ctx context.Context, apiKey string, items []any) ([]gateway.ContentURI, error) {
	m.t.Helper()
	m.uploadBatchCalled = true
	m.apiKey, m.payload = apiKey, items

	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	return m.expectations.URIs, nil
}

// DeleteFromIPFS records the URI and returns the configured error.
func (m *StorageProviderMock) DeleteFromIPFS(ctx context.Context, apiKey, uri string) error {
	m.t.Helper()
	m.deleteCalled = true
	m.apiKey, m.payload = apiKey, uri
	return m.expectations.Error
}

// APIKey returns the API key of the last call.
func (m *StorageProviderMock) APIKey() string {
	return m.apiKey
}

// Payload returns the document, image bytes, items or URI of the last call.
func (m *StorageProviderMock) Payload() any {
	return m.payload
}

// ContentType returns the content type of the last image upload.
func (m *StorageProviderMock) ContentType() string {
	return m.contentType
}

// AssertCalled checks if the provider methods were called as expected.
func (m *StorageProviderMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.UploadCall, m.uploadCalled, "Discrepancy between expected and actual UploadCall")
	require.Equal(m.t, m.expectations.UploadImageCall, m.uploadImageCalled, "Discrepancy between expected and actual UploadImageCall")
	require.Equal(m.t, m.expectations.UploadBatchCall, m.uploadBatchCalled, "Discrepancy between expected and actual UploadBatchCall")
	require.Equal(m.t, m.expectations.DeleteCall, m.deleteCalled, "Discrepancy between expected and actual DeleteCall")
}

// NewStorageProviderMock creates a new StorageProviderMock with the given expectations.
func NewStorageProviderMock(t *testing.T, expectations StorageProviderMockExpectations) *StorageProviderMock {
	return &StorageProviderMock{
		t:            t,
		expectations: expectations,
	}
}
