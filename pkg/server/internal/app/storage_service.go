package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/storage"
)

// StorageProvider defines the contract for storing and removing content on the storage network.
type StorageProvider interface {
	UploadDataToIPFS(ctx context.Context, apiKey string, metadata any) (gateway.ContentURI, error)
	UploadImageToIPFS(ctx context.Context, apiKey string, data []byte, contentType string) (gateway.ContentURI, error)
	UploadArrayToIPFS(ctx context.Context, apiKey string, items []any) ([]gateway.ContentURI, error)
	DeleteFromIPFS(ctx context.Context, apiKey, uri string) error
}

// StorageService stores metadata documents and images on behalf of administrators.
// Requests without their own API key use the configured one.
type StorageService struct {
	provider      StorageProvider
	defaultAPIKey string
}

// Upload stores one metadata document and returns its content URI.
func (s *StorageService) Upload(ctx context.Context, apiKey string, doc map[string]any) (gateway.ContentURI, error) {
	key, err := s.apiKey(apiKey)
	if err != nil {
		return "", err
	}
	if len(doc) == 0 {
		return "", NewEmptyDocumentError()
	}

	uri, err := s.provider.UploadDataToIPFS(ctx, key, doc)
	if err != nil {
		return "", NewStorageUploadError(err)
	}
	return uri, nil
}

// UploadImage stores raw image bytes and returns their content URI.
func (s *StorageService) UploadImage(ctx context.Context, apiKey string, data []byte, contentType string) (gateway.ContentURI, error) {
	key, err := s.apiKey(apiKey)
	if err != nil {
		return "", err
	}
	if contentType == "" {
		return "", NewEmptyContentTypeError()
	}

	uri, err := s.provider.UploadImageToIPFS(ctx, key, data, contentType)
	if err != nil {
		return "", NewStorageUploadError(err)
	}
	return uri, nil
}

// UploadBatch stores the documents one by one. The first failure aborts the batch
// and is reported with its position.
func (s *StorageService) UploadBatch(ctx context.Context, apiKey string, docs []map[string]any) ([]gateway.ContentURI, error) {
	key, err := s.apiKey(apiKey)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, NewEmptyDocumentError()
	}

	items := make([]any, len(docs))
	for i, d := range docs {
		items[i] = d
	}

	uris, err := s.provider.UploadArrayToIPFS(ctx, key, items)
	if err != nil {
		return nil, NewStorageUploadError(err)
	}
	return uris, nil
}

// Delete removes the content addressed by uri.
func (s *StorageService) Delete(ctx context.Context, apiKey, uri string) error {
	key, err := s.apiKey(apiKey)
	if err != nil {
		return err
	}
	if uri == "" {
		return NewEmptyContentURIError()
	}

	if err := s.provider.DeleteFromIPFS(ctx, key, uri); err != nil {
		return NewStorageDeleteError(err)
	}
	return nil
}

func (s *StorageService) apiKey(requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	if s.defaultAPIKey != "" {
		return s.defaultAPIKey, nil
	}
	return "", NewMissingStorageAPIKeyError()
}

// NewStorageService creates a new StorageService with the given provider and fallback API key.
// Panics if the provider is nil.
func NewStorageService(provider StorageProvider, defaultAPIKey string) *StorageService {
	if provider == nil {
		panic("storage provider cannot be nil")
	}
	return &StorageService{provider: provider, defaultAPIKey: defaultAPIKey}
}

// NewMissingStorageAPIKeyError returns an Error indicating that neither the request
// nor the server configuration carries a storage API key.
func NewMissingStorageAPIKeyError() Error {
	return Error{
		errorType: ErrorTypeIncorrectInput,
		err:       "storage api key is not configured and was not provided",
		slug:      "A storage API key must be provided in the X-Storage-Api-Key header.",
	}
}

// NewEmptyDocumentError returns an Error indicating that there is nothing to upload.
func NewEmptyDocumentError() Error {
	const msg = "At least one non-empty metadata document must be provided."
	return NewIncorrectInputError(msg, msg)
}

// NewEmptyContentTypeError returns an Error indicating that the image content type is missing.
func NewEmptyContentTypeError() Error {
	const msg = "A contentType query parameter must be provided for image uploads."
	return NewIncorrectInputError(msg, msg)
}

// NewStorageUploadError returns an Error indicating that the storage network rejected an upload.
// For batch uploads the slug names the failing position.
func NewStorageUploadError(err error) Error {
	var uploadErr *storage.UploadError
	if errors.As(err, &uploadErr) {
		return classifyProviderError(err, fmt.Sprintf("Unable to upload the document at position %d to the storage network. Please try again later.", uploadErr.Index))
	}
	return classifyProviderError(err, "Unable to upload the document to the storage network. Please try again later.")
}

// NewStorageDeleteError returns an Error indicating that the content could not be removed.
func NewStorageDeleteError(err error) Error {
	return classifyProviderError(err, "Unable to delete the content from the storage network. Please try again later.")
}
