package storage_test

import (
	"errors"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/storage"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/internal/testabilities"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "api-key"

func TestUploader_UploadBatch_ValidCases(t *testing.T) {
	// given:
	mock := testabilities.NewStorageClientMock(t, testabilities.StorageClientMockExpectations{StoreCalls: 3})
	uploader := storage.NewUploader(mock)
	items := []any{map[string]any{"name": "m1"}, map[string]any{"name": "m2"}, map[string]any{"name": "m3"}}

	// when:
	uris, err := uploader.UploadBatch(t.Context(), testAPIKey, items)

	// then:
	require.NoError(t, err)
	require.Equal(t, []gateway.ContentURI{
		"ipfs://cid-0/metadata.json",
		"ipfs://cid-1/metadata.json",
		"ipfs://cid-2/metadata.json",
	}, uris)
	require.Equal(t, items, mock.Stored())
	require.Equal(t, []string{testAPIKey, testAPIKey, testAPIKey}, mock.APIKeys())
	mock.AssertCalled()
}

func TestUploader_UploadBatch_StopsAtFirstFailure(t *testing.T) {
	// given:
	errRejected := errors.New("storage rejected the put")
	mock := testabilities.NewStorageClientMock(t, testabilities.StorageClientMockExpectations{
		StoreErrors: map[int]error{1: errRejected},
		StoreCalls:  2,
	})
	uploader := storage.NewUploader(mock)

	// when:
	uris, err := uploader.UploadBatch(t.Context(), testAPIKey, []any{"m1", "m2", "m3"})

	// then:
	require.Nil(t, uris)
	require.ErrorIs(t, err, storage.ErrUpload)
	require.ErrorIs(t, err, errRejected)

	var uploadErr *storage.UploadError
	require.ErrorAs(t, err, &uploadErr)
	require.Equal(t, 1, uploadErr.Index)

	// m1 stays stored, m3 is never attempted.
	require.Equal(t, []any{"m1", "m2"}, mock.Stored())
	mock.AssertCalled()
}

func TestUploader_Upload(t *testing.T) {
	tests := map[string]struct {
		expectations testabilities.StorageClientMockExpectations
		expectedURI  gateway.ContentURI
		expectedErr  error
	}{
		"Stored metadata returns its content URI.": {
			expectations: testabilities.StorageClientMockExpectations{StoreCalls: 1},
			expectedURI:  "ipfs://cid-0/metadata.json",
		},
		"Storage failure is returned as an upload error.": {
			expectations: testabilities.StorageClientMockExpectations{
				StoreErrors: map[int]error{0: errors.New("unauthorized")},
				StoreCalls:  1,
			},
			expectedErr: storage.ErrUpload,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			mock := testabilities.NewStorageClientMock(t, tc.expectations)
			uploader := storage.NewUploader(mock)

			// when:
			uri, err := uploader.Upload(t.Context(), testAPIKey, map[string]any{"name": "event"})

			// then:
			require.ErrorIs(t, err, tc.expectedErr)
			require.Equal(t, tc.expectedURI, uri)
			mock.AssertCalled()
		})
	}
}

func TestUploader_UploadBlob(t *testing.T) {
	// given:
	mock := testabilities.NewStorageClientMock(t, testabilities.StorageClientMockExpectations{StoreCalls: 1})
	uploader := storage.NewUploader(mock)

	// when:
	uri, err := uploader.UploadBlob(t.Context(), testAPIKey, []byte{0x89, 0x50}, "image/png")

	// then:
	require.NoError(t, err)
	require.Equal(t, gateway.ContentURI("ipfs://cid-0"), uri)
	mock.AssertCalled()
}

func TestUploader_Delete(t *testing.T) {
	tests := map[string]struct {
		uri          string
		expectations testabilities.StorageClientMockExpectations
		expectedErr  error
	}{
		"Content identifier is taken from the third path segment.": {
			uri:          "ipfs://bafyevent/metadata.json",
			expectations: testabilities.StorageClientMockExpectations{ExpectedDeletes: []string{"bafyevent"}},
		},
		"URI without a path after the identifier is accepted.": {
			uri:          "ipfs://bafyevent",
			expectations: testabilities.StorageClientMockExpectations{ExpectedDeletes: []string{"bafyevent"}},
		},
		"URI without separators fails fast.": {
			uri:         "bafyevent",
			expectedErr: storage.ErrInvalidURIShape,
		},
		"URI with an empty identifier segment fails fast.": {
			uri:         "ipfs:///metadata.json",
			expectedErr: storage.ErrInvalidURIShape,
		},
		"Storage failure is returned to the caller.": {
			uri: "ipfs://bafyevent/metadata.json",
			expectations: testabilities.StorageClientMockExpectations{
				DeleteError:     errDeleteRejected,
				ExpectedDeletes: []string{"bafyevent"},
			},
			expectedErr: errDeleteRejected,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			mock := testabilities.NewStorageClientMock(t, tc.expectations)
			uploader := storage.NewUploader(mock)

			// when:
			err := uploader.Delete(t.Context(), testAPIKey, tc.uri)

			// then:
			require.ErrorIs(t, err, tc.expectedErr)
			mock.AssertCalled()
		})
	}
}

var errDeleteRejected = errors.New("not owner")
