package metadata_test

import (
	"context"
	"errors"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/internal/testabilities"
	"github.com/stretchr/testify/require"
)

// newTestService serves three documents: a, b and c. Document b is reachable
// through the gateway but its fetch fails; uri "ipfs://down" has no reachable gateway.
func newTestService(t *testing.T) (*metadata.Service, *testabilities.FetcherStub) {
	resolver := testabilities.NewResolverStub(t, testGateways, map[gateway.ContentURI]string{
		"ipfs://a": "https://g1/ipfs/a",
		"ipfs://b": "https://g1/ipfs/b",
		"ipfs://c": "https://g1/ipfs/c",
	})
	fetcher := testabilities.NewFetcherStub(t, map[string]metadata.Record{
		"https://g1/ipfs/a": {"name": "A", "id": "offchain"},
		"https://g1/ipfs/c": {"name": "C", "id": "offchain"},
	})
	return metadata.NewService(resolver, fetcher), fetcher
}

func TestService_Enrich(t *testing.T) {
	tests := map[string]struct {
		uri         gateway.ContentURI
		expected    metadata.Record
		expectedErr error
	}{
		"Reachable document is merged under the on-chain record.": {
			uri:      "ipfs://a",
			expected: metadata.Record{"id": "1", "name": "A", "status": "normal"},
		},
		"Fetch failure is returned to the caller.": {
			uri:         "ipfs://b",
			expectedErr: metadata.ErrMetadataFetch,
		},
		"Gateway failure is returned to the caller.": {
			uri:         "ipfs://down",
			expectedErr: gateway.ErrGatewayUnavailable,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			service, _ := newTestService(t)

			// when:
			rec, err := service.Enrich(t.Context(), tc.uri, metadata.Record{"id": "1", "status": uint8(0)})

			// then:
			require.ErrorIs(t, err, tc.expectedErr)
			require.Equal(t, tc.expected, rec)
		})
	}
}

func TestService_EnrichOrRaw(t *testing.T) {
	tests := map[string]struct {
		uri      gateway.ContentURI
		expected metadata.Record
	}{
		"Reachable document is merged.": {
			uri:      "ipfs://c",
			expected: metadata.Record{"id": "1", "name": "C", "status": uint8(9)},
		},
		"Fetch failure returns the raw record unchanged.": {
			uri:      "ipfs://b",
			expected: metadata.Record{"id": "1", "status": uint8(9)},
		},
		"Gateway failure returns the raw record unchanged.": {
			uri:      "ipfs://down",
			expected: metadata.Record{"id": "1", "status": uint8(9)},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			service, _ := newTestService(t)

			// when:
			rec := service.EnrichOrRaw(t.Context(), tc.uri, metadata.Record{"id": "1", "status": uint8(9)})

			// then:
			require.Equal(t, tc.expected, rec)
		})
	}
}

func TestService_ResolveOrDefault(t *testing.T) {
	// given:
	service, _ := newTestService(t)
	fallback := metadata.Record{"fallback": true}

	// when:
	found := service.ResolveOrDefault(t.Context(), "ipfs://a", fallback)
	missing := service.ResolveOrDefault(t.Context(), "ipfs://down", fallback)

	// then:
	require.Equal(t, metadata.Record{"name": "A", "id": "offchain"}, found)
	require.Equal(t, fallback, missing)
}

func TestResolveAll_PreservesOrder(t *testing.T) {
	// given:
	service, fetcher := newTestService(t)
	uris := map[string]gateway.ContentURI{"3": "ipfs://c", "1": "ipfs://a"}
	ids := []string{"3", "1", "3"}

	// when:
	records, err := metadata.ResolveAll(t.Context(), ids, func(ctx context.Context, id string) (metadata.Record, error) {
		return service.Enrich(ctx, uris[id], metadata.Record{"id": id})
	})

	// then:
	require.NoError(t, err)
	require.Equal(t, []metadata.Record{
		{"id": "3", "name": "C"},
		{"id": "1", "name": "A"},
		{"id": "3", "name": "C"},
	}, records)
	require.Equal(t, []string{"https://g1/ipfs/c", "https://g1/ipfs/a", "https://g1/ipfs/c"}, fetcher.Fetched())
}

func TestResolveAll_GracefulItemDegradesToRaw(t *testing.T) {
	// given:
	service, _ := newTestService(t)
	uris := map[string]gateway.ContentURI{"1": "ipfs://a", "2": "ipfs://b", "3": "ipfs://c"}

	// when:
	records, err := metadata.ResolveAll(t.Context(), []string{"1", "2", "3"}, func(ctx context.Context, id string) (metadata.Record, error) {
		return service.EnrichOrRaw(ctx, uris[id], metadata.Record{"id": id, "status": uint8(1)}), nil
	})

	// then:
	require.NoError(t, err)
	require.Equal(t, []metadata.Record{
		{"id": "1", "name": "A", "status": "postponed"},
		{"id": "2", "status": uint8(1)},
		{"id": "3", "name": "C", "status": "postponed"},
	}, records)
}

func TestResolveAll_FailFastAbortsBatch(t *testing.T) {
	// given:
	service, fetcher := newTestService(t)
	uris := map[string]gateway.ContentURI{"1": "ipfs://a", "2": "ipfs://b", "3": "ipfs://c"}

	// when:
	records, err := metadata.ResolveAll(t.Context(), []string{"1", "2", "3"}, func(ctx context.Context, id string) (metadata.Record, error) {
		return service.Enrich(ctx, uris[id], metadata.Record{"id": id})
	})

	// then:
	require.Nil(t, records)
	require.ErrorIs(t, err, metadata.ErrBatchAbort)
	require.ErrorIs(t, err, metadata.ErrMetadataFetch)

	var abort *metadata.BatchAbortError
	require.ErrorAs(t, err, &abort)
	require.Equal(t, 1, abort.Index)
	require.Equal(t, "2", abort.ID)
	require.Equal(t, []string{"https://g1/ipfs/a", "https://g1/ipfs/b"}, fetcher.Fetched())
}

func TestResolveAll_EmptyInput(t *testing.T) {
	// when:
	records, err := metadata.ResolveAll(t.Context(), []int{}, func(ctx context.Context, id int) (metadata.Record, error) {
		return nil, errors.New("must not be called")
	})

	// then:
	require.NoError(t, err)
	require.Empty(t, records)
}
