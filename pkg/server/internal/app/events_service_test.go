package app_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/app"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/testabilities"
	"github.com/stretchr/testify/require"
)

func TestEventsService_GetEvent(t *testing.T) {
	fetchErr := &metadata.MetadataFetchError{URL: "https://nftstorage.link/ipfs/bafyevent/metadata.json", Err: errors.New("unexpected status 404")}

	tests := map[string]struct {
		id                string
		expectations      testabilities.EventsProviderMockExpectations
		expectedError     error
		expectedErrorType app.ErrorType
	}{
		"Invalid identifier is rejected before the provider is called.": {
			id:                "abc",
			expectations:      testabilities.EventsProviderMockExpectations{},
			expectedError:     app.NewInvalidIDError("abc"),
			expectedErrorType: app.ErrorTypeIncorrectInput,
		},
		"Metadata failure is an upstream failure.": {
			id:                "7",
			expectations:      testabilities.EventsProviderMockExpectations{FetchEventCall: true, Error: fetchErr},
			expectedError:     app.NewEventFetchError(fetchErr),
			expectedErrorType: app.ErrorTypeUpstreamFailure,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			mock := testabilities.NewEventsProviderMock(t, tc.expectations)
			service := app.NewEventsService(mock)

			// when:
			view, err := service.GetEvent(t.Context(), tc.id)

			// then:
			require.Equal(t, tc.expectedError, err)
			var actualErr app.Error
			require.ErrorAs(t, err, &actualErr)
			require.Equal(t, tc.expectedErrorType, actualErr.ErrorType())
			require.Nil(t, view)
			mock.AssertCalled()
		})
	}
}

func TestEventsService_GetEvent_ValidCase(t *testing.T) {
	// given:
	expected := metadata.Record{"eventId": big.NewInt(7), "name": "Concert", "status": "postponed"}
	mock := testabilities.NewEventsProviderMock(t, testabilities.EventsProviderMockExpectations{
		FetchEventCall: true,
		Event:          expected,
	})
	service := app.NewEventsService(mock)

	// when:
	view, err := service.GetEvent(t.Context(), "7")

	// then:
	require.NoError(t, err)
	require.Equal(t, expected, view)
	require.Equal(t, "7", mock.IDs()[0].String())
	mock.AssertCalled()
}

func TestEventsService_GetEvents_NamesAbortedItem(t *testing.T) {
	// given:
	abort := &metadata.BatchAbortError{Index: 1, ID: "2", Err: &metadata.MetadataFetchError{URL: "https://ipfs.io/ipfs/bafy2", Err: errors.New("timeout")}}
	mock := testabilities.NewEventsProviderMock(t, testabilities.EventsProviderMockExpectations{
		FetchEventsCall: true,
		Error:           abort,
	})
	service := app.NewEventsService(mock)

	// when:
	views, err := service.GetEvents(t.Context(), []string{"1", "2", "3"})

	// then:
	var actualErr app.Error
	require.ErrorAs(t, err, &actualErr)
	require.Equal(t, app.ErrorTypeUpstreamFailure, actualErr.ErrorType())
	require.Contains(t, actualErr.Slug(), "event 2 at position 1")
	require.Nil(t, views)
	mock.AssertCalled()
}

func TestEventsService_GetCategories(t *testing.T) {
	// given:
	categories := []metadata.Record{{"name": "VIP"}, {"name": "Standard", "ticketsCount": big.NewInt(10)}}
	mock := testabilities.NewEventsProviderMock(t, testabilities.EventsProviderMockExpectations{
		FetchCategoriesCall: true,
		Categories:          categories,
	})
	service := app.NewEventsService(mock)

	// when:
	views, err := service.GetCategories(t.Context(), "4")

	// then:
	require.NoError(t, err)
	require.Equal(t, categories, views)
	mock.AssertCalled()
}
