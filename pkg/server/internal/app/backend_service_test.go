package app_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/backend"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/app"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/testabilities"
	"github.com/stretchr/testify/require"
)

func TestBackendService_Places(t *testing.T) {
	response := &backend.Response{StatusCode: 200, Body: json.RawMessage(`[{"name":"Arena"}]`)}
	dialErr := errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")

	tests := map[string]struct {
		country           string
		expectations      testabilities.BackendProviderMockExpectations
		expectedResponse  *backend.Response
		expectedError     error
		expectedErrorType app.ErrorType
	}{
		"Empty country is rejected before the backend is queried.": {
			country:           "",
			expectedError:     app.NewEmptyCountryError(),
			expectedErrorType: app.ErrorTypeIncorrectInput,
		},
		"Unreachable backend is a provider failure.": {
			country:           "Poland",
			expectations:      testabilities.BackendProviderMockExpectations{PlacesCall: true, Error: dialErr},
			expectedError:     app.NewBackendQueryError(dialErr),
			expectedErrorType: app.ErrorTypeProviderFailure,
		},
		"Backend answer is returned unmodified.": {
			country:          "Poland",
			expectations:     testabilities.BackendProviderMockExpectations{PlacesCall: true, Response: response},
			expectedResponse: response,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			mock := testabilities.NewBackendProviderMock(t, tc.expectations)
			service := app.NewBackendService(mock)

			// when:
			res, err := service.Places(t.Context(), tc.country)

			// then:
			require.Equal(t, tc.expectedResponse, res)
			require.Equal(t, tc.expectedError, err)
			if tc.expectedError != nil {
				var actualErr app.Error
				require.ErrorAs(t, err, &actualErr)
				require.Equal(t, tc.expectedErrorType, actualErr.ErrorType())
			}
			mock.AssertCalled()
		})
	}
}

func TestBackendService_SearchEvents(t *testing.T) {
	// given:
	query := backend.EventsQuery{"country": "Poland", "page": float64(2)}
	response := &backend.Response{StatusCode: 404, Body: json.RawMessage(`{"message":"no events"}`)}
	mock := testabilities.NewBackendProviderMock(t, testabilities.BackendProviderMockExpectations{
		SearchEventsCall: true,
		Response:         response,
	})
	service := app.NewBackendService(mock)

	// when:
	res, err := service.SearchEvents(t.Context(), query)

	// then:
	require.NoError(t, err)
	require.Equal(t, response, res)
	require.Equal(t, query, mock.Query())
	mock.AssertCalled()
}

func TestBackendService_Countries(t *testing.T) {
	// given:
	response := &backend.Response{StatusCode: 200, Body: json.RawMessage(`["Poland","Germany"]`)}
	mock := testabilities.NewBackendProviderMock(t, testabilities.BackendProviderMockExpectations{
		CountriesCall: true,
		Response:      response,
	})
	service := app.NewBackendService(mock)

	// when:
	res, err := service.Countries(t.Context())

	// then:
	require.NoError(t, err)
	require.Equal(t, response, res)
	mock.AssertCalled()
}
