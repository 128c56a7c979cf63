package testabilities

import (
	"errors"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/app"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/ports/dto"
)

// NewTestErrorResponse creates a dto.Error response from the given app.Error,
// primarily for use in tests. It sets the error message to the error's slug.
func NewTestErrorResponse(t *testing.T, err app.Error) dto.Error {
	t.Helper()
	return dto.Error{
		Message: err.Slug(),
	}
}

// ErrTestUnreachableGateway is the transport error carried by gateway failures in tests.
var ErrTestUnreachableGateway = errors.New("dial tcp: connection refused")
