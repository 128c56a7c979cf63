package app

import (
	"context"
	"errors"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/httputil"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/storage"
)

// ErrorType represents a generic category of error used as descriptor
// to clarify the nature of a failure that occurred in dependencies.
type ErrorType struct {
	s string
}

func (e ErrorType) String() string { return e.s }

var (
	ErrorTypeProviderFailure   = ErrorType{"provider-failure"}
	ErrorTypeUpstreamFailure   = ErrorType{"upstream-failure"}
	ErrorTypeAuthorization     = ErrorType{"authorization"}
	ErrorTypeAccessForbidden   = ErrorType{"access-forbidden"}
	ErrorTypeIncorrectInput    = ErrorType{"incorrect-input"}
	ErrorTypeUnknown           = ErrorType{"unknown"}
	ErrorTypeOperationTimeout  = ErrorType{"operation-timeout"}
	ErrorTypeRawDataProcessing = ErrorType{"raw-data-processing"}
)

// Error defines a generic application-layer error that should be translated
// into a specific response format for the requester.
//
// The error includes a err source message, a type indicating the category
// of the failure, and a slug string representing the error message content
// to be returned to the requester. The error type is used during translation
// process in the error-handling implementation.
//
// The source error message may contain internal details, so it is not recommended
// to include it in the final response. The slug is the part meant for the requester.
type Error struct {
	err       string
	slug      string
	errorType ErrorType
}

func (e Error) Slug() string         { return e.slug }
func (e Error) IsZero() bool         { return e == Error{} }
func (e Error) Error() string        { return e.err }
func (e Error) ErrorType() ErrorType { return e.errorType }

// NewIncorrectInputError returns an error that handles invalid input data,
// typically caused by partial state, inappropriate data formats, or other
// issues related to incorrect input.
func NewIncorrectInputError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeIncorrectInput,
	}
}

// NewProviderFailureError returns an error that handles service dependency failures,
// internal processing issues or other issues that should not be exposed to the requester.
func NewProviderFailureError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeProviderFailure,
	}
}

// NewUpstreamFailureError returns an error raised when a remote system the request
// depends on (a gateway, the storage network, the backend) was unreachable or answered
// with a failure.
func NewUpstreamFailureError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeUpstreamFailure,
	}
}

// NewAuthorizationError returns an error that handles authorization failures,
// such as missing or invalid credentials when attempting to access a restricted resource.
func NewAuthorizationError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeAuthorization,
	}
}

// NewAccessForbiddenError returns an error that handles access control failures,
// such as valid credentials without the necessary permissions to access a resource.
func NewAccessForbiddenError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeAccessForbidden,
	}
}

// NewRawDataProcessingError returns an error that handles issues encountered
// during raw data processing, such as a corrupt request body.
func NewRawDataProcessingError(err, slug string) Error {
	return Error{
		slug:      slug,
		errorType: ErrorTypeRawDataProcessing,
		err:       err,
	}
}

// NewUnknownError returns an error that represents an unexpected or unclassified
// issue that doesn't fall into predefined error categories.
func NewUnknownError(err, slug string) Error {
	return Error{
		slug:      slug,
		errorType: ErrorTypeUnknown,
		err:       err,
	}
}

// NewContextCancellationError returns an error indicating that the submitted request exceeded the context timeout limit or
// that a context cancellation signal was emitted.
func NewContextCancellationError() Error {
	const msg = "The submitted request context has been canceled or exceeds the timeout limit."
	return Error{
		errorType: ErrorTypeOperationTimeout,
		err:       msg,
		slug:      msg,
	}
}

// classifyProviderError translates an error returned by the ticketing client into an Error.
// Failures of remote systems become upstream failures carrying the given slug,
// anything else is reported as a provider failure.
func classifyProviderError(err error, slug string) Error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return NewContextCancellationError()
	case errors.Is(err, storage.ErrInvalidURIShape):
		return NewIncorrectInputError(err.Error(), "The given URI does not carry a content identifier.")
	case isUpstreamFailure(err):
		return NewUpstreamFailureError(err.Error(), slug)
	default:
		return NewProviderFailureError(err.Error(), slug)
	}
}

func isUpstreamFailure(err error) bool {
	var httpErr *httputil.HTTPError
	var apiErr *storage.APIError
	return errors.Is(err, gateway.ErrGatewayUnavailable) ||
		errors.Is(err, metadata.ErrMetadataFetch) ||
		errors.Is(err, storage.ErrUpload) ||
		errors.As(err, &httpErr) ||
		errors.As(err, &apiErr)
}
