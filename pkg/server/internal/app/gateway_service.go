package app

import (
	"context"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
)

// GatewayURLProvider defines the contract for resolving content URIs to gateway URLs.
type GatewayURLProvider interface {
	CreateGatewayURL(ctx context.Context, uri gateway.ContentURI) (string, error)
}

// GatewayService resolves content URIs through the configured gateways.
type GatewayService struct {
	provider GatewayURLProvider
}

// ResolveURI returns the URL of the first reachable gateway serving uri.
// Returns an error if:
// - The URI is empty (ErrorTypeIncorrectInput).
// - No gateway is reachable (ErrorTypeUpstreamFailure).
func (s *GatewayService) ResolveURI(ctx context.Context, uri string) (string, error) {
	if uri == "" {
		return "", NewEmptyContentURIError()
	}

	url, err := s.provider.CreateGatewayURL(ctx, gateway.ContentURI(uri))
	if err != nil {
		return "", NewGatewayResolveError(err)
	}
	return url, nil
}

// NewGatewayService creates a new GatewayService with the given provider.
// Panics if the provider is nil.
func NewGatewayService(provider GatewayURLProvider) *GatewayService {
	if provider == nil {
		panic("gateway url provider cannot be nil")
	}
	return &GatewayService{provider: provider}
}

// NewEmptyContentURIError returns an Error indicating that the uri parameter is empty.
func NewEmptyContentURIError() Error {
	return Error{
		errorType: ErrorTypeIncorrectInput,
		err:       "content uri cannot be empty",
		slug:      "A valid uri must be provided to resolve a gateway URL.",
	}
}

// NewGatewayResolveError returns an Error indicating that the URI could not be resolved.
func NewGatewayResolveError(err error) Error {
	return classifyProviderError(err, "Unable to resolve the content URI, no gateway is reachable. Please try again later.")
}
