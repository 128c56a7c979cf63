package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gookit/slog"
)

// Scheme is the content-addressing prefix carried by on-chain metadata URIs.
const Scheme = "ipfs://"

// ErrGatewayUnavailable is matched by errors.Is for every *GatewayUnavailableError.
var ErrGatewayUnavailable = errors.New("gateway unavailable")

// ContentURI addresses a piece of off-chain content, e.g. ipfs://<cid>/metadata.json.
type ContentURI string

// Path returns the URI without the scheme prefix. The boolean is false when
// the URI does not carry the expected scheme.
func (u ContentURI) Path() (string, bool) {
	if !strings.HasPrefix(string(u), Scheme) {
		return "", false
	}
	return strings.TrimPrefix(string(u), Scheme), true
}

// IsContentURI reports whether s carries the content-addressing scheme.
func IsContentURI(s string) bool {
	_, ok := ContentURI(s).Path()
	return ok
}

// GatewayList is the ordered list of gateway base URLs. The first reachable gateway wins.
type GatewayList []string

// Prober checks that a candidate gateway URL is reachable.
type Prober interface {
	Probe(ctx context.Context, url string) error
}

// Observer is notified about the outcome of every gateway probe.
type Observer interface {
	ObserveProbe(gateway string, err error)
}

// GatewayUnavailableError is returned when every configured gateway failed for a URI.
// Err holds the transport error of the last gateway tried.
type GatewayUnavailableError struct {
	URI   ContentURI
	Tried int
	Err   error
}

func (e *GatewayUnavailableError) Error() string {
	return fmt.Sprintf("resolve %s: all %d gateways unavailable: %v", e.URI, e.Tried, e.Err)
}

func (e *GatewayUnavailableError) Unwrap() error { return e.Err }

func (e *GatewayUnavailableError) Is(target error) bool { return target == ErrGatewayUnavailable }

// ResolverOption configures optional Resolver collaborators.
type ResolverOption func(*Resolver)

// WithObserver registers an observer notified about every probe outcome.
func WithObserver(o Observer) ResolverOption {
	return func(r *Resolver) {
		r.observer = o
	}
}

// Resolver turns content URIs into reachable HTTP URLs by trying the configured
// gateways in order.
type Resolver struct {
	gateways GatewayList
	prober   Prober
	observer Observer
}

// NewResolver creates a Resolver over a non-empty gateway list.
// Panics if the prober is nil or the gateway list is empty.
func NewResolver(gateways GatewayList, prober Prober, opts ...ResolverOption) *Resolver {
	if prober == nil {
		panic("gateway prober is nil")
	}
	if len(gateways) == 0 {
		panic("gateway list is empty")
	}

	r := &Resolver{
		gateways: append(GatewayList(nil), gateways...),
		prober:   prober,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Gateways returns a copy of the configured gateway list.
func (r *Resolver) Gateways() GatewayList {
	return append(GatewayList(nil), r.gateways...)
}

// Resolve returns the URL of the first gateway, in list order, whose probe succeeds.
// A URI without the content-addressing scheme is returned unchanged and is not probed.
func (r *Resolver) Resolve(ctx context.Context, uri ContentURI) (string, error) {
	path, ok := uri.Path()
	if !ok {
		return string(uri), nil
	}

	var lastErr error
	for _, gw := range r.gateways {
		candidate := gw + path
		err := r.prober.Probe(ctx, candidate)
		if r.observer != nil {
			r.observer.ObserveProbe(gw, err)
		}
		if err == nil {
			return candidate, nil
		}

		slog.Debugf("gateway %s failed for %s: %v", gw, uri, err)
		lastErr = err
	}

	return "", &GatewayUnavailableError{URI: uri, Tried: len(r.gateways), Err: lastErr}
}

// MakeURL substitutes the scheme with the given gateway without probing it.
// URIs without the scheme are returned unchanged.
func MakeURL(uri ContentURI, gateway string) string {
	path, ok := uri.Path()
	if !ok {
		return string(uri)
	}
	return gateway + path
}
