package testabilities

import (
	"context"
	"fmt"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
)

// ResolverStub resolves content URIs from a fixed table. URIs missing from the
// table fail with a *gateway.GatewayUnavailableError.
type ResolverStub struct {
	t        *testing.T
	gateways gateway.GatewayList
	urls     map[gateway.ContentURI]string
}

// Resolve returns the URL registered for uri.
func (r *ResolverStub) Resolve(ctx context.Context, uri gateway.ContentURI) (string, error) {
	r.t.Helper()
	if !gateway.IsContentURI(string(uri)) {
		return string(uri), nil
	}
	url, ok := r.urls[uri]
	if !ok {
		return "", &gateway.GatewayUnavailableError{URI: uri, Tried: len(r.gateways), Err: ErrTestUnreachableHost}
	}
	return url, nil
}

// Gateways returns the configured gateway list.
func (r *ResolverStub) Gateways() gateway.GatewayList {
	return r.gateways
}

// NewResolverStub creates a ResolverStub over the given gateways and URL table.
func NewResolverStub(t *testing.T, gateways gateway.GatewayList, urls map[gateway.ContentURI]string) *ResolverStub {
	return &ResolverStub{t: t, gateways: gateways, urls: urls}
}

// FetcherStub serves metadata documents from a fixed table and records fetched URLs.
// URLs missing from the table fail with a *metadata.MetadataFetchError.
type FetcherStub struct {
	t       *testing.T
	docs    map[string]metadata.Record
	fetched []string
}

// Fetch returns a copy of the document registered for url.
func (f *FetcherStub) Fetch(ctx context.Context, url string) (metadata.Record, error) {
	f.t.Helper()
	f.fetched = append(f.fetched, url)
	doc, ok := f.docs[url]
	if !ok {
		return nil, &metadata.MetadataFetchError{URL: url, Err: fmt.Errorf("GET %s: unexpected status 404", url)}
	}
	return doc.Clone(), nil
}

// Fetched returns the fetched URLs in call order.
func (f *FetcherStub) Fetched() []string {
	return f.fetched
}

// NewFetcherStub creates a FetcherStub serving the given documents.
func NewFetcherStub(t *testing.T, docs map[string]metadata.Record) *FetcherStub {
	return &FetcherStub{t: t, docs: docs}
}
