package metadata

import (
	"context"
	"fmt"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/gookit/slog"
)

// DocumentFetcher retrieves a metadata document from a resolved URL.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (Record, error)
}

// Service resolves content URIs into metadata documents and merges them with
// on-chain records. It keeps no state between calls.
type Service struct {
	resolver URLResolver
	fetcher  DocumentFetcher
	merger   *Merger
}

// Resolve resolves uri through the gateways and fetches the document behind it.
// Gateway failures are returned as *gateway.GatewayUnavailableError and fetch
// failures as *MetadataFetchError.
func (s *Service) Resolve(ctx context.Context, uri gateway.ContentURI) (Record, error) {
	url, err := s.resolver.Resolve(ctx, uri)
	if err != nil {
		return nil, err
	}
	return s.fetcher.Fetch(ctx, url)
}

// ResolveOrDefault behaves like Resolve but returns fallback unchanged on any failure.
func (s *Service) ResolveOrDefault(ctx context.Context, uri gateway.ContentURI, fallback Record) Record {
	rec, err := s.Resolve(ctx, uri)
	if err != nil {
		slog.Warnf("metadata %s unavailable, using fallback: %v", uri, err)
		return fallback
	}
	return rec
}

// Enrich fetches the metadata behind uri and merges raw on top of it.
// Any resolution or fetch failure is returned to the caller.
func (s *Service) Enrich(ctx context.Context, uri gateway.ContentURI, raw Record) (Record, error) {
	offchain, err := s.Resolve(ctx, uri)
	if err != nil {
		return nil, err
	}
	return s.merger.Merge(ctx, raw, offchain), nil
}

// EnrichOrRaw behaves like Enrich but degrades to the raw record, returned
// unchanged, when the metadata cannot be resolved or fetched.
func (s *Service) EnrichOrRaw(ctx context.Context, uri gateway.ContentURI, raw Record) Record {
	offchain, err := s.Resolve(ctx, uri)
	if err != nil {
		slog.Warnf("metadata %s unavailable, returning on-chain record: %v", uri, err)
		return raw
	}
	return s.merger.Merge(ctx, raw, offchain)
}

// Merger exposes the merger used by the service.
func (s *Service) Merger() *Merger {
	return s.merger
}

// NewService creates a Service over the given resolver and fetcher.
// Panics if either collaborator is nil.
func NewService(resolver URLResolver, fetcher DocumentFetcher) *Service {
	if resolver == nil {
		panic("url resolver is nil")
	}
	if fetcher == nil {
		panic("document fetcher is nil")
	}
	return &Service{
		resolver: resolver,
		fetcher:  fetcher,
		merger:   NewMerger(resolver),
	}
}

// ResolveAll applies resolve to every identifier in order and returns the records
// in the same order. The first failure aborts the batch: no further items are
// resolved and the error is returned as *BatchAbortError without partial results.
//
// Whether a batch degrades per item or fails fast is decided by resolve: a
// resolve built on EnrichOrRaw only fails when the on-chain read itself fails.
func ResolveAll[ID any](ctx context.Context, ids []ID, resolve func(ctx context.Context, id ID) (Record, error)) ([]Record, error) {
	out := make([]Record, 0, len(ids))
	for i, id := range ids {
		rec, err := resolve(ctx, id)
		if err != nil {
			return nil, &BatchAbortError{Index: i, ID: fmt.Sprint(id), Err: err}
		}
		out = append(out, rec)
	}
	return out, nil
}
