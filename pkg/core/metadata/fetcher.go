package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/httputil"
	"github.com/go-resty/resty/v2"
	"github.com/gookit/slog"
)

// FetchObserver is notified about the outcome of every metadata fetch.
type FetchObserver interface {
	ObserveFetch(err error)
}

// FetcherOption configures optional Fetcher collaborators.
type FetcherOption func(*Fetcher)

// WithFetchObserver registers an observer notified about every fetch outcome.
func WithFetchObserver(o FetchObserver) FetcherOption {
	return func(f *Fetcher) {
		f.observer = o
	}
}

// Fetcher downloads metadata documents from resolved gateway URLs.
// Every fetch is a single attempt.
type Fetcher struct {
	client   *resty.Client
	observer FetchObserver
}

// Fetch issues one GET against url and decodes the body as a JSON object.
// A JSON null body decodes into an empty record.
func (f *Fetcher) Fetch(ctx context.Context, url string) (Record, error) {
	rec, err := f.fetch(ctx, url)
	if f.observer != nil {
		f.observer.ObserveFetch(err)
	}
	if err != nil {
		return nil, &MetadataFetchError{URL: url, Err: err}
	}
	return rec, nil
}

// FetchOrDefault behaves like Fetch but returns fallback unchanged on any failure.
func (f *Fetcher) FetchOrDefault(ctx context.Context, url string, fallback Record) Record {
	rec, err := f.Fetch(ctx, url)
	if err != nil {
		slog.Warnf("using fallback metadata: %v", err)
		return fallback
	}
	return rec
}

func (f *Fetcher) fetch(ctx context.Context, url string) (Record, error) {
	res, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		return nil, err
	}
	if err := httputil.CheckResponse(res); err != nil {
		return nil, err
	}

	var rec Record
	dec := json.NewDecoder(bytes.NewReader(res.Body()))
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the metadata document")
	}
	if rec == nil {
		rec = Record{}
	}
	return rec, nil
}

// NewFetcher creates a Fetcher over the given resty client.
// Panics if the client is nil.
func NewFetcher(client *resty.Client, opts ...FetcherOption) *Fetcher {
	if client == nil {
		panic("http client is nil")
	}

	f := &Fetcher{client: client}
	for _, o := range opts {
		o(f)
	}
	return f
}
