package gateway

import (
	"context"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/httputil"
	"github.com/go-resty/resty/v2"
)

// HTTPProber probes gateway URLs with a plain HTTP GET. Any 2xx response counts as reachable.
type HTTPProber struct {
	client *resty.Client
}

// Probe issues one GET against url and discards the body.
func (p *HTTPProber) Probe(ctx context.Context, url string) error {
	res, err := p.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return err
	}
	if body := res.RawBody(); body != nil {
		defer func() { _ = body.Close() }()
	}

	return httputil.CheckResponse(res)
}

// NewHTTPProber creates an HTTPProber over the given resty client.
// Panics if the client is nil.
func NewHTTPProber(client *resty.Client) *HTTPProber {
	if client == nil {
		panic("http client is nil")
	}
	return &HTTPProber{client: client}
}
