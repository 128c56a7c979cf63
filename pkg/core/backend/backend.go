package backend

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/httputil"
	"github.com/go-resty/resty/v2"
)

// EventsQuery is the search filter forwarded as-is to the events endpoint.
type EventsQuery map[string]any

// Response is a backend answer passed through unmodified.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

// Client is a pass-through client of the ticketing REST backend.
type Client struct {
	client  *resty.Client
	baseURL string
}

// Countries lists the countries known to the backend.
func (c *Client) Countries(ctx context.Context) (*Response, error) {
	return c.do(c.client.R().SetContext(ctx), resty.MethodGet, "/api/v1/countries")
}

// Places lists the places of the given country. The country is query-escaped.
func (c *Client) Places(ctx context.Context, country string) (*Response, error) {
	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("country", country)
	return c.do(req, resty.MethodGet, "/api/v1/places")
}

// Events searches the backend events index with the given query.
func (c *Client) Events(ctx context.Context, query EventsQuery) (*Response, error) {
	if query == nil {
		query = EventsQuery{}
	}
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(query)
	return c.do(req, resty.MethodPost, "/api/v1/events")
}

func (c *Client) do(req *resty.Request, method, path string) (*Response, error) {
	res, err := req.
		SetHeader("Accept", "application/json").
		Execute(method, c.baseURL+path)
	if err != nil {
		return nil, err
	}
	if err := httputil.CheckResponse(res); err != nil {
		return nil, err
	}
	return &Response{StatusCode: res.StatusCode(), Body: json.RawMessage(res.Body())}, nil
}

// NewClient creates a backend client for the server at baseURL.
// Panics if the client is nil.
func NewClient(client *resty.Client, baseURL string) *Client {
	if client == nil {
		panic("http client is nil")
	}
	return &Client{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}
