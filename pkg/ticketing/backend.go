package ticketing

import (
	"context"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/backend"
)

// FetchCountriesFromServer passes the countries answer of the REST backend through.
func (c *Client) FetchCountriesFromServer(ctx context.Context) (*backend.Response, error) {
	return c.backend.Countries(ctx)
}

// FetchPlacesFromServer passes the places answer of the REST backend through.
func (c *Client) FetchPlacesFromServer(ctx context.Context, country string) (*backend.Response, error) {
	return c.backend.Places(ctx, country)
}

// FetchAllEventsFromServer passes the events search answer of the REST backend through.
func (c *Client) FetchAllEventsFromServer(ctx context.Context, query backend.EventsQuery) (*backend.Response, error) {
	return c.backend.Events(ctx, query)
}
