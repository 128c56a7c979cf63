package ticketing

import (
	"fmt"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/appconfig"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/backend"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/contracts"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/storage"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/metrics"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-resty/resty/v2"
)

// DefaultOption configures the collaborators built by NewDefaultClient.
type DefaultOption func(*defaultOptions)

type defaultOptions struct {
	collector *metrics.Collector
	client    *resty.Client
}

// WithMetrics reports gateway probes, metadata fetches and uploads to the collector.
func WithMetrics(c *metrics.Collector) DefaultOption {
	return func(o *defaultOptions) {
		o.collector = c
	}
}

// WithHTTPClient uses client as the template of every HTTP client the SDK builds.
// Its transport is shared, timeouts are set per collaborator.
func WithHTTPClient(client *resty.Client) DefaultOption {
	return func(o *defaultOptions) {
		o.client = client
	}
}

// NewDefaultClient wires a Client from the configuration. Contract reads and log
// subscriptions go through chain.
func NewDefaultClient(cfg appconfig.Config, chain contracts.Backend, opts ...DefaultOption) (*Client, error) {
	var o defaultOptions
	for _, opt := range opts {
		opt(&o)
	}

	newHTTP := func() *resty.Client {
		c := resty.New()
		if o.client != nil {
			c.SetTransport(o.client.GetClient().Transport)
		}
		return c
	}

	var (
		resolverOpts []gateway.ResolverOption
		fetcherOpts  []metadata.FetcherOption
		uploaderOpts []storage.UploaderOption
	)
	if o.collector != nil {
		resolverOpts = append(resolverOpts, gateway.WithObserver(o.collector))
		fetcherOpts = append(fetcherOpts, metadata.WithFetchObserver(o.collector))
		uploaderOpts = append(uploaderOpts, storage.WithUploadObserver(o.collector))
	}

	prober := gateway.NewHTTPProber(newHTTP().SetTimeout(cfg.Gateways.ProbeTimeout))
	resolver := gateway.NewResolver(cfg.Gateways.URLs, prober, resolverOpts...)
	fetcher := metadata.NewFetcher(newHTTP().SetTimeout(cfg.RequestTimeout), fetcherOpts...)
	uploader := storage.NewUploader(
		storage.NewNFTStorageClient(newHTTP().SetTimeout(cfg.RequestTimeout), cfg.Storage.Endpoint),
		uploaderOpts...,
	)
	rest := backend.NewClient(newHTTP().SetTimeout(cfg.RequestTimeout), cfg.Backend.URL)

	events, err := contracts.NewEvents(common.HexToAddress(cfg.Contracts.Events), chain)
	if err != nil {
		return nil, fmt.Errorf("bind events contract: %w", err)
	}
	controller, err := contracts.NewTicketController(common.HexToAddress(cfg.Contracts.TicketController), chain)
	if err != nil {
		return nil, fmt.Errorf("bind ticket controller contract: %w", err)
	}
	tickets, err := contracts.NewTickets(common.HexToAddress(cfg.Contracts.Tickets), chain)
	if err != nil {
		return nil, fmt.Errorf("bind tickets contract: %w", err)
	}
	marketplace, err := contracts.NewMarketplace(common.HexToAddress(cfg.Contracts.Marketplace), chain)
	if err != nil {
		return nil, fmt.Errorf("bind marketplace contract: %w", err)
	}

	return NewClient(Dependencies{
		Events:           events,
		TicketController: controller,
		Tickets:          tickets,
		Marketplace:      marketplace,
		Resolver:         resolver,
		Fetcher:          fetcher,
		Uploader:         uploader,
		Backend:          rest,
		Network: Network{
			RPCURL:    cfg.Chain.RPCURL,
			ChainID:   cfg.Chain.ChainID,
			TokenName: cfg.Chain.TokenName,
			Label:     cfg.Chain.Label,
		},
	}), nil
}
