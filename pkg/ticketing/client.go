// Package ticketing is the entry point of the SDK. A Client builds unsigned
// transactions for the ticketing contracts and reads on-chain state merged with
// the off-chain metadata it points to.
package ticketing

import (
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/backend"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/contracts"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/storage"
)

// Network describes the chain the contracts are deployed on.
type Network struct {
	RPCURL    string `json:"rpcUrl"`
	ChainID   string `json:"chainId"`
	TokenName string `json:"tokenName"`
	Label     string `json:"label"`
}

// Dependencies are the collaborators of a Client. All of them are required.
type Dependencies struct {
	Events           *contracts.Events
	TicketController *contracts.TicketController
	Tickets          *contracts.Tickets
	Marketplace      *contracts.Marketplace
	Resolver         metadata.URLResolver
	Fetcher          metadata.DocumentFetcher
	Uploader         *storage.Uploader
	Backend          *backend.Client
	Network          Network
}

// Client exposes the operations of the ticketing system. It keeps no state
// between calls and is safe for concurrent use when its collaborators are.
type Client struct {
	events      *contracts.Events
	controller  *contracts.TicketController
	tickets     *contracts.Tickets
	marketplace *contracts.Marketplace
	resolver    metadata.URLResolver
	metadata    *metadata.Service
	uploader    *storage.Uploader
	backend     *backend.Client
	network     Network
}

// Network returns the chain constants the client was configured with.
func (c *Client) Network() Network {
	return c.network
}

// NewClient creates a Client over explicitly injected collaborators.
// Panics if any collaborator is nil.
func NewClient(deps Dependencies) *Client {
	switch {
	case deps.Events == nil:
		panic("events contract is nil")
	case deps.TicketController == nil:
		panic("ticket controller contract is nil")
	case deps.Tickets == nil:
		panic("tickets contract is nil")
	case deps.Marketplace == nil:
		panic("marketplace contract is nil")
	case deps.Resolver == nil:
		panic("url resolver is nil")
	case deps.Fetcher == nil:
		panic("document fetcher is nil")
	case deps.Uploader == nil:
		panic("uploader is nil")
	case deps.Backend == nil:
		panic("backend client is nil")
	}

	return &Client{
		events:      deps.Events,
		controller:  deps.TicketController,
		tickets:     deps.Tickets,
		marketplace: deps.Marketplace,
		resolver:    deps.Resolver,
		metadata:    metadata.NewService(deps.Resolver, deps.Fetcher),
		uploader:    deps.Uploader,
		backend:     deps.Backend,
		network:     deps.Network,
	}
}
