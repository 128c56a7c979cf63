package ticketing_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/backend"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/contracts"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/storage"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/internal/testabilities"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/ticketing"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	eventsAddress      = common.HexToAddress("0x0000000000000000000000000000000000000e01")
	controllerAddress  = common.HexToAddress("0x0000000000000000000000000000000000000c01")
	ticketsAddress     = common.HexToAddress("0x0000000000000000000000000000000000000701")
	marketplaceAddress = common.HexToAddress("0x0000000000000000000000000000000000000a01")
	holderAddress      = common.HexToAddress("0x16514b719274484b06d56459f97139b333bd8130")
	cashierAddress     = common.HexToAddress("0xB7a94AfbF92B4D2D522EaA8f7c0e07Ab6A61186E")
)

const (
	testGateway   = "https://g1/"
	event1URI     = "ipfs://event1/metadata.json"
	event2URI     = "ipfs://event2/metadata.json"
	event3URI     = "ipfs://event3/metadata.json"
	category1URI  = "ipfs://cat1/metadata.json"
	categoryDown  = "ipfs://cat-down/metadata.json"
	ticket1URI    = "ipfs://ticket1/metadata.json"
	ticketDownURI = "ipfs://ticket-down/metadata.json"
	imageURI      = "ipfs://image"
)

var errRevert = errors.New("execution reverted: ticket does not exist")

var testNetwork = ticketing.Network{
	RPCURL:    "http://127.0.0.1:8545",
	ChainID:   "0x7a69",
	TokenName: "ETH",
	Label:     "Local",
}

type fixture struct {
	chain   *testabilities.ChainStub
	fetcher *testabilities.FetcherStub
	storage *testabilities.StorageClientMock
	network *testabilities.NetworkStub
	client  *ticketing.Client
}

func newFixture(t *testing.T, expectations testabilities.StorageClientMockExpectations) *fixture {
	t.Helper()

	chain := testabilities.NewChainStub(t)
	chain.Deploy(eventsAddress, contracts.EventsABI)
	chain.Deploy(controllerAddress, contracts.TicketControllerABI)
	chain.Deploy(ticketsAddress, contracts.TicketsABI)
	chain.Deploy(marketplaceAddress, contracts.MarketplaceABI)

	events, err := contracts.NewEvents(eventsAddress, chain)
	require.NoError(t, err)
	controller, err := contracts.NewTicketController(controllerAddress, chain)
	require.NoError(t, err)
	tickets, err := contracts.NewTickets(ticketsAddress, chain)
	require.NoError(t, err)
	marketplace, err := contracts.NewMarketplace(marketplaceAddress, chain)
	require.NoError(t, err)

	resolver := testabilities.NewResolverStub(t, gateway.GatewayList{testGateway}, map[gateway.ContentURI]string{
		event1URI:    "https://g1/event1/metadata.json",
		event2URI:    "https://g1/event2/metadata.json",
		event3URI:    "https://g1/event3/metadata.json",
		category1URI: "https://g1/cat1/metadata.json",
		ticket1URI:   "https://g1/ticket1/metadata.json",
		imageURI:     "https://g1/image",
	})
	fetcher := testabilities.NewFetcherStub(t, map[string]metadata.Record{
		"https://g1/event1/metadata.json":  {"name": "Event1", "image": imageURI, "status": "draft"},
		"https://g1/event3/metadata.json":  {"name": "Event3"},
		"https://g1/cat1/metadata.json":    {"name": "VIP", "image": imageURI},
		"https://g1/ticket1/metadata.json": {"name": "Ticket", "image": imageURI, "id": "offchain"},
	})

	storageMock := testabilities.NewStorageClientMock(t, expectations)
	network := testabilities.NewNetworkStub(t)

	return &fixture{
		chain:   chain,
		fetcher: fetcher,
		storage: storageMock,
		network: network,
		client: ticketing.NewClient(ticketing.Dependencies{
			Events:           events,
			TicketController: controller,
			Tickets:          tickets,
			Marketplace:      marketplace,
			Resolver:         resolver,
			Fetcher:          fetcher,
			Uploader:         storage.NewUploader(storageMock),
			Backend:          backend.NewClient(network.Client(), "https://backend.test"),
			Network:          testNetwork,
		}),
	}
}

// serveEvents answers tokenURI and fetchEventById reads for the given event URIs.
func (f *fixture) serveEvents(uris map[int64]string) {
	f.chain.Handle(eventsAddress, "tokenURI", func(args []any) ([]any, error) {
		uri, ok := uris[args[0].(*big.Int).Int64()]
		if !ok {
			return nil, errRevert
		}
		return []any{uri}, nil
	})
	f.chain.Handle(eventsAddress, "fetchEventById", func(args []any) ([]any, error) {
		return []any{testEvent()}, nil
	})
}

// serveTickets answers getTicket reads. Ticket ids missing from uris revert.
func (f *fixture) serveTickets(uris map[int64]string) {
	f.chain.Handle(ticketsAddress, "getTicket", func(args []any) ([]any, error) {
		uri, ok := uris[args[0].(*big.Int).Int64()]
		if !ok {
			return nil, errRevert
		}
		return []any{testTicket(uri)}, nil
	})
}

func testEvent() contracts.Event {
	return contracts.Event{
		StartDate:                    big.NewInt(1700000000),
		EndDate:                      big.NewInt(1700086400),
		MaxTicketPerClient:           big.NewInt(4),
		AreAllCategoryTicketsBuyable: true,
		Status:                       1,
		Cashier:                      cashierAddress,
		PostponeTime:                 big.NewInt(3600),
		RefundData:                   []contracts.RefundData{{Date: big.NewInt(1699990000), Percentage: big.NewInt(50)}},
	}
}

func testCategory(id int64, cid string) contracts.Category {
	return contracts.Category{
		ID:                    big.NewInt(id),
		EventID:               big.NewInt(1),
		CID:                   cid,
		SaleStartDate:         big.NewInt(1690000000),
		SaleEndDate:           big.NewInt(1699000000),
		TicketsCount:          big.NewInt(100),
		TicketPrice:           big.NewInt(25),
		DiscountsTicketsCount: []*big.Int{big.NewInt(10)},
		DiscountsPercentage:   []*big.Int{big.NewInt(5)},
		DownPayment:           contracts.DownPayment{Price: big.NewInt(5), FinalAmountDate: big.NewInt(1698000000)},
		AreTicketsBuyable:     true,
	}
}

func testTicket(uri string) contracts.Ticket {
	return contracts.Ticket{
		EventID:    big.NewInt(1),
		CategoryID: big.NewInt(2),
		Row:        big.NewInt(3),
		Seat:       big.NewInt(4),
		TokenURI:   uri,
	}
}

func requireBigInt(t *testing.T, expected int64, actual any) {
	t.Helper()
	n, ok := actual.(*big.Int)
	require.True(t, ok, "expected *big.Int, got %T", actual)
	require.Zero(t, big.NewInt(expected).Cmp(n), "expected %d, got %s", expected, n)
}
