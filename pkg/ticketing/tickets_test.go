package ticketing_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/contracts"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/metadata"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/internal/testabilities"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// decodeTx returns the method and the unpacked arguments encoded in an unsigned transaction.
func decodeTx(t *testing.T, abiJSON string, tx *contracts.UnsignedTx) (string, []any) {
	t.Helper()

	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(t, err)

	method, err := parsed.MethodById(tx.Data)
	require.NoError(t, err)

	args, err := method.Inputs.Unpack(tx.Data[4:])
	require.NoError(t, err)
	return method.RawName, args
}

func TestClient_GetSingleTicketByID(t *testing.T) {
	tests := map[string]struct {
		uri           string
		expectedName  any
		expectedImage any
	}{
		"Ticket is merged with its metadata.": {
			uri:           ticket1URI,
			expectedName:  "Ticket",
			expectedImage: "https://g1/image",
		},
		"Unreachable metadata degrades to the on-chain record.": {
			uri: ticketDownURI,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			f := newFixture(t, testabilities.StorageClientMockExpectations{})
			f.serveTickets(map[int64]string{5: tc.uri})
			ticketID := big.NewInt(5)

			// when:
			view, err := f.client.GetSingleTicketByID(t.Context(), ticketID)

			// then:
			require.NoError(t, err)
			require.Same(t, ticketID, view["id"])
			require.Equal(t, tc.uri, view["tokenUri"])
			require.Equal(t, tc.expectedName, view["name"])
			require.Equal(t, tc.expectedImage, view[metadata.KeyImage])
			requireBigInt(t, 4, view["seat"])
		})
	}
}

func TestClient_GetTicketsByIDs(t *testing.T) {
	// given:
	f := newFixture(t, testabilities.StorageClientMockExpectations{})
	f.serveTickets(map[int64]string{1: ticket1URI, 2: ticketDownURI, 3: ticket1URI})

	// when:
	views, err := f.client.GetTicketsByIDs(t.Context(), []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)})

	// then:
	require.NoError(t, err)
	require.Len(t, views, 3)
	require.Equal(t, "Ticket", views[0]["name"])
	require.NotContains(t, views[1], "name")
	require.Equal(t, "Ticket", views[2]["name"])
	for i, v := range views {
		requireBigInt(t, int64(i+1), v["id"])
	}
}

func TestClient_GetTicketsByIDs_ChainFailureAborts(t *testing.T) {
	// given:
	f := newFixture(t, testabilities.StorageClientMockExpectations{})
	f.serveTickets(map[int64]string{1: ticket1URI})

	// when:
	views, err := f.client.GetTicketsByIDs(t.Context(), []*big.Int{big.NewInt(1), big.NewInt(9)})

	// then:
	require.Nil(t, views)

	var abortErr *metadata.BatchAbortError
	require.ErrorAs(t, err, &abortErr)
	require.Equal(t, 1, abortErr.Index)
	require.Equal(t, "9", abortErr.ID)
	require.ErrorContains(t, err, "execution reverted")
}

func TestClient_GetListedTicketByID(t *testing.T) {
	// given:
	f := newFixture(t, testabilities.StorageClientMockExpectations{})
	f.serveTickets(map[int64]string{5: ticket1URI})
	f.chain.Return(marketplaceAddress, "getListedTicketById", contracts.ListedTicket{
		Seller:   holderAddress,
		Price:    big.NewInt(120),
		IsListed: true,
	})

	// when:
	view, err := f.client.GetListedTicketByID(t.Context(), big.NewInt(5))

	// then:
	require.NoError(t, err)
	require.Equal(t, "Ticket", view["name"])
	require.Equal(t, true, view["isListed"])
	requireBigInt(t, 120, view["price"])
	requireBigInt(t, 5, view["id"])
}

func TestClient_IsTicketUsable_ReadsAsOwner(t *testing.T) {
	// given:
	f := newFixture(t, testabilities.StorageClientMockExpectations{})
	f.chain.Return(ticketsAddress, "ownerOf", holderAddress)
	f.chain.Return(ticketsAddress, "isConsumableBy", true)

	// when:
	usable, err := f.client.IsTicketUsable(t.Context(), big.NewInt(5))

	// then:
	require.NoError(t, err)
	require.True(t, usable)

	calls := f.chain.Calls()
	require.Len(t, calls, 2)
	require.Equal(t, "isConsumableBy", calls[1].Method)
	require.Equal(t, holderAddress, calls[1].From)
	require.Equal(t, holderAddress, calls[1].Args[0])
	requireBigInt(t, 5, calls[1].Args[1])
	requireBigInt(t, 1, calls[1].Args[2])
}

func TestClient_GetContractTicketIDsByEvent_ReadsAsController(t *testing.T) {
	// given:
	f := newFixture(t, testabilities.StorageClientMockExpectations{})
	f.chain.Return(controllerAddress, "getAddressTicketIdsByEvent", []*big.Int{big.NewInt(11)})

	// when:
	ids, err := f.client.GetContractTicketIDsByEvent(t.Context(), big.NewInt(1))

	// then:
	require.NoError(t, err)
	require.Len(t, ids, 1)
	requireBigInt(t, 11, ids[0])
	require.Equal(t, controllerAddress, f.chain.Calls()[0].From)
}

func TestClient_BuyTickets(t *testing.T) {
	// given:
	f := newFixture(t, testabilities.StorageClientMockExpectations{})

	// when:
	tx, err := f.client.BuyTickets(
		[]gateway.ContentURI{ticket1URI, ticket1URI},
		[]contracts.EventCategory{{EventID: big.NewInt(1), CategoryID: big.NewInt(2)}},
		[]contracts.PriceData{{Amount: big.NewInt(2), Price: big.NewInt(5)}},
		[]contracts.Place{{Row: big.NewInt(1), Seat: big.NewInt(1)}, {Row: big.NewInt(1), Seat: big.NewInt(2)}},
	)

	// then:
	require.NoError(t, err)
	require.Equal(t, controllerAddress, tx.To)
	require.Zero(t, big.NewInt(10).Cmp(tx.Wei()))

	method, args := decodeTx(t, contracts.TicketControllerABI, tx)
	require.Equal(t, "buyTickets", method)
	require.Contains(t, args, []string{ticket1URI, ticket1URI})
}

func TestClient_SetFeePercentage(t *testing.T) {
	tests := map[string]struct {
		percent     float64
		marketplace bool
		expectedTo  common.Address
		expectedBps int64
		expectedErr string
	}{
		"Primary fee is converted to basis points.": {
			percent:     2.5,
			expectedTo:  controllerAddress,
			expectedBps: 250,
		},
		"Secondary market fee is converted to basis points.": {
			percent:     10,
			marketplace: true,
			expectedTo:  marketplaceAddress,
			expectedBps: 1000,
		},
		"Negative fee is rejected.": {
			percent:     -1,
			expectedErr: "out of range",
		},
		"Fee above one hundred percent is rejected.": {
			percent:     100.5,
			marketplace: true,
			expectedErr: "out of range",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			f := newFixture(t, testabilities.StorageClientMockExpectations{})
			set, abiJSON := f.client.SetTicketFeePercentage, contracts.TicketControllerABI
			if tc.marketplace {
				set, abiJSON = f.client.SetSecondaryMarketTicketFeePercentage, contracts.MarketplaceABI
			}

			// when:
			tx, err := set(tc.percent)

			// then:
			if tc.expectedErr != "" {
				require.Nil(t, tx)
				require.ErrorContains(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedTo, tx.To)

			method, args := decodeTx(t, abiJSON, tx)
			require.Equal(t, "setTicketFeePercentage", method)
			requireBigInt(t, tc.expectedBps, args[0])
		})
	}
}
