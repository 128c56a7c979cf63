package contracts_test

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/contracts"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/internal/testabilities"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

var (
	eventsAddress      = common.HexToAddress("0x9C6aC28b7cE6fb714fA68362601CBeB27d6dfa8e")
	ticketsAddress     = common.HexToAddress("0x42beBD567b197Abdcd3Ecd262f41DcAD302401aD")
	buyerAddress       = common.HexToAddress("0x16514b719274484b06d56459f97139b333bd8130")
	secondBuyerAddress = common.HexToAddress("0xB7a94AfbF92B4D2D522EaA8f7c0e07Ab6A61186E")
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
	return method.Name, args
}

func TestUnsignedTx_CallMsg(t *testing.T) {
	tests := map[string]struct {
		value    *hexutil.Big
		expected *big.Int
	}{
		"tx without value should produce a zero value call": {
			expected: big.NewInt(0),
		},
		"tx with value should carry it into the call": {
			value:    ptr.To(hexutil.Big(*big.NewInt(1500))),
			expected: big.NewInt(1500),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			tx := contracts.UnsignedTx{To: ticketsAddress, Data: []byte{0x01, 0x02}, Value: tc.value}

			// when:
			msg := tx.CallMsg(buyerAddress)

			// then:
			require.Equal(t, buyerAddress, msg.From)
			require.Equal(t, ptr.To(ticketsAddress), msg.To)
			require.Equal(t, []byte{0x01, 0x02}, msg.Data)
			require.Zero(t, tc.expected.Cmp(msg.Value))
		})
	}
}

func TestCalculateTotalValue(t *testing.T) {
	tests := map[string]struct {
		priceData []contracts.PriceData
		expected  *big.Int
	}{
		"Empty price data sums to zero.": {
			expected: big.NewInt(0),
		},
		"Single entry is price times amount.": {
			priceData: []contracts.PriceData{{Amount: big.NewInt(3), Price: big.NewInt(10)}},
			expected:  big.NewInt(30),
		},
		"Entries are summed.": {
			priceData: []contracts.PriceData{
				{Amount: big.NewInt(1), Price: big.NewInt(10)},
				{Amount: big.NewInt(2), Price: big.NewInt(25)},
			},
			expected: big.NewInt(60),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Zero(t, tc.expected.Cmp(contracts.CalculateTotalValue(tc.priceData)))
		})
	}
}

func TestTicketController_BuyTickets_SelectsOverload(t *testing.T) {
	priceData := []contracts.PriceData{{Amount: big.NewInt(2), Price: big.NewInt(5)}}
	places := []contracts.Place{{Row: big.NewInt(1), Seat: big.NewInt(1)}, {Row: big.NewInt(1), Seat: big.NewInt(2)}}

	tests := map[string]struct {
		categories     []contracts.EventCategory
		expectedMethod string
		expectedArgs   int
	}{
		"Single event category uses the single-event overload.": {
			categories:     []contracts.EventCategory{{EventID: big.NewInt(1), CategoryID: big.NewInt(2)}},
			expectedMethod: contracts.MethodBuyTicketsSingleEvent,
			expectedArgs:   5,
		},
		"Several event categories use the multi-event overload.": {
			categories: []contracts.EventCategory{
				{EventID: big.NewInt(1), CategoryID: big.NewInt(2)},
				{EventID: big.NewInt(3), CategoryID: big.NewInt(1)},
			},
			expectedMethod: contracts.MethodBuyTicketsMultipleEvents,
			expectedArgs:   4,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			controller, err := contracts.NewTicketController(eventsAddress, testabilities.NewChainStub(t))
			require.NoError(t, err)

			// when:
			tx, err := controller.BuyTickets([]string{"ipfs://a", "ipfs://b"}, tc.categories, priceData, places)

			// then:
			require.NoError(t, err)
			require.Equal(t, eventsAddress, tx.To)
			require.Zero(t, big.NewInt(10).Cmp(tx.Wei()))

			method, args := decodeTx(t, contracts.TicketControllerABI, tx)
			require.Equal(t, tc.expectedMethod, method)
			require.Len(t, args, tc.expectedArgs)
			require.Equal(t, []string{"ipfs://a", "ipfs://b"}, args[len(args)-1])
		})
	}
}

func TestTicketController_BuyTickets_RequiresCategory(t *testing.T) {
	// given:
	controller, err := contracts.NewTicketController(eventsAddress, testabilities.NewChainStub(t))
	require.NoError(t, err)

	// when:
	tx, err := controller.BuyTickets(nil, nil, nil, nil)

	// then:
	require.Nil(t, tx)
	require.ErrorIs(t, err, contracts.ErrNoEventCategory)
}

func TestMarketplace_BuyListedTickets_SelectsMethod(t *testing.T) {
	tests := map[string]struct {
		ids            []*big.Int
		expectedMethod string
	}{
		"One ticket uses buyListedTicket.": {
			ids:            []*big.Int{big.NewInt(4)},
			expectedMethod: "buyListedTicket",
		},
		"Several tickets use buyMultipleListedTickets.": {
			ids:            []*big.Int{big.NewInt(4), big.NewInt(5)},
			expectedMethod: "buyMultipleListedTickets",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			marketplace, err := contracts.NewMarketplace(ticketsAddress, testabilities.NewChainStub(t))
			require.NoError(t, err)

			// when:
			tx, err := marketplace.BuyListedTickets(tc.ids, big.NewInt(700))

			// then:
			require.NoError(t, err)
			require.Zero(t, big.NewInt(700).Cmp(tx.Wei()))

			method, _ := decodeTx(t, contracts.MarketplaceABI, tx)
			require.Equal(t, tc.expectedMethod, method)
		})
	}
}

func TestEvents_CreateEvent_PacksArguments(t *testing.T) {
	// given:
	events, err := contracts.NewEvents(eventsAddress, testabilities.NewChainStub(t))
	require.NoError(t, err)

	// when:
	tx, err := events.CreateEvent("ipfs://event/metadata.json", contracts.EventParams{
		MaxTicketPerClient:   big.NewInt(10),
		StartDate:            big.NewInt(1700000000),
		EndDate:              big.NewInt(1700086400),
		OnlyWhiteListedUsers: true,
	})

	// then:
	require.NoError(t, err)
	require.Nil(t, tx.Value)

	method, args := decodeTx(t, contracts.EventsABI, tx)
	require.Equal(t, "createEvent", method)
	require.Equal(t, []any{
		big.NewInt(10),
		big.NewInt(1700000000),
		big.NewInt(1700086400),
		true,
		"ipfs://event/metadata.json",
	}, args)
}

func TestEvents_CreateTicketCategory_AcceptsUnsetDownPayment(t *testing.T) {
	// given:
	events, err := contracts.NewEvents(eventsAddress, testabilities.NewChainStub(t))
	require.NoError(t, err)

	// when:
	tx, err := events.CreateTicketCategory("ipfs://category", big.NewInt(1), contracts.CategoryParams{
		SaleStartDate: big.NewInt(1),
		SaleEndDate:   big.NewInt(2),
		TicketsCount:  big.NewInt(50),
		TicketPrice:   big.NewInt(10),
	})

	// then:
	require.NoError(t, err)
	method, args := decodeTx(t, contracts.EventsABI, tx)
	require.Equal(t, "createTicketCategory", method)
	require.Len(t, args, 10)
}

func TestEvents_FetchEventByID(t *testing.T) {
	// given:
	chain := testabilities.NewChainStub(t)
	chain.Deploy(eventsAddress, contracts.EventsABI)
	expected := contracts.Event{
		StartDate:          big.NewInt(100),
		EndDate:            big.NewInt(200),
		MaxTicketPerClient: big.NewInt(4),
		Status:             1,
		Cashier:            buyerAddress,
		PostponeTime:       big.NewInt(3600),
		RefundData:         []contracts.RefundData{{Date: big.NewInt(150), Percentage: big.NewInt(100)}},
	}
	chain.Return(eventsAddress, "fetchEventById", expected)
	events, err := contracts.NewEvents(eventsAddress, chain)
	require.NoError(t, err)

	// when:
	actual, err := events.FetchEventByID(t.Context(), big.NewInt(7))

	// then:
	require.NoError(t, err)
	require.Equal(t, expected, actual)
	require.Equal(t, []testabilities.ChainCall{
		{To: eventsAddress, Method: "fetchEventById", Args: []any{big.NewInt(7)}},
	}, chain.Calls())
}

func TestEvents_FetchOwnedEvents_CallsAsOwner(t *testing.T) {
	// given:
	chain := testabilities.NewChainStub(t)
	chain.Deploy(eventsAddress, contracts.EventsABI)
	chain.Return(eventsAddress, "fetchOwnedEvents", []*big.Int{big.NewInt(1), big.NewInt(3)})
	events, err := contracts.NewEvents(eventsAddress, chain)
	require.NoError(t, err)

	// when:
	ids, err := events.FetchOwnedEvents(t.Context(), buyerAddress)

	// then:
	require.NoError(t, err)
	require.Equal(t, []*big.Int{big.NewInt(1), big.NewInt(3)}, ids)
	require.Equal(t, buyerAddress, chain.Calls()[0].From)
}

func TestTickets_IsConsumableBy_CallsAsConsumer(t *testing.T) {
	// given:
	chain := testabilities.NewChainStub(t)
	chain.Deploy(ticketsAddress, contracts.TicketsABI)
	chain.Return(ticketsAddress, "isConsumableBy", true)
	tickets, err := contracts.NewTickets(ticketsAddress, chain)
	require.NoError(t, err)

	// when:
	usable, err := tickets.IsConsumableBy(t.Context(), secondBuyerAddress, big.NewInt(9), big.NewInt(1))

	// then:
	require.NoError(t, err)
	require.True(t, usable)
	require.Equal(t, []testabilities.ChainCall{{
		To:     ticketsAddress,
		From:   secondBuyerAddress,
		Method: "isConsumableBy",
		Args:   []any{secondBuyerAddress, big.NewInt(9), big.NewInt(1)},
	}}, chain.Calls())
}

func TestContract_Call_PropagatesRevert(t *testing.T) {
	// given:
	chain := testabilities.NewChainStub(t)
	chain.Deploy(ticketsAddress, contracts.TicketsABI)
	tickets, err := contracts.NewTickets(ticketsAddress, chain)
	require.NoError(t, err)

	// when:
	_, err = tickets.GetTicket(t.Context(), big.NewInt(1))

	// then:
	require.ErrorContains(t, err, "call tickets.getTicket")
	require.ErrorContains(t, err, "execution reverted")
}

func TestUnsignedTx_MarshalJSON(t *testing.T) {
	// given:
	marketplace, err := contracts.NewMarketplace(ticketsAddress, testabilities.NewChainStub(t))
	require.NoError(t, err)
	tx, err := marketplace.BuyListedTickets([]*big.Int{big.NewInt(1)}, big.NewInt(255))
	require.NoError(t, err)

	// when:
	raw, err := json.Marshal(tx)

	// then:
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, strings.ToLower(ticketsAddress.Hex()), strings.ToLower(decoded["to"]))
	require.Equal(t, "0xff", decoded["value"])
	require.True(t, strings.HasPrefix(decoded["data"], "0x"))
}

func TestRoleName(t *testing.T) {
	name, ok := contracts.RoleName(contracts.RoleModerator)
	require.True(t, ok)
	require.Equal(t, "moderator", name)

	_, ok = contracts.RoleName(common.HexToHash("0x01"))
	require.False(t, ok)
}
