package testabilities

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/require"
)

// ChainCall is a contract read recorded by the ChainStub.
type ChainCall struct {
	To     common.Address
	From   common.Address
	Method string
	Args   []any
}

// CallHandler produces the outputs of a contract read from its decoded arguments.
type CallHandler func(args []any) ([]any, error)

// ChainStub is an in-memory chain node implementing the contract caller and log
// filterer interfaces. Reads are dispatched to handlers registered per contract
// address and method name; outputs are ABI-packed like a real node would return them.
type ChainStub struct {
	t        *testing.T
	mu       sync.Mutex
	abis     map[common.Address]abi.ABI
	handlers map[string]CallHandler
	calls    []ChainCall
	logs     []types.Log
	queries  []ethereum.FilterQuery
}

// Deploy registers the interface of the contract living at address.
func (c *ChainStub) Deploy(address common.Address, abiJSON string) {
	c.t.Helper()
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(c.t, err)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.abis[address] = parsed
}

// Handle registers the handler answering method reads on the contract at address.
func (c *ChainStub) Handle(address common.Address, method string, h CallHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[address.Hex()+"."+method] = h
}

// Return registers constant outputs for method reads on the contract at address.
func (c *ChainStub) Return(address common.Address, method string, outputs ...any) {
	c.Handle(address, method, func([]any) ([]any, error) { return outputs, nil })
}

// Calls returns the recorded reads in call order.
func (c *ChainStub) Calls() []ChainCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ChainCall(nil), c.calls...)
}

// Queries returns the recorded log subscriptions.
func (c *ChainStub) Queries() []ethereum.FilterQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ethereum.FilterQuery(nil), c.queries...)
}

// EmitLog queues a log of the named event for the next subscription. Indexed
// arguments become topics, the remaining ones are packed into the data section.
func (c *ChainStub) EmitLog(address common.Address, name string, args map[string]any) {
	c.t.Helper()

	c.mu.Lock()
	parsed, ok := c.abis[address]
	c.mu.Unlock()
	require.True(c.t, ok, "no contract deployed at %s", address)

	ev, ok := parsed.Events[name]
	require.True(c.t, ok, "no event %s", name)

	topics := []common.Hash{ev.ID}
	var data []any
	for _, in := range ev.Inputs {
		if !in.Indexed {
			data = append(data, args[in.Name])
			continue
		}
		t, err := abi.MakeTopics([]any{args[in.Name]})
		require.NoError(c.t, err)
		topics = append(topics, t[0][0])
	}

	packed, err := ev.Inputs.NonIndexed().Pack(data...)
	require.NoError(c.t, err)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs = append(c.logs, types.Log{Address: address, Topics: topics, Data: packed})
}

// CodeAt reports non-empty code for every deployed contract.
func (c *ChainStub) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.abis[contract]; !ok {
		return nil, nil
	}
	return []byte{0x60, 0x80}, nil
}

// CallContract decodes the read, records it and packs the handler outputs.
func (c *ChainStub) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	c.t.Helper()
	if msg.To == nil {
		return nil, fmt.Errorf("call without recipient")
	}

	c.mu.Lock()
	parsed, ok := c.abis[*msg.To]
	c.mu.Unlock()
	if !ok {
		return nil, nil
	}

	method, err := parsed.MethodById(msg.Data)
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.calls = append(c.calls, ChainCall{To: *msg.To, From: msg.From, Method: method.Name, Args: args})
	h, ok := c.handlers[msg.To.Hex()+"."+method.Name]
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("execution reverted: no handler for %s", method.Name)
	}

	outputs, err := h(args)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(outputs...)
}

// FilterLogs returns the queued logs.
func (c *ChainStub) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]types.Log(nil), c.logs...), nil
}

// SubscribeFilterLogs delivers the queued logs whose first topic matches the query,
// then waits until the subscription is closed.
func (c *ChainStub) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	c.mu.Lock()
	c.queries = append(c.queries, q)
	var matching []types.Log
	for _, l := range c.logs {
		if len(q.Topics) > 0 && len(q.Topics[0]) > 0 && l.Topics[0] != q.Topics[0][0] {
			continue
		}
		matching = append(matching, l)
	}
	c.mu.Unlock()

	return event.NewSubscription(func(quit <-chan struct{}) error {
		for _, l := range matching {
			select {
			case ch <- l:
			case <-quit:
				return nil
			}
		}
		<-quit
		return nil
	}), nil
}

// NewChainStub creates an empty chain stub.
func NewChainStub(t *testing.T) *ChainStub {
	return &ChainStub{
		t:        t,
		abis:     make(map[common.Address]abi.ABI),
		handlers: make(map[string]CallHandler),
	}
}
