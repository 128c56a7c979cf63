package contracts

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// Backend is the read side of a chain node needed by the bindings: contract calls
// and log subscriptions. Transactions are never signed or sent through it.
type Backend interface {
	bind.ContractCaller
	bind.ContractFilterer
}

// UnsignedTx is a populated but unsigned transaction. The caller signs and submits it.
type UnsignedTx struct {
	To    common.Address `json:"to"`
	Data  hexutil.Bytes  `json:"data"`
	Value *hexutil.Big   `json:"value,omitempty"`
}

// Wei returns the value attached to the transaction, zero when none is attached.
func (tx *UnsignedTx) Wei() *big.Int {
	if tx.Value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(tx.Value.ToInt())
}

// CallMsg returns the transaction as a call message sent from the given account,
// e.g. for gas estimation before signing.
func (tx *UnsignedTx) CallMsg(from common.Address) ethereum.CallMsg {
	to := tx.To
	return ethereum.CallMsg{
		From:  from,
		To:    &to,
		Data:  tx.Data,
		Value: tx.Wei(),
	}
}

// Contract binds one deployed contract: it packs unsigned transactions, issues
// read calls and watches logs.
type Contract struct {
	name    string
	address common.Address
	abi     abi.ABI
	bound   *bind.BoundContract
}

// Address returns the address of the deployed contract.
func (c *Contract) Address() common.Address { return c.address }

// ABI returns the parsed contract interface.
func (c *Contract) ABI() abi.ABI { return c.abi }

// Transact packs a call of method into an unsigned transaction carrying value.
// A nil value attaches no funds.
func (c *Contract) Transact(method string, value *big.Int, args ...any) (*UnsignedTx, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s.%s: %w", c.name, method, err)
	}

	tx := &UnsignedTx{To: c.address, Data: data}
	if value != nil {
		tx.Value = (*hexutil.Big)(new(big.Int).Set(value))
	}
	return tx, nil
}

// Call invokes a read-only method as from and returns the unpacked outputs.
// The zero address calls anonymously.
func (c *Contract) Call(ctx context.Context, from common.Address, method string, args ...any) ([]any, error) {
	var out []any
	err := c.bound.Call(&bind.CallOpts{Context: ctx, From: from}, &out, method, args...)
	if err != nil {
		return nil, fmt.Errorf("call %s.%s: %w", c.name, method, err)
	}
	return out, nil
}

// WatchLogs subscribes to the named contract event. Each query slice filters one
// indexed argument, in declaration order.
func (c *Contract) WatchLogs(ctx context.Context, name string, query ...[]any) (chan types.Log, event.Subscription, error) {
	logs, sub, err := c.bound.WatchLogs(&bind.WatchOpts{Context: ctx}, name, query...)
	if err != nil {
		return nil, nil, fmt.Errorf("watch %s.%s: %w", c.name, name, err)
	}
	return logs, sub, nil
}

// UnpackLog decodes both indexed and non-indexed arguments of a log of the named event.
func (c *Contract) UnpackLog(name string, log types.Log) (map[string]any, error) {
	out := make(map[string]any)
	if err := c.bound.UnpackLogIntoMap(out, name, log); err != nil {
		return nil, fmt.Errorf("unpack %s.%s log: %w", c.name, name, err)
	}
	return out, nil
}

// NewContract parses abiJSON and binds it to the contract deployed at address.
func NewContract(name, abiJSON string, address common.Address, backend Backend) (*Contract, error) {
	if backend == nil {
		return nil, fmt.Errorf("bind %s: backend is nil", name)
	}
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("parse %s abi: %w", name, err)
	}

	return &Contract{
		name:    name,
		address: address,
		abi:     parsed,
		bound:   bind.NewBoundContract(address, parsed, backend, nil, backend),
	}, nil
}
