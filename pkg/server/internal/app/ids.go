package app

import (
	"fmt"
	"math/big"
)

// MaxBatchSize bounds the number of identifiers accepted by a single batch request.
const MaxBatchSize = 100

// ParseID parses a decimal, non-negative on-chain identifier.
func ParseID(s string) (*big.Int, error) {
	if s == "" {
		return nil, NewEmptyIDError()
	}
	id, ok := new(big.Int).SetString(s, 10)
	if !ok || id.Sign() < 0 {
		return nil, NewInvalidIDError(s)
	}
	return id, nil
}

// ParseIDs parses every identifier of a batch request, keeping the input order.
func ParseIDs(ss []string) ([]*big.Int, error) {
	if len(ss) == 0 {
		return nil, NewEmptyBatchError()
	}
	if len(ss) > MaxBatchSize {
		return nil, NewBatchTooLargeError(len(ss))
	}

	ids := make([]*big.Int, 0, len(ss))
	for _, s := range ss {
		id, err := ParseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// NewEmptyIDError returns an Error indicating that the identifier is missing.
func NewEmptyIDError() Error {
	const msg = "An identifier must be provided."
	return NewIncorrectInputError(msg, msg)
}

// NewInvalidIDError returns an Error indicating that the identifier is not a non-negative decimal number.
func NewInvalidIDError(s string) Error {
	msg := fmt.Sprintf("The identifier %q is not a valid non-negative decimal number.", s)
	return NewIncorrectInputError(msg, msg)
}

// NewEmptyBatchError returns an Error indicating that a batch request carried no identifiers.
func NewEmptyBatchError() Error {
	const msg = "At least one identifier must be provided."
	return NewIncorrectInputError(msg, msg)
}

// NewBatchTooLargeError returns an Error indicating that a batch request exceeds MaxBatchSize.
func NewBatchTooLargeError(n int) Error {
	msg := fmt.Sprintf("The batch holds %d identifiers, at most %d are accepted.", n, MaxBatchSize)
	return NewIncorrectInputError(msg, msg)
}
