// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"errors"

	"github.com/ava-labs/avalanchego/ids"

	log "github.com/inconshreveable/log15"
)

var (
	ErrMissingAccount = errors.New("instruction requires an account")

	_ Program = ProcessInstruction
)

// Program is the capability the runtime invokes: given the program's own
// ID, the accounts named by the transaction, and the raw instruction
// bytes, perform exactly one state transition on account data. Any error
// aborts the invocation.
type Program func(programID ids.ID, accounts []*Account, instruction []byte) error

// ProcessInstruction is the counter program's entrypoint.
// It decodes the instruction, decodes the first account's data as a
// counter state record, applies the requested mutation, and rewrites the
// record into the same buffer, same length, no reallocation.
func ProcessInstruction(_ ids.ID, accounts []*Account, instruction []byte) error {
	if len(accounts) == 0 {
		return ErrMissingAccount
	}
	acc := accounts[0]

	in, err := UnmarshalInstruction(instruction)
	if err != nil {
		return err
	}

	counter, err := UnmarshalCounter(acc.Data)
	if err != nil {
		return err
	}

	// Unchecked arithmetic: the counter wraps on overflow and underflow.
	switch in.Op {
	case OpIncrement:
		counter.Count += in.Amount
	case OpDecrement:
		counter.Count -= in.Amount
	}

	copy(acc.Data, MarshalCounter(counter))

	log.Info("counter updated", "account", acc.Key, "count", counter.Count)
	return nil
}
