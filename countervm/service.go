// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/formatting"

	cjson "github.com/ava-labs/avalanchego/utils/json"
)

// ServiceName is the namespace the API methods are registered under.
const ServiceName = "counter"

// Service is the API service over the counter runtime.
type Service struct{ rt *Runtime }

// CreateAccountArgs are the arguments for CreateAccount
type CreateAccountArgs struct {
	Account ids.ID `json:"account"`
}

// CreateAccountReply is the reply from CreateAccount
type CreateAccountReply struct {
	Success bool `json:"success"`
}

// CreateAccount allocates a fresh zeroed counter account with ID
// [args.Account]
func (s *Service) CreateAccount(_ *http.Request, args *CreateAccountArgs, reply *CreateAccountReply) error {
	if _, err := s.rt.CreateAccount(args.Account); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

// MutateArgs are the arguments for Increment and Decrement.
// An empty [Account] targets the default counter account.
type MutateArgs struct {
	Account ids.ID       `json:"account"`
	Amount  cjson.Uint32 `json:"amount"`
}

// CountReply carries the counter value after the call
type CountReply struct {
	Count cjson.Uint32 `json:"count"`
}

// Increment adds [args.Amount] to the counter in [args.Account]
func (s *Service) Increment(_ *http.Request, args *MutateArgs, reply *CountReply) error {
	return s.mutate(OpIncrement, args, reply)
}

// Decrement subtracts [args.Amount] from the counter in [args.Account]
func (s *Service) Decrement(_ *http.Request, args *MutateArgs, reply *CountReply) error {
	return s.mutate(OpDecrement, args, reply)
}

func (s *Service) mutate(op Op, args *MutateArgs, reply *CountReply) error {
	key := accountOrDefault(args.Account)
	raw := MarshalInstruction(Instruction{Op: op, Amount: uint32(args.Amount)})
	if err := s.rt.Invoke([]ids.ID{key}, raw); err != nil {
		return err
	}
	return s.readCount(key, reply)
}

// GetCountArgs are the arguments for GetCount
type GetCountArgs struct {
	Account ids.ID `json:"account"`
}

// GetCount returns the current counter value in [args.Account]
func (s *Service) GetCount(_ *http.Request, args *GetCountArgs, reply *CountReply) error {
	return s.readCount(accountOrDefault(args.Account), reply)
}

// InvokeArgs are the arguments for Invoke.
// [Data] is the hex-encoded raw instruction bytes.
type InvokeArgs struct {
	Account ids.ID `json:"account"`
	Data    string `json:"data"`
}

// Invoke runs one invocation with caller-built instruction bytes
func (s *Service) Invoke(_ *http.Request, args *InvokeArgs, reply *CountReply) error {
	raw, err := formatting.Decode(formatting.Hex, args.Data)
	if err != nil {
		return fmt.Errorf("couldn't decode instruction data: %w", err)
	}
	key := accountOrDefault(args.Account)
	if err := s.rt.Invoke([]ids.ID{key}, raw); err != nil {
		return err
	}
	return s.readCount(key, reply)
}

func (s *Service) readCount(key ids.ID, reply *CountReply) error {
	acc, err := s.rt.GetAccount(key)
	if err != nil {
		return err
	}
	counter, err := UnmarshalCounter(acc.Data)
	if err != nil {
		return err
	}
	reply.Count = cjson.Uint32(counter.Count)
	return nil
}

func accountOrDefault(id ids.ID) ids.ID {
	if id == ids.Empty {
		return DefaultAccountID
	}
	return id
}
