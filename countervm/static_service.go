// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/utils/formatting"

	cjson "github.com/ava-labs/avalanchego/utils/json"
)

// StaticService defines the stateless helpers for the counter API
type StaticService struct{}

// CreateStaticService ...
func CreateStaticService() *StaticService {
	return &StaticService{}
}

// EncodeInstructionArgs are arguments for EncodeInstruction
type EncodeInstructionArgs struct {
	Op     string       `json:"op"`
	Amount cjson.Uint32 `json:"amount"`
}

// EncodeInstructionReply is the reply from EncodeInstruction
type EncodeInstructionReply struct {
	Data string `json:"data"`
}

// EncodeInstruction returns the hex-encoded wire form of an instruction
func (ss *StaticService) EncodeInstruction(_ *http.Request, args *EncodeInstructionArgs, reply *EncodeInstructionReply) error {
	op, err := OpFromString(args.Op)
	if err != nil {
		return err
	}
	raw := MarshalInstruction(Instruction{Op: op, Amount: uint32(args.Amount)})
	data, err := formatting.EncodeWithChecksum(formatting.Hex, raw)
	if err != nil {
		return fmt.Errorf("couldn't encode instruction as string: %w", err)
	}
	reply.Data = data
	return nil
}

// DecodeInstructionArgs are arguments for DecodeInstruction
type DecodeInstructionArgs struct {
	Data string `json:"data"`
}

// DecodeInstructionReply is the reply from DecodeInstruction
type DecodeInstructionReply struct {
	Op     string       `json:"op"`
	Amount cjson.Uint32 `json:"amount"`
}

// DecodeInstruction parses hex-encoded instruction bytes
func (ss *StaticService) DecodeInstruction(_ *http.Request, args *DecodeInstructionArgs, reply *DecodeInstructionReply) error {
	raw, err := formatting.Decode(formatting.Hex, args.Data)
	if err != nil {
		return fmt.Errorf("couldn't decode data as string: %w", err)
	}
	in, err := UnmarshalInstruction(raw)
	if err != nil {
		return err
	}
	reply.Op = in.Op.String()
	reply.Amount = cjson.Uint32(in.Amount)
	return nil
}
