// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/wrappers"
)

const (
	// InstructionLen is the exact wire size of an encoded instruction:
	// a one-byte discriminant followed by a little-endian uint32 amount.
	InstructionLen = wrappers.ByteLen + wrappers.IntLen
)

var ErrMalformedInstruction = errors.New("malformed instruction")

// Op is the instruction discriminant.
type Op byte

const (
	OpIncrement Op = iota
	OpDecrement
)

func (op Op) String() string {
	switch op {
	case OpIncrement:
		return "increment"
	case OpDecrement:
		return "decrement"
	default:
		return fmt.Sprintf("op(%d)", byte(op))
	}
}

// OpFromString is the inverse of Op.String for the known ops.
func OpFromString(s string) (Op, error) {
	switch s {
	case "increment":
		return OpIncrement, nil
	case "decrement":
		return OpDecrement, nil
	default:
		return 0, fmt.Errorf("unknown op %q", s)
	}
}

// Instruction is the caller-supplied payload decoded from the raw
// instruction bytes of one invocation. It is built per invocation and
// discarded after the handler returns.
type Instruction struct {
	Op     Op
	Amount uint32
}

func MarshalInstruction(in Instruction) []byte {
	raw := make([]byte, InstructionLen)
	raw[0] = byte(in.Op)
	binary.LittleEndian.PutUint32(raw[1:], in.Amount)
	return raw
}

// UnmarshalInstruction parses [raw] as a discriminant byte followed by a
// little-endian uint32 amount. The buffer must be exactly
// [InstructionLen] bytes and the discriminant must name a known op.
func UnmarshalInstruction(raw []byte) (Instruction, error) {
	if len(raw) != InstructionLen {
		return Instruction{}, ErrMalformedInstruction
	}
	op := Op(raw[0])
	if op != OpIncrement && op != OpDecrement {
		return Instruction{}, ErrMalformedInstruction
	}
	return Instruction{
		Op:     op,
		Amount: binary.LittleEndian.Uint32(raw[wrappers.ByteLen:]),
	}, nil
}
