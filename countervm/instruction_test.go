// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionWireFormat(t *testing.T) {
	assert := assert.New(t)

	// tag byte then little-endian amount
	assert.Equal([]byte{0x00, 0x05, 0x00, 0x00, 0x00}, MarshalInstruction(Instruction{Op: OpIncrement, Amount: 5}))
	assert.Equal([]byte{0x01, 0x03, 0x00, 0x00, 0x00}, MarshalInstruction(Instruction{Op: OpDecrement, Amount: 3}))
	assert.Equal([]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF}, MarshalInstruction(Instruction{Op: OpIncrement, Amount: math.MaxUint32}))
}

func TestInstructionRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, in := range []Instruction{
		{Op: OpIncrement, Amount: 0},
		{Op: OpIncrement, Amount: 1},
		{Op: OpDecrement, Amount: 42},
		{Op: OpIncrement, Amount: math.MaxUint32},
		{Op: OpDecrement, Amount: math.MaxUint32},
	} {
		parsed, err := UnmarshalInstruction(MarshalInstruction(in))
		assert.NoError(err)
		assert.Equal(in, parsed)
	}
}

func TestUnmarshalInstructionBadLength(t *testing.T) {
	assert := assert.New(t)

	for _, raw := range [][]byte{
		nil,
		{},
		{0x00},
		{0x00, 0x05, 0x00, 0x00},             // truncated payload
		{0x00, 0x05, 0x00, 0x00, 0x00, 0x00}, // trailing byte
	} {
		_, err := UnmarshalInstruction(raw)
		assert.ErrorIs(err, ErrMalformedInstruction)
	}
}

func TestUnmarshalInstructionBadDiscriminant(t *testing.T) {
	assert := assert.New(t)

	for _, tag := range []byte{0x02, 0x7F, 0xFF} {
		_, err := UnmarshalInstruction([]byte{tag, 0x05, 0x00, 0x00, 0x00})
		assert.ErrorIs(err, ErrMalformedInstruction)
	}
}

func TestOpString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("increment", OpIncrement.String())
	assert.Equal("decrement", OpDecrement.String())

	op, err := OpFromString("increment")
	assert.NoError(err)
	assert.Equal(OpIncrement, op)

	op, err = OpFromString("decrement")
	assert.NoError(err)
	assert.Equal(OpDecrement, op)

	_, err = OpFromString("reset")
	assert.Error(err)
}
