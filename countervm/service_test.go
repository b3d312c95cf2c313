// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/formatting"
	"github.com/stretchr/testify/assert"

	cjson "github.com/ava-labs/avalanchego/utils/json"
)

func TestServiceIncrementDecrement(t *testing.T) {
	assert := assert.New(t)

	rt, err := newTestRuntime(memdb.New(), 10)
	assert.NoError(err)
	service := Service{rt: rt}

	// An empty account ID targets the default counter account.
	reply := CountReply{}
	assert.NoError(service.Increment(nil, &MutateArgs{Amount: 5}, &reply))
	assert.Equal(cjson.Uint32(15), reply.Count)

	assert.NoError(service.Decrement(nil, &MutateArgs{Amount: 3}, &reply))
	assert.Equal(cjson.Uint32(12), reply.Count)

	assert.NoError(service.GetCount(nil, &GetCountArgs{}, &reply))
	assert.Equal(cjson.Uint32(12), reply.Count)
}

func TestServiceCreateAccount(t *testing.T) {
	assert := assert.New(t)

	rt, err := newTestRuntime(memdb.New(), 0)
	assert.NoError(err)
	service := Service{rt: rt}

	key := ids.GenerateTestID()
	createReply := CreateAccountReply{}
	assert.NoError(service.CreateAccount(nil, &CreateAccountArgs{Account: key}, &createReply))
	assert.True(createReply.Success)

	reply := CountReply{}
	assert.NoError(service.Increment(nil, &MutateArgs{Account: key, Amount: 9}, &reply))
	assert.Equal(cjson.Uint32(9), reply.Count)

	// creating the same account twice fails
	assert.Error(service.CreateAccount(nil, &CreateAccountArgs{Account: key}, &createReply))
}

func TestServiceInvoke(t *testing.T) {
	assert := assert.New(t)

	rt, err := newTestRuntime(memdb.New(), 10)
	assert.NoError(err)
	service := Service{rt: rt}

	data, err := formatting.EncodeWithChecksum(formatting.Hex, []byte{0x00, 0x05, 0x00, 0x00, 0x00})
	assert.NoError(err)

	reply := CountReply{}
	assert.NoError(service.Invoke(nil, &InvokeArgs{Data: data}, &reply))
	assert.Equal(cjson.Uint32(15), reply.Count)

	// malformed instruction bytes surface the decode failure
	bad, err := formatting.EncodeWithChecksum(formatting.Hex, []byte{0x02, 0x05, 0x00, 0x00, 0x00})
	assert.NoError(err)
	assert.ErrorIs(service.Invoke(nil, &InvokeArgs{Data: bad}, &reply), ErrMalformedInstruction)
}

func TestStaticService(t *testing.T) {
	assert := assert.New(t)

	ss := CreateStaticService()

	encodeReply := EncodeInstructionReply{}
	assert.NoError(ss.EncodeInstruction(nil, &EncodeInstructionArgs{Op: "increment", Amount: 5}, &encodeReply))

	raw, err := formatting.Decode(formatting.Hex, encodeReply.Data)
	assert.NoError(err)
	assert.Equal([]byte{0x00, 0x05, 0x00, 0x00, 0x00}, raw)

	decodeReply := DecodeInstructionReply{}
	assert.NoError(ss.DecodeInstruction(nil, &DecodeInstructionArgs{Data: encodeReply.Data}, &decodeReply))
	assert.Equal("increment", decodeReply.Op)
	assert.Equal(cjson.Uint32(5), decodeReply.Amount)

	assert.Error(ss.EncodeInstruction(nil, &EncodeInstructionArgs{Op: "reset"}, &encodeReply))
}
