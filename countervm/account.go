// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/wrappers"
)

const (
	// accountPrefixLen is the fixed portion of a persisted account
	// record: owner ID, balance, and the data length.
	accountPrefixLen = 32 /* ID Len */ + wrappers.LongLen + wrappers.IntLen
)

var ErrInvalidAccountFormat = errors.New("invalid account record format")

// Account is a storage slot handle passed into an invocation. The
// program sees the mutable [Data] buffer; everything else is metadata
// maintained by the runtime. [IsSigner] and [IsWritable] describe the
// access the current invocation was granted and are not persisted.
type Account struct {
	Key     ids.ID
	Owner   ids.ID
	Balance uint64
	Data    []byte

	IsSigner   bool
	IsWritable bool
}

// MarshalAccount returns the persisted record for [acc]: owner, balance,
// data length, then the raw data buffer. The account key is the storage
// key, not part of the record.
func MarshalAccount(acc *Account) []byte {
	raw := make([]byte, accountPrefixLen+len(acc.Data))
	work := raw

	copy(work, acc.Owner[:])
	work = work[32:]
	binary.BigEndian.PutUint64(work, acc.Balance)
	work = work[wrappers.LongLen:]
	binary.BigEndian.PutUint32(work, uint32(len(acc.Data)))
	work = work[wrappers.IntLen:]
	copy(work, acc.Data)
	return raw
}

func UnmarshalAccount(raw []byte) (*Account, error) {
	if len(raw) < accountPrefixLen {
		return nil, ErrInvalidAccountFormat
	}
	var acc Account
	work := raw

	// Owner
	id := ids.ID{}
	copy(id[:], work[:32])
	acc.Owner = id
	work = work[32:]

	// Balance
	acc.Balance = binary.BigEndian.Uint64(work)
	work = work[wrappers.LongLen:]

	// Data
	dataLen := binary.BigEndian.Uint32(work)
	work = work[wrappers.IntLen:]
	if uint32(len(work)) != dataLen {
		return nil, ErrInvalidAccountFormat
	}
	acc.Data = make([]byte, dataLen)
	copy(acc.Data, work)
	return &acc, nil
}
