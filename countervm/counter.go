// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/utils/wrappers"
)

const (
	// CounterLen is the exact size of an encoded counter state record.
	CounterLen = wrappers.IntLen
)

var ErrMalformedState = errors.New("malformed counter state")

// Counter is the state record persisted in a counter account's data
// buffer: a single little-endian uint32.
type Counter struct {
	Count uint32
}

func MarshalCounter(c Counter) []byte {
	raw := make([]byte, CounterLen)
	binary.LittleEndian.PutUint32(raw, c.Count)
	return raw
}

// UnmarshalCounter parses [raw] as a counter state record. The buffer
// must be exactly [CounterLen] bytes; an account that was never sized
// for a counter fails here.
func UnmarshalCounter(raw []byte) (Counter, error) {
	if len(raw) != CounterLen {
		return Counter{}, ErrMalformedState
	}
	return Counter{Count: binary.LittleEndian.Uint32(raw)}, nil
}
