// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"github.com/ava-labs/avalanchego/cache"
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
)

const (
	accountCacheSize = 2048
)

var _ AccountState = &accountState{}

// AccountState persists account records keyed by account ID. It is the
// host-side storage the program never touches directly: the runtime
// loads an account here, hands its data buffer to the program, and
// writes the account back on success.
type AccountState interface {
	GetAccount(key ids.ID) (*Account, error)
	PutAccount(acc *Account) error
	DeleteAccount(key ids.ID) error

	ClearCache()
}

type accountState struct {
	accCache  cache.Cacher
	accountDB database.Database
}

func NewAccountState(db database.Database) AccountState {
	return &accountState{
		accCache:  &cache.LRU{Size: accountCacheSize},
		accountDB: db,
	}
}

func (s *accountState) GetAccount(key ids.ID) (*Account, error) {
	if accIntf, cached := s.accCache.Get(key); cached {
		if accIntf == nil {
			return nil, database.ErrNotFound
		}
		return accIntf.(*Account), nil
	}

	raw, err := s.accountDB.Get(key[:])
	if err != nil {
		return nil, err
	}

	acc, err := UnmarshalAccount(raw)
	if err != nil {
		return nil, err
	}
	acc.Key = key

	s.accCache.Put(key, acc)
	return acc, nil
}

func (s *accountState) PutAccount(acc *Account) error {
	raw := MarshalAccount(acc)

	s.accCache.Put(acc.Key, acc)
	return s.accountDB.Put(acc.Key[:], raw)
}

func (s *accountState) DeleteAccount(key ids.ID) error {
	s.accCache.Put(key, nil)
	return s.accountDB.Delete(key[:])
}

func (s *accountState) ClearCache() {
	s.accCache.Flush()
}
