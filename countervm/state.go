// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/ava-labs/avalanchego/database/versiondb"
)

var (
	// These are prefixes for db keys.
	// It's important to set different prefixes for each separate database objects.
	singletonStatePrefix = []byte("singleton")
	accountStatePrefix   = []byte("account")

	_ State = &state{}
)

// State combines the account store and the initialization flag behind a
// versioned database: every invocation's writes stay pending until
// Commit, and Abort discards them.
type State interface {
	InitializedState
	AccountState

	Commit() error
	Abort()
	Close() error
}

type state struct {
	InitializedState
	AccountState

	baseDB *versiondb.Database
}

func NewState(db database.Database) State {
	// create a new baseDB
	baseDB := versiondb.New(db)

	// create a prefixed "singletonDB" from baseDB
	singletonDB := prefixdb.New(singletonStatePrefix, baseDB)
	// create a prefixed "accountDB" from baseDB
	accountDB := prefixdb.New(accountStatePrefix, baseDB)

	// return state with created sub state components
	return &state{
		InitializedState: NewInitializedState(singletonDB),
		AccountState:     NewAccountState(accountDB),
		baseDB:           baseDB,
	}
}

// Commit commits pending operations to baseDB
func (s *state) Commit() error {
	return s.baseDB.Commit()
}

// Abort discards pending operations
func (s *state) Abort() {
	s.baseDB.Abort()
}

// Close closes the underlying base database
func (s *state) Close() error {
	return s.baseDB.Close()
}
