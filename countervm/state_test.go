// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/assert"
)

func TestStatePersistence(t *testing.T) {
	assert := assert.New(t)

	db := memdb.New()
	st := NewState(db)

	acc := &Account{
		Key:   ids.GenerateTestID(),
		Owner: ID,
		Data:  MarshalCounter(Counter{Count: 42}),
	}
	assert.NoError(st.PutAccount(acc))
	assert.NoError(st.SetInitialized())
	assert.NoError(st.Commit())

	// A fresh state over the same db sees the committed account.
	st2 := NewState(db)
	got, err := st2.GetAccount(acc.Key)
	assert.NoError(err)
	assert.Equal(acc.Owner, got.Owner)
	assert.Equal(acc.Data, got.Data)

	initialized, err := st2.IsInitialized()
	assert.NoError(err)
	assert.True(initialized)
}

func TestStateAbort(t *testing.T) {
	assert := assert.New(t)

	db := memdb.New()
	st := NewState(db)

	acc := &Account{Key: ids.GenerateTestID(), Owner: ID, Data: MarshalCounter(Counter{})}
	assert.NoError(st.PutAccount(acc))
	st.Abort()
	st.ClearCache()

	_, err := st.GetAccount(acc.Key)
	assert.ErrorIs(err, database.ErrNotFound)
}

func TestStateGetMissingAccount(t *testing.T) {
	assert := assert.New(t)

	st := NewState(memdb.New())
	_, err := st.GetAccount(ids.GenerateTestID())
	assert.ErrorIs(err, database.ErrNotFound)
}

func TestStateDeleteAccount(t *testing.T) {
	assert := assert.New(t)

	st := NewState(memdb.New())
	acc := &Account{Key: ids.GenerateTestID(), Owner: ID, Data: MarshalCounter(Counter{})}
	assert.NoError(st.PutAccount(acc))
	assert.NoError(st.Commit())

	assert.NoError(st.DeleteAccount(acc.Key))
	assert.NoError(st.Commit())

	_, err := st.GetAccount(acc.Key)
	assert.ErrorIs(err, database.ErrNotFound)
}
