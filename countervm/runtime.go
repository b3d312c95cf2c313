// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countervm

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/rpc/v2"

	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"

	cjson "github.com/ava-labs/avalanchego/utils/json"
)

const (
	Name = "countervm"
)

var (
	Version = version.NewDefaultVersion(1, 0, 0)

	// ID identifies the counter program itself.
	ID = ids.ID{'c', 'o', 'u', 'n', 't', 'e', 'r', 'v', 'm'}

	// DefaultAccountID is the well-known counter account seeded at genesis.
	DefaultAccountID = ids.ID{'c', 'o', 'u', 'n', 't', 'e', 'r'}

	errBadGenesisBytes = errors.New("genesis data should be an encoded counter state (4 bytes) or empty")
	errAccountExists   = errors.New("account already exists")
)

// Runtime is the invocation harness around the counter program. It
// stands in for the pieces of the host the program needs: account
// storage, exclusive access to account buffers for the duration of one
// invocation, and commit-or-abort atomicity around each invocation. It
// is not a full chain runtime; transactions, signing, fees, and program
// loading all live above this layer.
type Runtime struct {
	// Serializes invocations; the program assumes exclusive access to
	// account buffers for one call.
	lock sync.Mutex

	state   State
	program Program
}

// Initialize this runtime.
// [db] backs all persisted accounts.
// [program] is the instruction handler invoked for every instruction.
// The first counter value of the default account is [genesisData], an
// encoded counter state; empty genesis data means a zero counter.
func (rt *Runtime) Initialize(db database.Database, program Program, genesisData []byte) error {
	log.Info("initializing counter runtime", "version", Version)

	rt.state = NewState(db)
	rt.program = program

	initialized, err := rt.state.IsInitialized()
	if err != nil {
		return err
	}
	if initialized {
		return nil
	}

	// Fresh database: seed the default counter account. The program
	// never creates or sizes accounts, that is the host's job.
	if len(genesisData) == 0 {
		genesisData = MarshalCounter(Counter{})
	}
	if _, err := UnmarshalCounter(genesisData); err != nil {
		return errBadGenesisBytes
	}

	data := make([]byte, CounterLen)
	copy(data, genesisData)
	if err := rt.state.PutAccount(&Account{
		Key:   DefaultAccountID,
		Owner: ID,
		Data:  data,
	}); err != nil {
		return fmt.Errorf("error while saving genesis account: %w", err)
	}

	if err := rt.state.SetInitialized(); err != nil {
		return fmt.Errorf("error while setting db to initialized: %w", err)
	}

	// Flush the genesis writes to the underlying db
	return rt.state.Commit()
}

// Invoke runs one invocation of the program against the accounts named
// by [keys], in order. The instruction bytes are passed through to the
// program untouched. Accounts are loaded from state, mutated in memory
// by the program, and written back only if the program reports success;
// any failure aborts the pending writes and is returned unmodified.
func (rt *Runtime) Invoke(keys []ids.ID, instruction []byte) error {
	rt.lock.Lock()
	defer rt.lock.Unlock()

	accounts := make([]*Account, 0, len(keys))
	for _, key := range keys {
		acc, err := rt.state.GetAccount(key)
		if err != nil {
			return err
		}
		// The harness grants write access to every named account for
		// the duration of the call.
		acc.IsWritable = true
		accounts = append(accounts, acc)
	}

	if err := rt.program(ID, accounts, instruction); err != nil {
		rt.abort()
		return err
	}

	for _, acc := range accounts {
		if !acc.IsWritable {
			continue
		}
		if err := rt.state.PutAccount(acc); err != nil {
			rt.abort()
			return err
		}
	}
	return rt.state.Commit()
}

// CreateAccount allocates a zeroed counter account owned by the program.
func (rt *Runtime) CreateAccount(key ids.ID) (*Account, error) {
	rt.lock.Lock()
	defer rt.lock.Unlock()

	switch _, err := rt.state.GetAccount(key); err {
	case database.ErrNotFound:
	case nil:
		return nil, errAccountExists
	default:
		return nil, err
	}

	acc := &Account{
		Key:   key,
		Owner: ID,
		Data:  MarshalCounter(Counter{}),
	}
	if err := rt.state.PutAccount(acc); err != nil {
		rt.abort()
		return nil, err
	}
	if err := rt.state.Commit(); err != nil {
		return nil, err
	}
	return acc, nil
}

// GetAccount returns the stored account for [key].
func (rt *Runtime) GetAccount(key ids.ID) (*Account, error) {
	rt.lock.Lock()
	defer rt.lock.Unlock()

	return rt.state.GetAccount(key)
}

// Shutdown closes the backing state.
func (rt *Runtime) Shutdown() error {
	if rt.state == nil {
		return nil
	}
	return rt.state.Close()
}

// abort discards pending state writes. The account cache may hold
// records from the failed invocation, so it is dropped with them.
func (rt *Runtime) abort() {
	rt.state.Abort()
	rt.state.ClearCache()
}

// CreateHandlers returns a map where:
// Keys: The path extension for this runtime's API (empty for the main
// service, "/static" for the stateless helpers)
// Values: The handler for the API
func (rt *Runtime) CreateHandlers() (map[string]http.Handler, error) {
	server := rpc.NewServer()
	codec := cjson.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	if err := server.RegisterService(&Service{rt: rt}, ServiceName); err != nil {
		return nil, err
	}

	staticServer := rpc.NewServer()
	staticServer.RegisterCodec(codec, "application/json")
	staticServer.RegisterCodec(codec, "application/json;charset=UTF-8")
	if err := staticServer.RegisterService(CreateStaticService(), ServiceName); err != nil {
		return nil, err
	}

	return map[string]http.Handler{
		"":        server,
		"/static": staticServer,
	}, nil
}
