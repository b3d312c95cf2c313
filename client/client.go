// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/formatting"
	"github.com/ava-labs/avalanchego/utils/rpc"

	cjson "github.com/ava-labs/avalanchego/utils/json"

	"github.com/counter-labs/countervm/countervm"
)

// Client defines countervm client operations.
type Client interface {
	// CreateAccount allocates a fresh zeroed counter account
	CreateAccount(ctx context.Context, account ids.ID) (bool, error)

	// Increment adds [amount] to the counter in [account] and returns
	// the new value
	Increment(ctx context.Context, account ids.ID, amount uint32) (uint32, error)

	// Decrement subtracts [amount] from the counter in [account] and
	// returns the new value
	Decrement(ctx context.Context, account ids.ID, amount uint32) (uint32, error)

	// GetCount fetches the current counter value in [account]
	GetCount(ctx context.Context, account ids.ID) (uint32, error)

	// Invoke submits raw instruction bytes against [account]
	Invoke(ctx context.Context, account ids.ID, instruction []byte) (uint32, error)
}

// New creates a new client object.
func New(uri string) Client {
	req := rpc.NewEndpointRequester(uri, "", "counter")
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) CreateAccount(ctx context.Context, account ids.ID) (bool, error) {
	resp := new(countervm.CreateAccountReply)
	err := cli.req.SendRequest(ctx,
		"createAccount",
		&countervm.CreateAccountArgs{Account: account},
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Increment(ctx context.Context, account ids.ID, amount uint32) (uint32, error) {
	return cli.mutate(ctx, "increment", account, amount)
}

func (cli *client) Decrement(ctx context.Context, account ids.ID, amount uint32) (uint32, error) {
	return cli.mutate(ctx, "decrement", account, amount)
}

func (cli *client) mutate(ctx context.Context, method string, account ids.ID, amount uint32) (uint32, error) {
	resp := new(countervm.CountReply)
	err := cli.req.SendRequest(ctx,
		method,
		&countervm.MutateArgs{Account: account, Amount: cjson.Uint32(amount)},
		resp,
	)
	if err != nil {
		return 0, err
	}
	return uint32(resp.Count), nil
}

func (cli *client) GetCount(ctx context.Context, account ids.ID) (uint32, error) {
	resp := new(countervm.CountReply)
	err := cli.req.SendRequest(ctx,
		"getCount",
		&countervm.GetCountArgs{Account: account},
		resp,
	)
	if err != nil {
		return 0, err
	}
	return uint32(resp.Count), nil
}

func (cli *client) Invoke(ctx context.Context, account ids.ID, instruction []byte) (uint32, error) {
	data, err := formatting.EncodeWithChecksum(formatting.Hex, instruction)
	if err != nil {
		return 0, err
	}

	resp := new(countervm.CountReply)
	err = cli.req.SendRequest(ctx,
		"invoke",
		&countervm.InvokeArgs{Account: account, Data: data},
		resp,
	)
	if err != nil {
		return 0, err
	}
	return uint32(resp.Count), nil
}
