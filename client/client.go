/*
Package client talks to a running valset node over the tendermint RPC.

It exposes the roster queries and transaction submission so that tools do
not need to know the query paths or the JSON layout of the results.
*/
package client

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/x/valconfig"
	"github.com/iov-one/valset/x/validatorset"
	cmn "github.com/tendermint/tendermint/libs/common"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

// Conn is the part of the tendermint RPC client used here.
type Conn interface {
	ABCIQuery(path string, data cmn.HexBytes) (*ctypes.ResultABCIQuery, error)
	BroadcastTxCommit(tx tmtypes.Tx) (*ctypes.ResultBroadcastTxCommit, error)
}

var _ Conn = (*rpcclient.HTTP)(nil)

// NewHTTPConnection takes a URL and sends all requests to the remote node
func NewHTTPConnection(remote string) *rpcclient.HTTP {
	return rpcclient.NewHTTP(remote, "/websocket")
}

// Client wraps a connection with typed accessors.
type Client struct {
	conn Conn
}

// NewClient wraps an existing connection.
func NewClient(conn Conn) *Client {
	return &Client{conn: conn}
}

// Validators returns the current roster in order.
func (c *Client) Validators() ([]validatorset.ValidatorInfo, error) {
	var vs []validatorset.ValidatorInfo
	if err := c.query("/validatorset", &vs); err != nil {
		return nil, err
	}
	return vs, nil
}

// IsValidator returns true if the address is part of the roster.
func (c *Client) IsValidator(addr valset.Address) (bool, error) {
	var ok bool
	err := c.query("/validatorset/is/"+hex.EncodeToString(addr), &ok)
	return ok, err
}

// ChangeEvent returns the change event with the given sequence.
func (c *Client) ChangeEvent(seq uint64) (*validatorset.ChangeEvent, error) {
	var e validatorset.ChangeEvent
	if err := c.query(fmt.Sprintf("/validatorset/events/%d", seq), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ValidatorConfig returns the keys declared by the validator.
func (c *Client) ValidatorConfig(addr valset.Address) (*valconfig.Config, error) {
	var conf valconfig.Config
	if err := c.query("/valconfig/"+hex.EncodeToString(addr), &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Client) query(path string, dst interface{}) error {
	res, err := c.conn.ABCIQuery(path, nil)
	if err != nil {
		return errors.Wrapf(errors.ErrNetwork, "query %s: %s", path, err)
	}
	if resp := res.Response; resp.IsErr() {
		return errors.Wrapf(errors.ErrState, "query %s: (%d) %s", path, resp.Code, resp.Log)
	}
	if err := json.Unmarshal(res.Response.Value, dst); err != nil {
		return errors.Wrapf(errors.ErrModel, "decode %s: %s", path, err)
	}
	return nil
}

// Result is the outcome of a committed transaction.
type Result struct {
	Height int64
	Hash   []byte
	Data   []byte
	Log    string
}

// CommitTx submits a transaction and waits until it is included in a block.
func (c *Client) CommitTx(tx valset.Marshaller) (*Result, error) {
	raw, err := tx.Marshal()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "marshaling: %s", err)
	}
	res, err := c.conn.BroadcastTxCommit(raw)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "submit tx: %s", err)
	}
	if res.CheckTx.IsErr() {
		return nil, errors.Wrapf(errors.ErrState, "check tx: (%d) %s", res.CheckTx.Code, res.CheckTx.Log)
	}
	if res.DeliverTx.IsErr() {
		return nil, errors.Wrapf(errors.ErrState, "deliver tx: (%d) %s", res.DeliverTx.Code, res.DeliverTx.Log)
	}
	return &Result{
		Height: res.Height,
		Hash:   res.Hash,
		Data:   res.DeliverTx.Data,
		Log:    res.DeliverTx.Log,
	}, nil
}
