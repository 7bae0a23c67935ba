package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/client"
	"github.com/iov-one/valset/errors"
)

const defaultNode = "tcp://localhost:26657"

// ValidatorsCmd prints the roster of a running node as JSON. With an
// -address flag it prints only whether that address is a validator.
func ValidatorsCmd(out io.Writer, args []string) error {
	fl := flag.NewFlagSet("validators", flag.ContinueOnError)
	node := fl.String("node", defaultNode, "tendermint rpc address")
	addr := fl.String("address", "", "hex address to check")
	if err := fl.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return printValidators(out, client.NewClient(client.NewHTTPConnection(*node)), *addr)
}

func printValidators(out io.Writer, c *client.Client, addr string) error {
	var res interface{}
	if addr != "" {
		a, err := valset.ParseAddress(addr)
		if err != nil {
			return err
		}
		ok, err := c.IsValidator(a)
		if err != nil {
			return err
		}
		res = ok
	} else {
		vs, err := c.Validators()
		if err != nil {
			return err
		}
		res = vs
	}
	js, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	_, err = fmt.Fprintln(out, string(js))
	return err
}
