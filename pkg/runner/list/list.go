// Package list prints the stored ledger without prompting.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/printers"
	"tableflip.dev/ledger/pkg/store"
)

type List struct {
	ShowID bool
	// Journal limits the listing to journals with this name.
	Journal     string
	Output      string
	Persistence store.Persistence
	Out         io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	l, err := n.Persistence.Load()
	if err != nil {
		return err
	}
	l = n.filtered(l)

	switch n.Output {
	case "json":
		b, err := json.MarshalIndent(l, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))

	default:
		pp := printers.PrettyPrint{Out: out, ShowID: n.ShowID, Currencies: l.Currencies}
		pp.NewLine()
		pp.Ledger(l)
	}
	return nil
}

func (n *List) filtered(l *ledger.Ledger) *ledger.Ledger {
	if n.Journal == "" {
		return l
	}
	c := ledger.New()
	c.Currencies = l.Currencies
	for id, j := range l.Journals {
		if j.Name == n.Journal {
			c.Journals[id] = j
		}
	}
	return c
}
