// Package info reports where the ledger is stored and how much it holds.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ledger/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("LEDGER_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "LEDGER_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "LEDGER_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	source := n.Config.Source()
	if source == "" {
		source = "none"
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Config file"), source)
	tbl.AddRow(bold.Sprint("Ledger"), n.Persistence.Path())
	tbl.AddRow(bold.Sprint("Currency"), n.Config.Currency())
	tbl.AddRow(bold.Sprint("Fallback"), n.Config.Fallback())

	if !n.Persistence.Exists() {
		tbl.AddRow(bold.Sprint("Journals"), "no ledger saved yet")
		tbl.RightAlign(0)
		_, _ = fmt.Fprintln(out, tbl)
		return nil
	}

	l, err := n.Persistence.Load()
	if err != nil {
		return err
	}
	accounts, transactions, changes := 0, 0, 0
	for _, j := range l.Journals {
		accounts += len(j.Accounts)
		transactions += len(j.Transactions)
		for _, t := range j.Transactions {
			changes += len(t.Changes)
		}
	}
	tbl.AddRow(bold.Sprint("Journals"), len(l.Journals))
	tbl.AddRow(bold.Sprint("Accounts"), accounts)
	tbl.AddRow(bold.Sprint("Transactions"), transactions)
	tbl.AddRow(bold.Sprint("Account changes"), changes)
	tbl.AddRow(bold.Sprint("Currencies"), len(l.Currencies))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
