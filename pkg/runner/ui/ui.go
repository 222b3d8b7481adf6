// Package ui runs the interactive ledger session.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/ledger/pkg/controller"
	"tableflip.dev/ledger/pkg/printers"
	"tableflip.dev/ledger/pkg/prompt"
	"tableflip.dev/ledger/pkg/session"
	"tableflip.dev/ledger/pkg/store"
)

type UI struct {
	Persistence store.Persistence
	// Currency is the ISO code of the currency new changes are recorded in.
	Currency string
	Fallback session.Policy

	// Prompt defaults to a promptui terminal on In and Out.
	Prompt prompt.Prompter
	In     io.Reader
	Out    io.Writer
}

// Do loads the ledger, runs pages until the user quits or ctx is done, then
// saves. A failed save is reported but does not fail the session.
func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("can not start, no persistence")
	}
	l, err := u.Persistence.Load()
	if err != nil {
		return err
	}

	currencyID := ""
	if cur := l.DefaultCurrency(u.Currency); cur != nil {
		currencyID = cur.ID
	}

	p := u.Prompt
	if p == nil {
		p = prompt.NewTerminal(u.In, u.Out)
	}

	c := controller.Controller{
		Ledger:  l,
		Prompt:  p,
		Printer: &printers.PrettyPrint{Out: u.Out, Currencies: l.Currencies},
		Out:     u.Out,
	}
	c.Run(ctx, session.New(u.Fallback, currencyID))

	if err := u.Persistence.Save(l); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
	return nil
}
