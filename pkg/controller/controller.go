// Package controller drives the interactive ledger: one handler per page,
// dispatched in a loop until the session asks to quit.
package controller

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/page"
	"tableflip.dev/ledger/pkg/printers"
	"tableflip.dev/ledger/pkg/prompt"
	"tableflip.dev/ledger/pkg/session"
)

// Controller owns the ledger for the length of a session. Handlers get the
// session passed in and never call each other.
type Controller struct {
	Ledger  *ledger.Ledger
	Prompt  prompt.Prompter
	Printer *printers.PrettyPrint
	// Out receives status messages; color.Output when nil.
	Out io.Writer
	// Now supplies the default date of new transactions; time.Now when nil.
	Now func() time.Time
}

// Handler runs one page to completion and leaves the next page on s.
type Handler func(c *Controller, s *session.Session)

var handlers = map[page.Page]Handler{
	page.SelectJournal: selectJournal,
	page.NewJournal:    newJournal,
	page.ViewJournal:   viewJournal,
	page.DeleteJournal: deleteJournal,

	page.SelectAccount: selectAccount,
	page.NewAccount:    newAccount,
	page.ViewAccount:   viewAccount,
	page.DeleteAccount: deleteAccount,

	page.SelectTransaction: selectTransaction,
	page.NewTransaction:    newTransaction,
	page.ViewTransaction:   viewTransaction,
	page.DeleteTransaction: deleteTransaction,

	page.SelectAccountChange: selectChange,
	page.NewAccountChange:    newChange,
	page.ViewAccountChange:   viewChange,
	page.DeleteAccountChange: deleteChange,
}

// Run dispatches pages until the session quits or ctx is done.
func (c *Controller) Run(ctx context.Context, s *session.Session) {
	for !s.Terminated() {
		if ctx.Err() != nil {
			return
		}
		c.Step(s)
	}
}

// Step runs the handler for the current page.
func (c *Controller) Step(s *session.Session) {
	h, ok := handlers[s.Page]
	if !ok {
		s.Go(page.SelectJournal)
		return
	}
	h(c, s)
}

func (c *Controller) out() io.Writer {
	if c.Out == nil {
		return color.Output
	}
	return c.Out
}

func (c *Controller) printer() *printers.PrettyPrint {
	if c.Printer == nil {
		c.Printer = &printers.PrettyPrint{Out: c.Out, Currencies: c.Ledger.Currencies}
	}
	return c.Printer
}

func (c *Controller) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// notFound and failed are the only ways a handler gives up.

func (c *Controller) notFound(s *session.Session) {
	_, _ = fmt.Fprintln(c.out(), ledger.ErrNotFound.Error())
	s.Fail(c.Ledger)
}

func (c *Controller) failed(s *session.Session, err error) {
	if prompt.IsInterrupt(err) {
		_, _ = fmt.Fprintln(c.out(), "Cancelled")
	} else {
		_, _ = fmt.Fprintln(c.out(), err.Error())
	}
	s.Fail(c.Ledger)
}

func (c *Controller) confirmDelete(name string) (bool, error) {
	return c.Prompt.Confirm(fmt.Sprintf("Are you sure you want to delete %q?", name), false)
}

// option is what a list entry leads to.
type option int

const (
	optEntity option = iota
	optNew
	optBack
	optQuit
	optDisplay
	optDelete
	optAccounts
	optTransactions
	optChanges
)

type pick struct {
	opt option
	id  string
}

func entity(label, id string) prompt.Choice[pick] {
	return prompt.Choice[pick]{Label: label, Value: pick{opt: optEntity, id: id}}
}

func to(label string, opt option) prompt.Choice[pick] {
	return prompt.Choice[pick]{Label: label, Value: pick{opt: opt}}
}
