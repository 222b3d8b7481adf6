package controller

import (
	"errors"

	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/page"
	"tableflip.dev/ledger/pkg/prompt"
	"tableflip.dev/ledger/pkg/session"
)

func selectChange(c *Controller, s *session.Session) {
	s.Clear(page.AccountChange)

	changes, ok := c.Ledger.Changes(s.JournalID, s.TransactionID)
	if !ok {
		c.notFound(s)
		return
	}
	accounts, _ := c.Ledger.Accounts(s.JournalID)

	var choices []prompt.Choice[pick]
	for _, ch := range ledger.SortedChanges(changes, accounts) {
		choices = append(choices, entity(ch.Label(accounts), ch.ID))
	}
	choices = append(choices,
		to("[New Account Change]", optNew),
		to("[Back]", optBack),
	)

	p, err := prompt.Choose(c.Prompt, "Select Change", choices)
	if err != nil {
		c.failed(s, err)
		return
	}

	switch p.opt {
	case optEntity:
		ch, ok := c.Ledger.Change(s.JournalID, s.TransactionID, p.id)
		if !ok {
			c.notFound(s)
			return
		}
		s.SelectChange(ch.ID)
		s.Go(page.ViewAccountChange)
	case optNew:
		s.Go(page.NewAccountChange)
	case optBack:
		s.Go(page.ViewTransaction)
	}
}

func newChange(c *Controller, s *session.Session) {
	var sides []prompt.Choice[ledger.Side]
	for _, side := range ledger.Sides() {
		sides = append(sides, prompt.Choice[ledger.Side]{Label: side.String(), Value: side})
	}
	side, err := prompt.Choose(c.Prompt, "Credit Or Debit:", sides)
	if err != nil {
		c.failed(s, err)
		return
	}

	accounts, ok := c.Ledger.Accounts(s.JournalID)
	if !ok {
		c.notFound(s)
		return
	}
	var choices []prompt.Choice[string]
	for _, a := range ledger.SortedAccounts(accounts) {
		choices = append(choices, prompt.Choice[string]{Label: a.Label(), Value: a.ID})
	}
	accountID, err := prompt.Search(c.Prompt, "Account:", choices)
	if errors.Is(err, prompt.ErrNoChoices) {
		c.notFound(s)
		return
	}
	if err != nil {
		c.failed(s, err)
		return
	}

	amount, err := prompt.Parsed(c.Prompt, "Enter "+side.String()+" Amount:", "", prompt.Decimal)
	if err != nil {
		c.failed(s, err)
		return
	}

	// Prompts block; resolve the transaction only once the change is ready.
	t, ok := c.Ledger.Transaction(s.JournalID, s.TransactionID)
	if !ok {
		c.notFound(s)
		return
	}
	t.AddChange(ledger.NewAccountChange(accountID, s.CurrencyID, side, amount))
	s.Go(page.SelectAccountChange)
}

func viewChange(c *Controller, s *session.Session) {
	ch, ok := c.Ledger.Change(s.JournalID, s.TransactionID, s.ChangeID)
	if !ok {
		c.notFound(s)
		return
	}
	accounts, _ := c.Ledger.Accounts(s.JournalID)

	p, err := prompt.Choose(c.Prompt, ch.Label(accounts), []prompt.Choice[pick]{
		to("[Back]", optBack),
		to("[Display]", optDisplay),
		to("[Delete]", optDelete),
	})
	if err != nil {
		c.failed(s, err)
		return
	}

	switch p.opt {
	case optDisplay:
		c.printer().Change(ch, accounts)
	case optBack:
		s.Go(page.SelectAccountChange)
	case optDelete:
		s.Go(page.DeleteAccountChange)
	}
}

func deleteChange(c *Controller, s *session.Session) {
	ch, ok := c.Ledger.Change(s.JournalID, s.TransactionID, s.ChangeID)
	if !ok {
		c.notFound(s)
		return
	}
	accounts, _ := c.Ledger.Accounts(s.JournalID)

	yes, err := c.confirmDelete(ch.Label(accounts))
	if err != nil {
		c.failed(s, err)
		return
	}
	if !yes {
		s.Go(page.ViewAccountChange)
		return
	}

	c.Ledger.DeleteChange(s.JournalID, s.TransactionID, ch.ID)
	s.Clear(page.AccountChange)
	s.Go(page.SelectAccountChange)
}
