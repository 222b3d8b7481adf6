package controller

import (
	"fmt"

	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/page"
	"tableflip.dev/ledger/pkg/prompt"
	"tableflip.dev/ledger/pkg/session"
)

func selectAccount(c *Controller, s *session.Session) {
	s.Clear(page.Account)

	accounts, ok := c.Ledger.Accounts(s.JournalID)
	if !ok {
		c.notFound(s)
		return
	}

	var choices []prompt.Choice[pick]
	for _, a := range ledger.SortedAccounts(accounts) {
		choices = append(choices, entity(a.Label(), a.ID))
	}
	choices = append(choices,
		to("[New Account]", optNew),
		to("[Back]", optBack),
	)

	p, err := prompt.Choose(c.Prompt, "Select Account", choices)
	if err != nil {
		c.failed(s, err)
		return
	}

	switch p.opt {
	case optEntity:
		a, ok := c.Ledger.Account(s.JournalID, p.id)
		if !ok {
			c.notFound(s)
			return
		}
		s.SelectAccount(a.ID)
		s.Go(page.ViewAccount)
	case optNew:
		s.Go(page.NewAccount)
	case optBack:
		s.Go(page.ViewJournal)
	}
}

func newAccount(c *Controller, s *session.Session) {
	j, ok := c.Ledger.Journal(s.JournalID)
	if !ok {
		c.notFound(s)
		return
	}

	name, err := prompt.Text(c.Prompt, "Account Name:", fmt.Sprintf("Account %d", len(j.Accounts)))
	if err != nil {
		c.failed(s, err)
		return
	}

	var sides []prompt.Choice[ledger.Side]
	for _, side := range ledger.Sides() {
		sides = append(sides, prompt.Choice[ledger.Side]{Label: side.String(), Value: side})
	}
	balance, err := prompt.Choose(c.Prompt, "Balance Type:", sides)
	if err != nil {
		c.failed(s, err)
		return
	}

	var kinds []prompt.Choice[ledger.Kind]
	for _, kind := range ledger.Kinds() {
		kinds = append(kinds, prompt.Choice[ledger.Kind]{Label: kind.String(), Value: kind})
	}
	kind, err := prompt.Choose(c.Prompt, "Account Type:", kinds)
	if err != nil {
		c.failed(s, err)
		return
	}

	j.AddAccount(ledger.NewAccount(name, balance, kind))
	s.Go(page.SelectAccount)
}

func viewAccount(c *Controller, s *session.Session) {
	a, ok := c.Ledger.Account(s.JournalID, s.AccountID)
	if !ok {
		c.notFound(s)
		return
	}

	p, err := prompt.Choose(c.Prompt, a.Name, []prompt.Choice[pick]{
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
		c.printer().Account(a)
	case optBack:
		s.Go(page.SelectAccount)
	case optDelete:
		s.Go(page.DeleteAccount)
	}
}

func deleteAccount(c *Controller, s *session.Session) {
	a, ok := c.Ledger.Account(s.JournalID, s.AccountID)
	if !ok {
		c.notFound(s)
		return
	}

	yes, err := c.confirmDelete(a.Name)
	if err != nil {
		c.failed(s, err)
		return
	}
	if !yes {
		s.Go(page.ViewAccount)
		return
	}

	c.Ledger.DeleteAccount(s.JournalID, a.ID)
	s.Clear(page.Account)
	s.Go(page.SelectAccount)
}
