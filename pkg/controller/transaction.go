package controller

import (
	"fmt"
	"strconv"

	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/page"
	"tableflip.dev/ledger/pkg/prompt"
	"tableflip.dev/ledger/pkg/session"
)

func selectTransaction(c *Controller, s *session.Session) {
	s.Clear(page.Transaction)

	transactions, ok := c.Ledger.Transactions(s.JournalID)
	if !ok {
		c.notFound(s)
		return
	}

	var choices []prompt.Choice[pick]
	for _, t := range ledger.SortedTransactions(transactions) {
		choices = append(choices, entity(t.Label(), t.ID))
	}
	choices = append(choices,
		to("[New Transaction]", optNew),
		to("[Back]", optBack),
	)

	p, err := prompt.Choose(c.Prompt, "Select Transaction", choices)
	if err != nil {
		c.failed(s, err)
		return
	}

	switch p.opt {
	case optEntity:
		t, ok := c.Ledger.Transaction(s.JournalID, p.id)
		if !ok {
			c.notFound(s)
			return
		}
		s.SelectTransaction(t.ID)
		s.Go(page.ViewTransaction)
	case optNew:
		s.Go(page.NewTransaction)
	case optBack:
		s.Go(page.ViewJournal)
	}
}

func newTransaction(c *Controller, s *session.Session) {
	j, ok := c.Ledger.Journal(s.JournalID)
	if !ok {
		c.notFound(s)
		return
	}

	name, err := prompt.Text(c.Prompt, "Transaction Name:", fmt.Sprintf("Transaction %d", len(j.Transactions)))
	if err != nil {
		c.failed(s, err)
		return
	}

	now := c.now()

	year, err := prompt.Parsed(c.Prompt, "Enter Transaction Year:", strconv.Itoa(now.Year()), prompt.Int)
	if err != nil {
		c.failed(s, err)
		return
	}

	month, err := prompt.Validated[int](c.Prompt, "Enter Transaction Month:", strconv.Itoa(int(now.Month())),
		prompt.Int, prompt.MonthValidator{})
	if err != nil {
		c.failed(s, err)
		return
	}

	day, err := prompt.Validated[int](c.Prompt, "Enter Transaction Day:", strconv.Itoa(now.Day()),
		prompt.Int, prompt.DayValidator{Year: year, Month: month})
	if err != nil {
		c.failed(s, err)
		return
	}

	description, err := prompt.Text(c.Prompt, "Enter Transaction Description:", "")
	if err != nil {
		c.failed(s, err)
		return
	}

	date := fmt.Sprintf("%d/%d/%d", year, month, day)
	j.AddTransaction(ledger.NewTransaction(date, name, description))
	s.Go(page.SelectTransaction)
}

func viewTransaction(c *Controller, s *session.Session) {
	t, ok := c.Ledger.Transaction(s.JournalID, s.TransactionID)
	if !ok {
		c.notFound(s)
		return
	}

	p, err := prompt.Choose(c.Prompt, t.Name, []prompt.Choice[pick]{
		to("[Back]", optBack),
		to("[Display]", optDisplay),
		to("[Account Changes]", optChanges),
		to("[Delete]", optDelete),
	})
	if err != nil {
		c.failed(s, err)
		return
	}

	switch p.opt {
	case optDisplay:
		accounts, _ := c.Ledger.Accounts(s.JournalID)
		c.printer().Transaction(t, accounts)
	case optBack:
		s.Go(page.SelectTransaction)
	case optDelete:
		s.Go(page.DeleteTransaction)
	case optChanges:
		s.Go(page.SelectAccountChange)
	}
}

func deleteTransaction(c *Controller, s *session.Session) {
	t, ok := c.Ledger.Transaction(s.JournalID, s.TransactionID)
	if !ok {
		c.notFound(s)
		return
	}

	yes, err := c.confirmDelete(t.Name)
	if err != nil {
		c.failed(s, err)
		return
	}
	if !yes {
		s.Go(page.ViewTransaction)
		return
	}

	c.Ledger.DeleteTransaction(s.JournalID, t.ID)
	s.Clear(page.Transaction)
	s.Go(page.SelectTransaction)
}
