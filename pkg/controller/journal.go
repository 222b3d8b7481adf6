package controller

import (
	"fmt"

	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/page"
	"tableflip.dev/ledger/pkg/prompt"
	"tableflip.dev/ledger/pkg/session"
)

func selectJournal(c *Controller, s *session.Session) {
	s.Clear(page.Journal)

	var choices []prompt.Choice[pick]
	for _, j := range ledger.SortedJournals(c.Ledger.Journals) {
		choices = append(choices, entity(j.Label(), j.ID))
	}
	choices = append(choices,
		to("[New Journal]", optNew),
		to("[Quit]", optQuit),
	)

	p, err := prompt.Choose(c.Prompt, "Select Journal", choices)
	if err != nil {
		c.failed(s, err)
		return
	}

	switch p.opt {
	case optEntity:
		j, ok := c.Ledger.Journal(p.id)
		if !ok {
			c.notFound(s)
			return
		}
		s.SelectJournal(j.ID)
		s.Go(page.ViewJournal)
	case optNew:
		s.Go(page.NewJournal)
	case optQuit:
		s.Quit()
	}
}

func newJournal(c *Controller, s *session.Session) {
	name, err := prompt.Text(c.Prompt, "Journal Name:", fmt.Sprintf("Journal %d", len(c.Ledger.Journals)))
	if err != nil {
		c.failed(s, err)
		return
	}

	c.Ledger.AddJournal(ledger.NewJournal(name))
	s.Go(page.SelectJournal)
}

func viewJournal(c *Controller, s *session.Session) {
	j, ok := c.Ledger.Journal(s.JournalID)
	if !ok {
		c.notFound(s)
		return
	}

	p, err := prompt.Choose(c.Prompt, j.Name, []prompt.Choice[pick]{
		to("[Back]", optBack),
		to("[Accounts]", optAccounts),
		to("[Display]", optDisplay),
		to("[Transactions]", optTransactions),
		to("[Delete]", optDelete),
	})
	if err != nil {
		c.failed(s, err)
		return
	}

	switch p.opt {
	case optDisplay:
		c.printer().Journal(j)
	case optDelete:
		s.Go(page.DeleteJournal)
	case optBack:
		s.Go(page.SelectJournal)
	case optAccounts:
		s.Go(page.SelectAccount)
	case optTransactions:
		s.Go(page.SelectTransaction)
	}
}

func deleteJournal(c *Controller, s *session.Session) {
	j, ok := c.Ledger.Journal(s.JournalID)
	if !ok {
		c.notFound(s)
		return
	}

	yes, err := c.confirmDelete(j.Name)
	if err != nil {
		c.failed(s, err)
		return
	}
	if !yes {
		s.Go(page.ViewJournal)
		return
	}

	c.Ledger.DeleteJournal(j.ID)
	s.Clear(page.Journal)
	s.Go(page.SelectJournal)
}
