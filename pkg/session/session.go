// Package session holds the state threaded through every screen handler:
// the current page, the selected journal, account, transaction and account
// change, and the quit flag.
package session

import (
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/page"
)

// Session is never persisted. An empty id means nothing is selected at that
// level.
type Session struct {
	Page page.Page

	JournalID     string
	AccountID     string
	TransactionID string
	ChangeID      string

	// CurrencyID is the currency new account changes are recorded in.
	CurrencyID string
	Fallback   Policy

	terminate bool
}

// New starts a session on the journal list.
func New(fallback Policy, currencyID string) *Session {
	if fallback == "" {
		fallback = Ancestor
	}
	return &Session{
		Page:       page.SelectJournal,
		CurrencyID: currencyID,
		Fallback:   fallback,
	}
}

// Go sets the next page.
func (s *Session) Go(p page.Page) {
	s.Page = p
}

// Quit asks the run loop to stop after the current handler.
func (s *Session) Quit() {
	s.terminate = true
}

func (s *Session) Terminated() bool {
	return s.terminate
}

// Choosing at a level forgets every selection below it.

func (s *Session) SelectJournal(id string) {
	s.JournalID = id
	s.AccountID = ""
	s.TransactionID = ""
	s.ChangeID = ""
}

func (s *Session) SelectAccount(id string) {
	s.AccountID = id
}

func (s *Session) SelectTransaction(id string) {
	s.TransactionID = id
	s.ChangeID = ""
}

func (s *Session) SelectChange(id string) {
	s.ChangeID = id
}

// Clear forgets the selection at level and every selection that depends on
// it.
func (s *Session) Clear(level page.Level) {
	switch level {
	case page.Journal:
		s.SelectJournal("")
	case page.Account:
		s.AccountID = ""
	case page.Transaction:
		s.SelectTransaction("")
	case page.AccountChange:
		s.ChangeID = ""
	}
}

// Prune clears every selection that no longer resolves in l.
func (s *Session) Prune(l *ledger.Ledger) {
	if _, ok := l.Journal(s.JournalID); !ok {
		s.Clear(page.Journal)
		return
	}
	if _, ok := l.Account(s.JournalID, s.AccountID); !ok {
		s.Clear(page.Account)
	}
	if _, ok := l.Transaction(s.JournalID, s.TransactionID); !ok {
		s.Clear(page.Transaction)
		return
	}
	if _, ok := l.Change(s.JournalID, s.TransactionID, s.ChangeID); !ok {
		s.Clear(page.AccountChange)
	}
}

// Resolves reports whether every selection page p reads is live in l.
func (s *Session) Resolves(l *ledger.Ledger, p page.Page) bool {
	switch p {
	case page.SelectJournal, page.NewJournal:
		return true
	case page.ViewJournal, page.DeleteJournal,
		page.SelectAccount, page.NewAccount,
		page.SelectTransaction, page.NewTransaction:
		_, ok := l.Journal(s.JournalID)
		return ok
	case page.ViewAccount, page.DeleteAccount:
		_, ok := l.Account(s.JournalID, s.AccountID)
		return ok
	case page.ViewTransaction, page.DeleteTransaction,
		page.SelectAccountChange, page.NewAccountChange:
		_, ok := l.Transaction(s.JournalID, s.TransactionID)
		return ok
	case page.ViewAccountChange, page.DeleteAccountChange:
		_, ok := l.Change(s.JournalID, s.TransactionID, s.ChangeID)
		return ok
	}
	return false
}
