// Package page enumerates the screens of the interactive ledger.
package page

import "fmt"

// Page identifies the screen the run loop dispatches to next. It carries no
// payload; handlers read what they need from the session selections.
type Page int

const (
	SelectJournal Page = iota
	NewJournal
	ViewJournal
	DeleteJournal

	SelectAccount
	NewAccount
	ViewAccount
	DeleteAccount

	SelectTransaction
	NewTransaction
	ViewTransaction
	DeleteTransaction

	SelectAccountChange
	NewAccountChange
	ViewAccountChange
	DeleteAccountChange
)

// Level is the entity a page works on.
type Level int

const (
	Journal Level = iota
	Account
	Transaction
	AccountChange
)

// Action is what a page does at its level.
type Action int

const (
	Select Action = iota
	New
	View
	Delete
)

var levelNames = [...]string{"Journal", "Account", "Transaction", "AccountChange"}
var actionNames = [...]string{"Select", "New", "View", "Delete"}

// All lists every page in declaration order.
func All() []Page {
	out := make([]Page, 0, 16)
	for p := SelectJournal; p <= DeleteAccountChange; p++ {
		out = append(out, p)
	}
	return out
}

// Of builds the page for a level and action.
func Of(l Level, a Action) Page {
	return Page(int(l)*4 + int(a))
}

func (p Page) Valid() bool {
	return p >= SelectJournal && p <= DeleteAccountChange
}

func (p Page) Level() Level {
	return Level(int(p) / 4)
}

func (p Page) Action() Action {
	return Action(int(p) % 4)
}

func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return actionNames[p.Action()] + levelNames[p.Level()]
}

func (l Level) String() string {
	if l < Journal || l > AccountChange {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Parent is the level above l; the top level reports false.
func (l Level) Parent() (Level, bool) {
	switch l {
	case Account, Transaction:
		return Journal, true
	case AccountChange:
		return Transaction, true
	}
	return Journal, false
}

// Up is where "[Back]" from a Select page leads: the View page of the
// parent level. SelectJournal has nowhere to go and reports false.
func (p Page) Up() (Page, bool) {
	parent, ok := p.Level().Parent()
	if !ok {
		return p, false
	}
	return Of(parent, View), true
}
