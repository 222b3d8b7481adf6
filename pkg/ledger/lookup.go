package ledger

import "errors"

// ErrNotFound is reported when a selection does not resolve.
var ErrNotFound = errors.New("Not Found")

// The lookups below never fail loudly: an empty id, a missing parent or a
// missing child all resolve to (nil, false). Deeper lookups resolve their
// parent first, so a stale id anywhere up the chain hides everything below.

// Journal resolves journalID.
func (l *Ledger) Journal(journalID string) (*Journal, bool) {
	if l == nil || journalID == "" {
		return nil, false
	}
	j, ok := l.Journals[journalID]
	if !ok || j == nil {
		return nil, false
	}
	return j, true
}

// Accounts resolves the account map of journalID.
func (l *Ledger) Accounts(journalID string) (map[string]*Account, bool) {
	j, ok := l.Journal(journalID)
	if !ok {
		return nil, false
	}
	return j.Accounts, true
}

// Account resolves accountID inside journalID.
func (l *Ledger) Account(journalID, accountID string) (*Account, bool) {
	accounts, ok := l.Accounts(journalID)
	if !ok || accountID == "" {
		return nil, false
	}
	a, ok := accounts[accountID]
	if !ok || a == nil {
		return nil, false
	}
	return a, true
}

// Transactions resolves the transaction map of journalID.
func (l *Ledger) Transactions(journalID string) (map[string]*Transaction, bool) {
	j, ok := l.Journal(journalID)
	if !ok {
		return nil, false
	}
	return j.Transactions, true
}

// Transaction resolves transactionID inside journalID.
func (l *Ledger) Transaction(journalID, transactionID string) (*Transaction, bool) {
	transactions, ok := l.Transactions(journalID)
	if !ok || transactionID == "" {
		return nil, false
	}
	t, ok := transactions[transactionID]
	if !ok || t == nil {
		return nil, false
	}
	return t, true
}

// Changes resolves the account change map of a transaction.
func (l *Ledger) Changes(journalID, transactionID string) (map[string]*AccountChange, bool) {
	t, ok := l.Transaction(journalID, transactionID)
	if !ok {
		return nil, false
	}
	return t.Changes, true
}

// Change resolves changeID inside a transaction.
func (l *Ledger) Change(journalID, transactionID, changeID string) (*AccountChange, bool) {
	changes, ok := l.Changes(journalID, transactionID)
	if !ok || changeID == "" {
		return nil, false
	}
	c, ok := changes[changeID]
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}

// Read-only views. They resolve exactly like the lookups above but hand
// back copies, so a caller holding one cannot change the ledger through it.
// Child maps are not copied and must be treated as read-only.

func (l *Ledger) JournalView(journalID string) (Journal, bool) {
	j, ok := l.Journal(journalID)
	if !ok {
		return Journal{}, false
	}
	return *j, true
}

func (l *Ledger) AccountView(journalID, accountID string) (Account, bool) {
	a, ok := l.Account(journalID, accountID)
	if !ok {
		return Account{}, false
	}
	return *a, true
}

func (l *Ledger) TransactionView(journalID, transactionID string) (Transaction, bool) {
	t, ok := l.Transaction(journalID, transactionID)
	if !ok {
		return Transaction{}, false
	}
	return *t, true
}

func (l *Ledger) ChangeView(journalID, transactionID, changeID string) (AccountChange, bool) {
	c, ok := l.Change(journalID, transactionID, changeID)
	if !ok {
		return AccountChange{}, false
	}
	return *c, true
}
