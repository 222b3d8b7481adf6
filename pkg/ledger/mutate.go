package ledger

// Entities are only ever inserted by the New screens and removed by the
// Delete screens. Removal drops an entity from its owning map. Everything it
// owns goes with it; clearing selections that pointed below it is up to the
// caller.

// AddJournal inserts j and returns its id.
func (l *Ledger) AddJournal(j *Journal) string {
	if l.Journals == nil {
		l.Journals = make(map[string]*Journal)
	}
	l.Journals[j.ID] = j
	return j.ID
}

// DeleteJournal removes a journal with its accounts and transactions.
func (l *Ledger) DeleteJournal(journalID string) bool {
	if _, ok := l.Journal(journalID); !ok {
		return false
	}
	delete(l.Journals, journalID)
	return true
}

// DeleteAccount removes an account. Account changes that reference it are
// left in place and display as ErrorToken.
func (l *Ledger) DeleteAccount(journalID, accountID string) bool {
	accounts, ok := l.Accounts(journalID)
	if !ok {
		return false
	}
	if _, ok := accounts[accountID]; !ok {
		return false
	}
	delete(accounts, accountID)
	return true
}

// DeleteTransaction removes a transaction with its account changes.
func (l *Ledger) DeleteTransaction(journalID, transactionID string) bool {
	transactions, ok := l.Transactions(journalID)
	if !ok {
		return false
	}
	if _, ok := transactions[transactionID]; !ok {
		return false
	}
	delete(transactions, transactionID)
	return true
}

func (l *Ledger) DeleteChange(journalID, transactionID, changeID string) bool {
	changes, ok := l.Changes(journalID, transactionID)
	if !ok {
		return false
	}
	if _, ok := changes[changeID]; !ok {
		return false
	}
	delete(changes, changeID)
	return true
}

func (j *Journal) AddAccount(a *Account) string {
	if j.Accounts == nil {
		j.Accounts = make(map[string]*Account)
	}
	j.Accounts[a.ID] = a
	return a.ID
}

func (j *Journal) AddTransaction(t *Transaction) string {
	if j.Transactions == nil {
		j.Transactions = make(map[string]*Transaction)
	}
	j.Transactions[t.ID] = t
	return t.ID
}

func (t *Transaction) AddChange(c *AccountChange) string {
	if t.Changes == nil {
		t.Changes = make(map[string]*AccountChange)
	}
	t.Changes[c.ID] = c
	return c.ID
}
