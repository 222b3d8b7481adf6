package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrorToken replaces a name that could not be resolved at display time.
const ErrorToken = "[ERROR]"

func newID() string {
	return uuid.New().String()
}

// Journal groups accounts and transactions.
type Journal struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Accounts     map[string]*Account     `json:"accounts"`
	Transactions map[string]*Transaction `json:"transactions"`
}

func NewJournal(name string) *Journal {
	return &Journal{
		ID:           newID(),
		Name:         name,
		Accounts:     make(map[string]*Account),
		Transactions: make(map[string]*Transaction),
	}
}

func (j *Journal) Label() string {
	return j.Name
}

// Account is a named ledger line.
type Account struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance Side   `json:"balance_type"`
	Kind    Kind   `json:"account_type"`
}

func NewAccount(name string, balance Side, kind Kind) *Account {
	return &Account{
		ID:      newID(),
		Name:    name,
		Balance: balance,
		Kind:    kind,
	}
}

func (a *Account) Label() string {
	return a.Name
}

// Transaction is a dated event grouping account changes. Date is kept as
// entered, "Y/M/D" without zero padding.
type Transaction struct {
	ID          string                    `json:"id"`
	Date        string                    `json:"date"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Changes     map[string]*AccountChange `json:"account_changes"`
}

func NewTransaction(date, name, description string) *Transaction {
	return &Transaction{
		ID:          newID(),
		Date:        date,
		Name:        name,
		Description: description,
		Changes:     make(map[string]*AccountChange),
	}
}

func (t *Transaction) Label() string {
	return fmt.Sprintf("%s: %s", t.Date, t.Name)
}

// Totals sums the debit and credit changes of the transaction. Nothing
// requires them to match.
func (t *Transaction) Totals() (debits, credits decimal.Decimal) {
	for _, c := range t.Changes {
		if c.Side == Credit {
			credits = credits.Add(c.Amount)
		} else {
			debits = debits.Add(c.Amount)
		}
	}
	return debits, credits
}

// AccountChange debits or credits one account of the enclosing journal.
// AccountID is a reference and is only resolved when displayed.
type AccountChange struct {
	ID         string          `json:"id"`
	AccountID  string          `json:"account_id"`
	CurrencyID string          `json:"currency_id"`
	Side       Side            `json:"credit_or_debit"`
	Amount     decimal.Decimal `json:"amount"`
}

func NewAccountChange(accountID, currencyID string, side Side, amount decimal.Decimal) *AccountChange {
	return &AccountChange{
		ID:         newID(),
		AccountID:  accountID,
		CurrencyID: currencyID,
		Side:       side,
		Amount:     amount,
	}
}

// AccountName resolves the referenced account in accounts, or ErrorToken.
func (c *AccountChange) AccountName(accounts map[string]*Account) string {
	if a, ok := accounts[c.AccountID]; ok && a != nil {
		return a.Name
	}
	return ErrorToken
}

// Label renders "D - Cash: 100". A nil accounts map renders ErrorToken for
// the account, as does a dangling account id.
func (c *AccountChange) Label(accounts map[string]*Account) string {
	return fmt.Sprintf("%s - %s: %s", c.Side.Short(), c.AccountName(accounts), c.Amount.String())
}
