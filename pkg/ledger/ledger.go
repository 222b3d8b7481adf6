// Package ledger holds the journal, account, transaction and account change
// hierarchy, and the lookups every screen uses to reach into it.
package ledger

import (
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Ledger is the whole persisted state.
type Ledger struct {
	Journals   map[string]*Journal  `json:"journals"`
	Currencies map[string]*Currency `json:"currencies"`
}

// New returns an empty ledger with no currencies.
func New() *Ledger {
	return &Ledger{
		Journals:   make(map[string]*Journal),
		Currencies: make(map[string]*Currency),
	}
}

// Default returns an empty ledger holding a single dollar currency.
func Default() *Ledger {
	l := New()
	c := NewCurrency("Dollars", "$", money.USD)
	l.Currencies[c.ID] = c
	return l
}

// Normalize replaces nil maps left behind by a decoded document.
func (l *Ledger) Normalize() {
	if l.Journals == nil {
		l.Journals = make(map[string]*Journal)
	}
	if l.Currencies == nil {
		l.Currencies = make(map[string]*Currency)
	}
	for id, j := range l.Journals {
		if j == nil {
			delete(l.Journals, id)
			continue
		}
		if j.Accounts == nil {
			j.Accounts = make(map[string]*Account)
		}
		if j.Transactions == nil {
			j.Transactions = make(map[string]*Transaction)
		}
		for tid, t := range j.Transactions {
			if t == nil {
				delete(j.Transactions, tid)
				continue
			}
			if t.Changes == nil {
				t.Changes = make(map[string]*AccountChange)
			}
		}
	}
}

// Currency names a unit amounts are recorded in.
type Currency struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Code   string `json:"code,omitempty"`
}

// NewCurrency creates a currency. An empty symbol is filled from the ISO
// code when go-money knows it.
func NewCurrency(name, symbol, code string) *Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if symbol == "" && code != "" {
		if c := money.GetCurrency(code); c != nil {
			symbol = c.Grapheme
		}
	}
	return &Currency{
		ID:     newID(),
		Name:   name,
		Symbol: symbol,
		Code:   code,
	}
}

// Format renders amount in this currency, e.g. "$100.00". Currencies
// without a known ISO code fall back to the symbol and the plain decimal.
func (c *Currency) Format(amount decimal.Decimal) string {
	if c == nil {
		return amount.String()
	}
	if c.Code != "" {
		if cur := money.GetCurrency(c.Code); cur != nil {
			minor := amount.Shift(int32(cur.Fraction)).Round(0)
			return cur.Formatter().Format(minor.IntPart())
		}
	}
	return c.Symbol + amount.String()
}

// DefaultCurrency resolves the currency new account changes are recorded
// in: the one with the given ISO code if present, otherwise the first by
// name. It is nil only for a ledger with no currencies.
func (l *Ledger) DefaultCurrency(code string) *Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	all := make([]*Currency, 0, len(l.Currencies))
	for _, c := range l.Currencies {
		if c == nil {
			continue
		}
		if code != "" && c.Code == code {
			return c
		}
		all = append(all, c)
	}
	if len(all) == 0 {
		return nil
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name == all[j].Name {
			return all[i].ID < all[j].ID
		}
		return all[i].Name < all[j].Name
	})
	return all[0]
}
