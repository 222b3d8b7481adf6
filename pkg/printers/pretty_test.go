package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/ledger"
)

func init() {
	color.NoColor = true
}

func sample() (*ledger.Ledger, *ledger.Journal, *ledger.Transaction) {
	l := ledger.Default()
	usd := l.DefaultCurrency("USD")
	j := ledger.NewJournal("Books")
	l.AddJournal(j)
	cash := ledger.NewAccount("Cash", ledger.Debit, ledger.Asset)
	rent := ledger.NewAccount("Rent", ledger.Credit, ledger.Liability)
	j.AddAccount(cash)
	j.AddAccount(rent)
	t := ledger.NewTransaction("2024/1/5", "Pay rent", "January rent for the flat")
	j.AddTransaction(t)
	t.AddChange(ledger.NewAccountChange(cash.ID, usd.ID, ledger.Debit, decimal.NewFromInt(100)))
	return l, j, t
}

func TestJournal(t *testing.T) {
	_, j, _ := sample()
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Journal(j)

	got := buf.String()
	for _, want := range []string{"Books", "Accounts - 2 accounts", "Cash", "Asset", "Rent", "Liability", "Transactions - 1 transaction", "2024/1/5", "Pay rent"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in:\n%s", want, got)
		}
	}
	if strings.Index(got, "Cash") > strings.Index(got, "Rent") {
		t.Errorf("accounts not sorted:\n%s", got)
	}
}

func TestTransactionReportsImbalance(t *testing.T) {
	l, j, tx := sample()
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Currencies: l.Currencies}
	pp.Transaction(tx, j.Accounts)

	got := buf.String()
	for _, want := range []string{"2024/1/5: Pay rent", "January rent for the flat", "Debit", "Cash", "$100.00", "debits 100, credits 0", "unbalanced"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in:\n%s", want, got)
		}
	}
}

func TestChangeWithDanglingAccount(t *testing.T) {
	l, j, tx := sample()
	for id := range j.Accounts {
		delete(j.Accounts, id)
	}
	var c *ledger.AccountChange
	for _, v := range tx.Changes {
		c = v
	}

	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Currencies: l.Currencies}
	pp.Change(c, j.Accounts)

	got := buf.String()
	if !strings.Contains(got, "D - [ERROR]: 100") {
		t.Errorf("expected error token label in:\n%s", got)
	}
	if !strings.Contains(got, "Dollars") {
		t.Errorf("expected currency name in:\n%s", got)
	}
}

func TestEmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Ledger(ledger.Default())
	if got := buf.String(); !strings.Contains(got, "Journals - 0 journals") || !strings.Contains(got, "none") {
		t.Errorf("unexpected output:\n%s", got)
	}
}
