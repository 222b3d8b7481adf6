// Package printers renders ledger entities for people.
package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/ledger/pkg/ledger"
)

// PrettyPrint writes to Out, color.Output when unset.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Currencies resolves the currency of an account change for display.
	Currencies map[string]*ledger.Currency
}

// DisableColorUnlessTerminal turns color off when stdout is redirected.
func DisableColorUnlessTerminal() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

const descriptionWidth = 72

var (
	bold  = color.New(color.Bold)
	faint = color.New(color.Faint, color.Italic)
	warn  = color.New(color.FgHiYellow)
	ids   = color.New(color.FgHiYellow, color.Italic, color.Faint)
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)
	if count == 1 {
		_, _ = c.Fprintf(pp.out(), " %s\n", noun)
	} else {
		_, _ = c.Fprintf(pp.out(), " %ss\n", noun)
	}
}

func (pp *PrettyPrint) none() {
	_, _ = faint.Fprint(pp.out(), " none\n\n")
}

func (pp *PrettyPrint) id(id string) string {
	return ids.Sprint(id)
}

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	return tbl
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Journal prints a journal with its accounts and transactions.
func (pp *PrettyPrint) Journal(j *ledger.Journal) {
	if pp.ShowID {
		pp.Title(fmt.Sprintf("%s %s", j.Name, pp.id(j.ID)))
	} else {
		pp.Title(j.Name)
	}
	pp.NewLine()
	pp.Accounts(j.Accounts)
	pp.Transactions(j.Transactions, j.Accounts)
}

// Accounts prints an account table sorted by name.
func (pp *PrettyPrint) Accounts(accounts map[string]*ledger.Account) {
	pp.TitleWithCount("Accounts", len(accounts), "account")
	if len(accounts) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	row := []interface{}{bold.Sprint("Name"), bold.Sprint("Balance"), bold.Sprint("Kind")}
	if pp.ShowID {
		row = append(row, bold.Sprint("ID"))
	}
	tbl.AddRow(row...)
	for _, a := range ledger.SortedAccounts(accounts) {
		row := []interface{}{a.Name, a.Balance, a.Kind}
		if pp.ShowID {
			row = append(row, pp.id(a.ID))
		}
		tbl.AddRow(row...)
	}
	pp.flush(tbl)
}

// Transactions prints a transaction table sorted by label.
func (pp *PrettyPrint) Transactions(transactions map[string]*ledger.Transaction, accounts map[string]*ledger.Account) {
	pp.TitleWithCount("Transactions", len(transactions), "transaction")
	if len(transactions) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	row := []interface{}{bold.Sprint("Date"), bold.Sprint("Name"), bold.Sprint("Changes")}
	if pp.ShowID {
		row = append(row, bold.Sprint("ID"))
	}
	tbl.AddRow(row...)
	for _, t := range ledger.SortedTransactions(transactions) {
		row := []interface{}{t.Date, t.Name, len(t.Changes)}
		if pp.ShowID {
			row = append(row, pp.id(t.ID))
		}
		tbl.AddRow(row...)
	}
	pp.flush(tbl)
}

// Account prints one account.
func (pp *PrettyPrint) Account(a *ledger.Account) {
	pp.Title(a.Name)
	tbl := pp.table()
	tbl.AddRow(bold.Sprint("Balance"), a.Balance)
	tbl.AddRow(bold.Sprint("Kind"), a.Kind)
	tbl.AddRow(bold.Sprint("ID"), pp.id(a.ID))
	tbl.RightAlign(0)
	pp.flush(tbl)
}

// Transaction prints a transaction, its changes and their totals.
func (pp *PrettyPrint) Transaction(t *ledger.Transaction, accounts map[string]*ledger.Account) {
	pp.Title(t.Label())
	if d := strings.TrimSpace(t.Description); d != "" {
		_, _ = fmt.Fprintln(pp.out(), wordwrap.String(d, descriptionWidth))
	}
	if pp.ShowID {
		_, _ = fmt.Fprintln(pp.out(), pp.id(t.ID))
	}
	pp.NewLine()

	pp.TitleWithCount("Account Changes", len(t.Changes), "change")
	if len(t.Changes) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	tbl.AddRow(bold.Sprint("Side"), bold.Sprint("Account"), bold.Sprint("Amount"))
	for _, c := range ledger.SortedChanges(t.Changes, accounts) {
		tbl.AddRow(c.Side, c.AccountName(accounts), pp.amount(c))
	}
	tbl.RightAlign(2)
	_, _ = fmt.Fprintln(pp.out(), tbl)

	debits, credits := t.Totals()
	_, _ = faint.Fprintf(pp.out(), "debits %s, credits %s\n", debits, credits)
	if !debits.Equal(credits) {
		_, _ = warn.Fprintln(pp.out(), "unbalanced")
	}
	pp.NewLine()
}

// Change prints one account change.
func (pp *PrettyPrint) Change(c *ledger.AccountChange, accounts map[string]*ledger.Account) {
	pp.Title(c.Label(accounts))
	tbl := pp.table()
	tbl.AddRow(bold.Sprint("Side"), c.Side)
	tbl.AddRow(bold.Sprint("Account"), c.AccountName(accounts))
	tbl.AddRow(bold.Sprint("Amount"), pp.amount(c))
	if cur, ok := pp.Currencies[c.CurrencyID]; ok && cur != nil {
		tbl.AddRow(bold.Sprint("Currency"), cur.Name)
	} else {
		tbl.AddRow(bold.Sprint("Currency"), ledger.ErrorToken)
	}
	tbl.AddRow(bold.Sprint("ID"), pp.id(c.ID))
	tbl.RightAlign(0)
	pp.flush(tbl)
}

func (pp *PrettyPrint) amount(c *ledger.AccountChange) string {
	if cur, ok := pp.Currencies[c.CurrencyID]; ok {
		return cur.Format(c.Amount)
	}
	return c.Amount.String()
}

// Ledger prints every journal, sorted by name.
func (pp *PrettyPrint) Ledger(l *ledger.Ledger) {
	if len(l.Journals) == 0 {
		pp.TitleWithCount("Journals", 0, "journal")
		pp.none()
		return
	}
	for _, j := range ledger.SortedJournals(l.Journals) {
		pp.Journal(j)
		for _, t := range ledger.SortedTransactions(j.Transactions) {
			if len(t.Changes) > 0 {
				pp.Transaction(t, j.Accounts)
			}
		}
	}
}
