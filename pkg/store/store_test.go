package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/ledger/pkg/ledger"
)

func TestLoadSynthesizesDefault(t *testing.T) {
	p, err := Load(NewConfig(filepath.Join(t.TempDir(), "db.json"), "", ""))
	require.NoError(t, err)

	assert.False(t, p.Exists())
	l, err := p.Load()
	require.NoError(t, err)
	assert.Empty(t, l.Journals)
	require.Len(t, l.Currencies, 1)
	assert.Equal(t, "Dollars", l.DefaultCurrency("").Name)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	p, err := Load(NewConfig(path, "", ""))
	require.NoError(t, err)

	l := ledger.Default()
	usd := l.DefaultCurrency("USD")
	j := ledger.NewJournal("Books")
	l.AddJournal(j)
	cash := ledger.NewAccount("Cash", ledger.Debit, ledger.Asset)
	j.AddAccount(cash)
	tx := ledger.NewTransaction("2024/1/5", "Pay rent", "January")
	j.AddTransaction(tx)
	ch := ledger.NewAccountChange(cash.ID, usd.ID, ledger.Credit, decimal.RequireFromString("100.10"))
	tx.AddChange(ch)

	require.NoError(t, p.Save(l))
	assert.FileExists(t, path)

	reopened, err := Load(NewConfig(path, "", ""))
	require.NoError(t, err)
	require.True(t, reopened.Exists())
	got, err := reopened.Load()
	require.NoError(t, err)

	gotChange, ok := got.Change(j.ID, tx.ID, ch.ID)
	require.True(t, ok)
	assert.Equal(t, cash.ID, gotChange.AccountID)
	assert.Equal(t, usd.ID, gotChange.CurrencyID)
	assert.Equal(t, ledger.Credit, gotChange.Side)
	assert.True(t, gotChange.Amount.Equal(decimal.RequireFromString("100.1")))

	gotAccount, ok := got.Account(j.ID, cash.ID)
	require.True(t, ok)
	assert.Equal(t, ledger.Asset, gotAccount.Kind)
	assert.Equal(t, "January", got.Journals[j.ID].Transactions[tx.ID].Description)
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	p, err := Load(NewConfig(path, "", ""))
	require.NoError(t, err)
	_, err = p.Load()
	assert.ErrorContains(t, err, "store: decode")
}

func TestLoadAddsMissingCurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"journals":{}}`), 0o644))

	p, err := Load(NewConfig(path, "", ""))
	require.NoError(t, err)
	l, err := p.Load()
	require.NoError(t, err)
	assert.Len(t, l.Currencies, 1)
}

func TestSaveNil(t *testing.T) {
	p, err := Load(NewConfig(filepath.Join(t.TempDir(), "db.json"), "", ""))
	require.NoError(t, err)
	assert.Error(t, p.Save(nil))
}

func TestLoadRequiresPath(t *testing.T) {
	_, err := Load(NewConfig("", "", ""))
	assert.Error(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEDGER_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ledger.yaml"), []byte("path: books.json\ncurrency: EUR\n"), 0o644))
	t.Setenv("LEDGER_FALLBACK", "legacy")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "books.json", cfg.Path())
	assert.Equal(t, "EUR", cfg.Currency())
	assert.Equal(t, "legacy", cfg.Fallback())
	assert.Equal(t, filepath.Join(dir, ".ledger.yaml"), cfg.Source())
}
