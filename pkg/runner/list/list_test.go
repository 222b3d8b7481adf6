package list

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/store"
)

func init() {
	color.NoColor = true
}

func seeded(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(store.NewConfig(filepath.Join(t.TempDir(), "db.json"), "", ""))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	l := ledger.Default()
	for _, name := range []string{"Home", "Work"} {
		j := ledger.NewJournal(name)
		j.AddAccount(ledger.NewAccount(name+" Cash", ledger.Debit, ledger.Asset))
		l.AddJournal(j)
	}
	if err := p.Save(l); err != nil {
		t.Fatalf("save: %v", err)
	}
	return p
}

func TestListPretty(t *testing.T) {
	var out bytes.Buffer
	n := List{Persistence: seeded(t), Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Home Cash") || !strings.Contains(got, "Work Cash") {
		t.Errorf("missing accounts:\n%s", got)
	}
	if strings.Index(got, "Home") > strings.Index(got, "Work") {
		t.Errorf("journals not sorted:\n%s", got)
	}
}

func TestListJSONFiltered(t *testing.T) {
	var out bytes.Buffer
	n := List{Persistence: seeded(t), Out: &out, Output: "json", Journal: "Work"}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var l ledger.Ledger
	if err := json.Unmarshal(out.Bytes(), &l); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if len(l.Journals) != 1 {
		t.Fatalf("expected one journal, got %d", len(l.Journals))
	}
	for _, j := range l.Journals {
		if j.Name != "Work" {
			t.Errorf("unexpected journal %q", j.Name)
		}
	}
}
