package prompt

import (
	"errors"
	"io"
	"testing"
	"time"

	"tableflip.dev/ledger/pkg/prompt/prompttest"
)

func TestChoose(t *testing.T) {
	p := prompttest.New(prompttest.Pick("Credit"))
	got, err := Choose(p, "Side:", []Choice[int]{{"Debit", 1}, {"Credit", 2}})
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestChooseNothing(t *testing.T) {
	p := prompttest.New()
	if _, err := Search[int](p, "Account:", nil); !errors.Is(err, ErrNoChoices) {
		t.Errorf("expected ErrNoChoices, got %v", err)
	}
	if len(p.Prompts) != 0 {
		t.Errorf("nothing should have been prompted")
	}
}

func TestParsedLoopsUntilParsed(t *testing.T) {
	p := prompttest.New(
		prompttest.Type("abc"),
		prompttest.Type("12.5.1"),
		prompttest.Type(" 12.50 "),
	)
	got, err := Parsed(p, "Amount:", "", Decimal)
	if err != nil {
		t.Fatalf("parsed: %v", err)
	}
	if got.String() != "12.5" {
		t.Errorf("expected 12.5, got %s", got)
	}
	if len(p.Prompts) != 3 {
		t.Errorf("expected 3 prompts, got %d", len(p.Prompts))
	}
}

func TestParsedStopsOnFailure(t *testing.T) {
	p := prompttest.New(prompttest.Type("x"))
	if _, err := Parsed(p, "Year:", "2024", Int); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF once the script ran out, got %v", err)
	}
}

func TestValidatedMonth(t *testing.T) {
	p := prompttest.New(
		prompttest.Type("0"),
		prompttest.Type("13"),
		prompttest.Type("feb"),
		prompttest.Type("2"),
	)
	got, err := Validated[int](p, "Month:", "1", Int, MonthValidator{})
	if err != nil {
		t.Fatalf("validated: %v", err)
	}
	if got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if p.Remaining() != 0 {
		t.Errorf("expected every answer used")
	}
}

func TestDayValidator(t *testing.T) {
	tests := []struct {
		year, month, day int
		ok               bool
	}{
		{2024, 2, 29, true},
		{2023, 2, 29, false},
		{2000, 2, 29, true},
		{1900, 2, 29, false},
		{2024, 4, 30, true},
		{2024, 4, 31, false},
		{2024, 1, 31, true},
		{2024, 1, 0, false},
		{2024, 13, 1, false},
	}
	for _, tc := range tests {
		err := DayValidator{Year: tc.year, Month: tc.month}.Validate(tc.day)
		if (err == nil) != tc.ok {
			t.Errorf("%d/%d/%d: got err %v, want ok=%v", tc.year, tc.month, tc.day, err, tc.ok)
		}
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(2024, time.December); got != 31 {
		t.Errorf("December: %d", got)
	}
	if got := DaysIn(2024, time.February); got != 29 {
		t.Errorf("leap February: %d", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		input, label string
		want         bool
	}{
		{"", "Cash", true},
		{"csh", "Cash", true},
		{"CA", "cash", true},
		{"pay rent", "Payable Rent", true},
		{"xyz", "Cash", false},
	}
	for _, tc := range tests {
		if got := Match(tc.input, tc.label); got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.input, tc.label, got, tc.want)
		}
	}
}
