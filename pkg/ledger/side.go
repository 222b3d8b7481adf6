package ledger

import (
	"fmt"
	"strings"
)

// Side is the debit or credit side of an account or an account change.
type Side int

const (
	Debit Side = iota
	Credit
)

// Sides lists the sides in prompt order.
func Sides() []Side {
	return []Side{Debit, Credit}
}

func (s Side) String() string {
	switch s {
	case Debit:
		return "Debit"
	case Credit:
		return "Credit"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Short is the one letter form used in change labels.
func (s Side) Short() string {
	if s == Credit {
		return "C"
	}
	return "D"
}

func (s Side) MarshalText() ([]byte, error) {
	switch s {
	case Debit, Credit:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("ledger: unknown side %d", int(s))
}

func (s *Side) UnmarshalText(b []byte) error {
	v, err := ParseSide(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSide accepts "debit"/"credit" in any case, or their one letter forms.
func ParseSide(str string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "debit", "d":
		return Debit, nil
	case "credit", "c":
		return Credit, nil
	}
	return Debit, fmt.Errorf("ledger: unknown side %q", str)
}

// Kind classifies an account.
type Kind int

const (
	Liability Kind = iota
	Equity
	Asset
)

// Kinds lists the kinds in prompt order.
func Kinds() []Kind {
	return []Kind{Liability, Asset, Equity}
}

func (k Kind) String() string {
	switch k {
	case Liability:
		return "Liability"
	case Equity:
		return "Equity"
	case Asset:
		return "Asset"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Liability, Equity, Asset:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("ledger: unknown kind %d", int(k))
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func ParseKind(str string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "liability":
		return Liability, nil
	case "equity":
		return Equity, nil
	case "asset":
		return Asset, nil
	}
	return Liability, fmt.Errorf("ledger: unknown kind %q", str)
}
