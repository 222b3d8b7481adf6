package session

import (
	"fmt"
	"strings"
)

// Policy decides which page follows an IO failure or a selection that no
// longer resolves.
type Policy string

const (
	// Ancestor returns to the nearest screen whose selections still resolve.
	Ancestor Policy = "ancestor"
	// Legacy always returns to the account list, as the first releases did.
	Legacy Policy = "legacy"
)

// Policies lists the accepted values.
func Policies() []Policy {
	return []Policy{Ancestor, Legacy}
}

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case Ancestor, Legacy:
		return p, nil
	case "":
		return Ancestor, nil
	}
	return Ancestor, fmt.Errorf("session: unknown fallback policy %q, want one of %v", s, Policies())
}

// String, Set and Type let a Policy be bound directly as a flag value.

func (p *Policy) String() string {
	if p == nil || *p == "" {
		return string(Ancestor)
	}
	return string(*p)
}

func (p *Policy) Set(s string) error {
	v, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p *Policy) Type() string {
	return "policy"
}
