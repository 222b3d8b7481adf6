// Package prompt is the interactive input layer the screen handlers talk
// to. Handlers only see the Prompter contract; Terminal implements it with
// promptui and prompttest.Script implements it for tests.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter asks the user for one value at a time. Every method blocks until
// the user answers or input fails.
type Prompter interface {
	// Select shows labels and returns the chosen index. When searchable is
	// set the list can be filtered by typing.
	Select(label string, labels []string, searchable bool) (int, error)
	// Input reads free text, pre-filled with initial. A non-nil validate is
	// consulted while typing; callers must still check the result.
	Input(label, initial string, validate func(string) error) (string, error)
	// Confirm asks a yes/no question.
	Confirm(label string, def bool) (bool, error)
}

// ErrNoChoices is returned when there is nothing to choose from.
var ErrNoChoices = errors.New("prompt: nothing to choose from")

// Choice pairs a display label with the value it selects.
type Choice[T any] struct {
	Label string
	Value T
}

// Choose shows choices in the order given and returns the chosen value.
func Choose[T any](p Prompter, label string, choices []Choice[T]) (T, error) {
	return choose(p, label, choices, false)
}

// Search is Choose with type-to-filter.
func Search[T any](p Prompter, label string, choices []Choice[T]) (T, error) {
	return choose(p, label, choices, true)
}

func choose[T any](p Prompter, label string, choices []Choice[T], searchable bool) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, ErrNoChoices
	}
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	i, err := p.Select(label, labels, searchable)
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= len(choices) {
		return zero, fmt.Errorf("prompt: selection %d out of range", i)
	}
	return choices[i].Value, nil
}

// Text reads a line of free text.
func Text(p Prompter, label, initial string) (string, error) {
	return p.Input(label, initial, nil)
}

// Parsed re-prompts until the input parses. Only an input failure ends it
// early.
func Parsed[T any](p Prompter, label, initial string, parse func(string) (T, error)) (T, error) {
	validate := func(s string) error {
		_, err := parse(s)
		return err
	}
	for {
		s, err := p.Input(label, initial, validate)
		if err != nil {
			var zero T
			return zero, err
		}
		if v, err := parse(s); err == nil {
			return v, nil
		}
	}
}

// Validated re-prompts until the input parses and v accepts it.
func Validated[T any](p Prompter, label, initial string, parse func(string) (T, error), v Validator[T]) (T, error) {
	check := func(s string) (T, error) {
		t, err := parse(s)
		if err != nil {
			return t, err
		}
		return t, v.Validate(t)
	}
	return Parsed[T](p, label, initial, check)
}

// Int parses a base 10 integer, ignoring surrounding space.
func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Decimal parses an exact decimal amount.
func Decimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}
