// Package prompttest provides a scripted Prompter for driving screens in
// tests.
package prompttest

import (
	"fmt"
	"io"
	"strings"
)

type kind int

const (
	pick kind = iota
	typed
	confirm
	fail
)

func (k kind) String() string {
	return [...]string{"pick", "type", "confirm", "fail"}[k]
}

// Answer is one scripted reply.
type Answer struct {
	kind kind
	text string
	yes  bool
	err  error
}

// Pick selects the list entry whose label is text.
func Pick(text string) Answer { return Answer{kind: pick, text: text} }

// Type answers a text prompt with text.
func Type(text string) Answer { return Answer{kind: typed, text: text} }

// Yes and No answer a confirmation.
func Yes() Answer { return Answer{kind: confirm, yes: true} }
func No() Answer  { return Answer{kind: confirm} }

// Fail makes whatever prompt comes next return err.
func Fail(err error) Answer { return Answer{kind: fail, err: err} }

// Script replays answers in order. Once they run out every prompt returns
// io.EOF, as a closed terminal would.
type Script struct {
	answers []Answer

	// Prompts records the label of every prompt shown.
	Prompts []string
	// Lists records the labels offered by every Select, in order.
	Lists [][]string
	// Defaults records the initial text of every Input.
	Defaults []string
}

func New(answers ...Answer) *Script {
	return &Script{answers: answers}
}

// Remaining is the number of answers not yet consumed.
func (s *Script) Remaining() int {
	return len(s.answers)
}

func (s *Script) next(want kind, label string) (Answer, error) {
	s.Prompts = append(s.Prompts, label)
	if len(s.answers) == 0 {
		return Answer{}, io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	if a.kind == fail {
		return a, a.err
	}
	if a.kind != want {
		return a, fmt.Errorf("prompttest: %q wants a %v answer, script has %v %q", label, want, a.kind, a.text)
	}
	return a, nil
}

func (s *Script) Select(label string, labels []string, _ bool) (int, error) {
	s.Lists = append(s.Lists, append([]string(nil), labels...))
	a, err := s.next(pick, label)
	if err != nil {
		return 0, err
	}
	for i, l := range labels {
		if l == a.text {
			return i, nil
		}
	}
	return 0, fmt.Errorf("prompttest: %q has no entry %q in [%s]", label, a.text, strings.Join(labels, ", "))
}

func (s *Script) Input(label, initial string, _ func(string) error) (string, error) {
	s.Defaults = append(s.Defaults, initial)
	a, err := s.next(typed, label)
	if err != nil {
		return "", err
	}
	return a.text, nil
}

func (s *Script) Confirm(label string, _ bool) (bool, error) {
	a, err := s.next(confirm, label)
	if err != nil {
		return false, err
	}
	return a.yes, nil
}
