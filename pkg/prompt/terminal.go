package prompt

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// Terminal prompts on a terminal with promptui.
type Terminal struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
	// Size is the number of list rows shown at once.
	Size int
}

// NewTerminal prompts on in and out. Neither is closed by the prompts.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{
		Stdin:  io.NopCloser(in),
		Stdout: nopWriteCloser{out},
		Size:   10,
	}
}

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "➜  {{ . | bold }}",
	Inactive: "   {{ . }}",
	Selected: "✔ {{ . | faint }}",
}

var inputTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} ",
	Valid:   "{{ . | green }} ",
	Invalid: "{{ . | red }} ",
	Success: "{{ . | bold }} ",
}

func (t *Terminal) Select(label string, labels []string, searchable bool) (int, error) {
	prompt := promptui.Select{
		Label:     label,
		Items:     labels,
		Templates: selectTemplates,
		Size:      t.Size,
		HideHelp:  !searchable,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	if searchable {
		prompt.Searcher = func(input string, index int) bool {
			return Match(input, labels[index])
		}
	}
	i, _, err := prompt.Run()
	return i, err
}

func (t *Terminal) Input(label, initial string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   initial,
		AllowEdit: true,
		Templates: inputTemplates,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	if validate != nil {
		prompt.Validate = validate
	}
	return prompt.Run()
}

func (t *Terminal) Confirm(label string, def bool) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	if def {
		prompt.Default = "y"
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Match reports whether input fuzzy matches label, ignoring case and
// spaces. Empty input matches everything.
func Match(input, label string) bool {
	input = strings.ReplaceAll(strings.ToLower(input), " ", "")
	if input == "" {
		return true
	}
	label = strings.ReplaceAll(strings.ToLower(label), " ", "")
	return len(fuzzy.Find(input, []string{label})) > 0
}

// IsInterrupt reports whether err is the user backing out of a prompt with
// Ctrl-C or Ctrl-D.
func IsInterrupt(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
