package grub

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

const (
	promptText        = "Enter a UK postcode (or type 'exit' to quit): "
	promptTitle       = "Enter a UK postcode"
	promptDescription = "or type 'exit' to quit"
	promptPlaceholder = "EC4M 7RF"
)

// Prompter asks the user for the next postcode.
type Prompter interface {
	// Prompt returns the next line of user input, or an error wrapping [io.EOF]
	// if there is no more input or the user aborted.
	Prompt(ctx context.Context) (string, error)
}

// NewPrompter returns the [Prompter] suited to in, an interactive form if it is a
// terminal or a plain line reader otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return FormPrompter{}
	}

	return NewLinePrompter(in, out)
}

// LinePrompter is a [Prompter] that writes a prompt and reads a single line at a time.
//
// Lines may be any length.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter returns a [LinePrompter] reading lines from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Prompt implements [Prompter] for [LinePrompter].
func (l *LinePrompter) Prompt(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(l.out, promptText)

	line, err := l.reader.ReadString('\n')
	if err != nil {
		// A final line with no trailing newline is still input
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}

		// Finish the prompt line so whatever comes next starts on a fresh one
		fmt.Fprintln(l.out)

		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}

		return "", fmt.Errorf("could not read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// FormPrompter is a [Prompter] that shows an interactive terminal input.
type FormPrompter struct{}

// Prompt implements [Prompter] for [FormPrompter].
func (f FormPrompter) Prompt(ctx context.Context) (string, error) {
	var input string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(promptTitle).
				Description(promptDescription).
				Placeholder(promptPlaceholder).
				Value(&input),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", fmt.Errorf("user aborted: %w", io.EOF)
		}

		return "", fmt.Errorf("could not show prompt: %w", err)
	}

	return input, nil
}
