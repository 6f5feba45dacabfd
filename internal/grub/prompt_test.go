package grub_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go.followtheprocess.codes/grub/internal/grub"
	"go.followtheprocess.codes/test"
)

func TestLinePrompter(t *testing.T) {
	out := &bytes.Buffer{}
	prompter := grub.NewLinePrompter(strings.NewReader("EC4M7RF\n  w1a 1aa  \nlast"), out)

	for _, want := range []string{"EC4M7RF", "  w1a 1aa  ", "last"} {
		got, err := prompter.Prompt(t.Context())
		test.Ok(t, err)
		test.Equal(t, got, want)
	}

	_, err := prompter.Prompt(t.Context())
	test.True(t, errors.Is(err, io.EOF))

	test.Equal(t, strings.Count(out.String(), "Enter a UK postcode (or type 'exit' to quit): "), 4)
}

func TestLinePrompterLongLine(t *testing.T) {
	long := strings.Repeat("W", 1<<20)
	prompter := grub.NewLinePrompter(strings.NewReader(long+"\r\nexit\n"), &bytes.Buffer{})

	got, err := prompter.Prompt(t.Context())
	test.Ok(t, err)
	test.Equal(t, len(got), len(long))

	got, err = prompter.Prompt(t.Context())
	test.Ok(t, err)
	test.Equal(t, got, "exit")
}

func TestLinePrompterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	out := &bytes.Buffer{}
	prompter := grub.NewLinePrompter(strings.NewReader("EC4M7RF\n"), out)

	_, err := prompter.Prompt(ctx)
	test.True(t, errors.Is(err, context.Canceled))
	test.Equal(t, out.String(), "")
}

func TestNewPrompterNotTerminal(t *testing.T) {
	prompter := grub.NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	_, ok := prompter.(*grub.LinePrompter)
	test.True(t, ok, test.Context("expected a LinePrompter for non-terminal input, got %T", prompter))
}
