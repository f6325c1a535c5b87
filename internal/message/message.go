// Package message decides which text the quokka says.
package message

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fsmiamoto/quokka-say/internal/fortune"
)

// Source names where the message came from.
type Source string

const (
	SourceArg     Source = "arg"
	SourceStdin   Source = "stdin"
	SourceFortune Source = "fortune"
	SourceDefault Source = "default"
)

// DefaultMessage is said when nothing else provides text.
const DefaultMessage = "Hello, I'm a quokka!"

// maxStdinBytes bounds how much piped input is read.
const maxStdinBytes = 1 << 20

type ResolveInput struct {
	Args []string // positional words, joined with single spaces

	// Stdin is read when Args is empty. Leave it nil when stdin is a
	// terminal so an interactive run does not block.
	Stdin io.Reader

	Fortune        bool   // ask the fortune program before the default
	FortuneCommand string // defaults to fortune.DefaultCommand
}

type Resolution struct {
	Source Source
	Text   string

	// FortuneErr is set when the fortune program was asked and failed.
	// It is not fatal; resolution continues with the default.
	FortuneErr error
}

// Resolve picks the message: arguments first, then piped stdin, then the
// fortune program when enabled, then DefaultMessage.
func Resolve(ctx context.Context, in ResolveInput) (Resolution, error) {
	if text := strings.Join(in.Args, " "); text != "" {
		return Resolution{Source: SourceArg, Text: text}, nil
	}

	if in.Stdin != nil {
		text, err := readAll(ctx, in.Stdin)
		if err != nil {
			return Resolution{}, fmt.Errorf("read stdin: %w", err)
		}
		if text = strings.TrimSpace(text); text != "" {
			return Resolution{Source: SourceStdin, Text: text}, nil
		}
	}

	var res Resolution
	if in.Fortune {
		fctx, cancel := context.WithTimeout(ctx, fortune.DefaultTimeout)
		text, err := fortune.Run(fctx, in.FortuneCommand)
		cancel()
		if err != nil {
			res.FortuneErr = err
		} else if text != "" {
			return Resolution{Source: SourceFortune, Text: text}, nil
		}
	}

	res.Source = SourceDefault
	res.Text = DefaultMessage
	return res, nil
}

// readAll reads r until EOF or until ctx is done.
func readAll(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(io.LimitReader(r, maxStdinBytes))
		ch <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return string(res.data), res.err
	}
}
