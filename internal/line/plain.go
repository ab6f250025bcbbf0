// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package line

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/staranto/promptr/internal/prompt"
)

// ClearPrefill typed on its own discards a pre-populated value.
const ClearPrefill = "-"

// Plain reads newline terminated answers from any reader. It can't edit a
// line in place, so a pre-populated value is shown as a [hint]. An empty line
// accepts it and a lone ClearPrefill answers blank instead.
type Plain struct {
	in      *bufio.Reader
	out     io.Writer
	prefill string
	closed  bool
}

func NewPlain(cfg prompt.LineConfig) *Plain {
	return &Plain{
		in:  bufio.NewReader(cfg.Input),
		out: cfg.Output,
	}
}

// Ask writes the prompt and reads one line. End of input with nothing typed is
// io.EOF.
func (p *Plain) Ask(ctx context.Context, text string) (any, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefill := p.prefill
	p.prefill = ""

	if prefill != "" {
		fmt.Fprintf(p.out, "%s[%s] ", text, prefill)
	} else {
		fmt.Fprint(p.out, text)
	}

	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		fmt.Fprintln(p.out)
		return nil, err
	}
	s = strings.TrimRight(s, "\r\n")

	if prefill != "" {
		switch s {
		case "":
			return prefill, nil
		case ClearPrefill:
			return "", nil
		}
	}
	return s, nil
}

// Write sets the value accepted by an empty line on the next Ask.
func (p *Plain) Write(text string) {
	p.prefill = text
}

func (p *Plain) Close() error {
	p.closed = true
	return nil
}
