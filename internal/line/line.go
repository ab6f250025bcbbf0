// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package line

import (
	"errors"
	"io"
	"os"

	"github.com/apex/log"
	"golang.org/x/term"

	"github.com/staranto/promptr/internal/prompt"
)

var (
	// ErrClosed is returned by Ask once the interface has been closed.
	ErrClosed = errors.New("line interface closed")
	// ErrAborted is returned when the user abandons a prompt.
	ErrAborted = errors.New("prompt aborted")
)

// Open returns the terminal editor when cfg.Input is a terminal and the plain
// reader otherwise. Nil streams default to stdin and stdout.
func Open(cfg prompt.LineConfig) (prompt.LineInterface, error) {
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Completer == nil {
		cfg.Completer = prompt.NoopCompleter
	}

	if isTerminal(cfg.Input) {
		log.Debug("opening terminal line interface")
		return NewTerminal(cfg), nil
	}

	log.Debug("opening plain line interface")
	return NewPlain(cfg), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
