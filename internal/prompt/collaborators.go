// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"io"
)

// UTF8 is the only text encoding the resolver reads and writes the cache with.
const UTF8 = "utf8"

// Completer offers completions for the current input line.
type Completer func(line string) []string

// NoopCompleter never completes anything.
func NoopCompleter(string) []string { return nil }

// LineConfig is handed to the line interface factory.
type LineConfig struct {
	Completer Completer
	Input     io.Reader
	Output    io.Writer
}

// LineInterface reads one line of input per prompt.
type LineInterface interface {
	// Ask shows prompt and blocks until a line is delivered. A nil value means
	// no answer was given.
	Ask(ctx context.Context, prompt string) (any, error)
	// Write pre-populates the input buffer of the next Ask.
	Write(text string)
	Close() error
}

// WriteOptions accompany every cache write.
type WriteOptions struct {
	Encoding string
}

// AnswerStore holds the cache file.
type AnswerStore interface {
	ResolveCachePath() string
	Exists(path string) bool
	ReadText(path string, encoding string) (string, error)
	WriteText(path string, text string, opts WriteOptions) error
}

// Codec converts between the cache file contents and answers.
type Codec interface {
	Decode(raw string) ([]Record, error)
	Encode(answers []Answer) (string, error)
}
