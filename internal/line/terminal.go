// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package line

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/staranto/promptr/internal/prompt"
)

// Terminal edits each answer in place with a single-line text input. Text
// given to Write becomes the editable starting value of the next Ask.
type Terminal struct {
	cfg     prompt.LineConfig
	prefill string
	closed  bool
}

func NewTerminal(cfg prompt.LineConfig) *Terminal {
	return &Terminal{cfg: cfg}
}

// Ask runs one input program and returns the submitted line.
func (t *Terminal) Ask(ctx context.Context, text string) (any, error) {
	if t.closed {
		return nil, ErrClosed
	}

	m := newInputModel(text, t.prefill, t.cfg.Completer)
	t.prefill = ""

	p := tea.NewProgram(m,
		tea.WithInput(t.cfg.Input),
		tea.WithOutput(t.cfg.Output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	result, ok := final.(inputModel)
	if !ok {
		return nil, fmt.Errorf("unexpected input model %T", final)
	}
	if result.aborted {
		return nil, ErrAborted
	}

	return result.input.Value(), nil
}

func (t *Terminal) Write(text string) {
	t.prefill = text
}

func (t *Terminal) Close() error {
	t.closed = true
	return nil
}

type inputModel struct {
	input     textinput.Model
	completer prompt.Completer
	done      bool
	aborted   bool
}

func newInputModel(text, prefill string, completer prompt.Completer) inputModel {
	ti := textinput.New()
	ti.Prompt = text
	ti.SetValue(prefill)
	ti.CursorEnd()
	ti.Focus()

	if completer != nil {
		ti.ShowSuggestions = true
		ti.SetSuggestions(completer(prefill))
	}

	return inputModel{input: ti, completer: completer}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.completer != nil {
		m.input.SetSuggestions(m.completer(m.input.Value()))
	}
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.aborted {
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}
