// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/apex/log"
)

// ErrNoLineInterface is returned when a Resolver has no way to open a line
// interface.
var ErrNoLineInterface = errors.New("no line interface configured")

// Resolver asks a batch of questions and collects the answers. Open, Store and
// Codec are required.
type Resolver struct {
	// Open creates the line interface for one Resolve call.
	Open   func(LineConfig) (LineInterface, error)
	Store  AnswerStore
	Codec  Codec
	Input  io.Reader
	Output io.Writer
}

// Resolve asks every question in order and returns one answer per question,
// in the same order. Answers are written back to the store only when
// opts.Persist is set and every question resolved.
func (r *Resolver) Resolve(
	ctx context.Context,
	questions []Question,
	opts Options,
) ([]Answer, error) {
	if r.Open == nil {
		return nil, ErrNoLineInterface
	}

	lines, err := r.Open(LineConfig{
		Completer: NoopCompleter,
		Input:     r.Input,
		Output:    r.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open line interface: %w", err)
	}

	path := r.Store.ResolveCachePath()
	cache, err := r.loadCache(path)
	if err != nil {
		_ = lines.Close()
		return nil, err
	}

	if len(questions) == 0 {
		if err := lines.Close(); err != nil {
			return nil, fmt.Errorf("failed to close line interface: %w", err)
		}
		return []Answer{}, nil
	}

	answers := make([]Answer, 0, len(questions))
	for i, q := range questions {
		log.Debugf("resolving question %d (%q)", i, q.Name)

		var answer Answer
		if q.Derives() {
			answer = derive(q, answers)
		} else {
			answer, err = r.ask(ctx, lines, q, answers, cache, opts.Transforms)
			if err != nil {
				_ = lines.Close()
				return nil, err
			}
		}

		if answer.Answer == nil {
			answer.Answer = ""
		}
		answers = append(answers, answer)
	}

	if err := lines.Close(); err != nil {
		return nil, fmt.Errorf("failed to close line interface: %w", err)
	}

	if opts.Persist {
		if err := r.persist(path, answers); err != nil {
			return nil, err
		}
	}

	return answers, nil
}

// loadCache reads the previous answers. A cache that doesn't exist is empty.
func (r *Resolver) loadCache(path string) ([]Record, error) {
	if !r.Store.Exists(path) {
		log.Debugf("no answer cache at %s", path)
		return nil, nil
	}

	raw, err := r.Store.ReadText(path, UTF8)
	if err != nil {
		return nil, fmt.Errorf("failed to read answer cache %s: %w", path, err)
	}

	records, err := r.Codec.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode answer cache %s: %w", path, err)
	}
	log.Debugf("loaded %d cached answers from %s", len(records), path)

	return records, nil
}

func (r *Resolver) persist(path string, answers []Answer) error {
	raw, err := r.Codec.Encode(answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	if err := r.Store.WriteText(path, raw, WriteOptions{Encoding: UTF8}); err != nil {
		return fmt.Errorf("failed to write answer cache %s: %w", path, err)
	}
	log.Debugf("persisted %d answers to %s", len(answers), path)
	return nil
}

// derive adopts an earlier answer from this run. An unknown reference yields
// the empty string.
func derive(q Question, answers []Answer) Answer {
	var raw any = ""
	if a, ok := lookupAnswer(answers, q.UseAnswer); ok {
		raw = a.Answer
	} else {
		log.Debugf("useAnswer %q of %q not resolved, using blank", q.UseAnswer, q.Name)
	}

	if q.Transform != nil {
		raw = q.Transform(raw)
	}

	return Answer{Name: q.Name, Answer: raw}
}

// ask prompts for q until a valid answer arrives.
func (r *Resolver) ask(
	ctx context.Context,
	lines LineInterface,
	q Question,
	answers []Answer,
	cache []Record,
	transforms map[string]Transform,
) (Answer, error) {
	prior := make([]Answer, len(answers))
	copy(prior, answers)
	def, hasDefault := displayDefault(q, prior)
	text := RenderPrompt(q.Prompt, def, hasDefault)

	transform := q.Transform
	if t, ok := transforms[q.Name]; ok && q.Name != "" {
		transform = t
	}

	cached, hasCached := lookupRecord(cache, q.Name)
	if hasCached {
		shown := cached.Answer
		if transform != nil {
			shown = transform(shown)
		}
		lines.Write(stringify(shown))
	}

	var raw any
	for {
		value, err := lines.Ask(ctx, text)
		if err != nil {
			return Answer{}, fmt.Errorf("failed to read answer for %q: %w", q.Name, err)
		}
		if err := ValidateAnswer(value, q.validators()...); err != nil {
			log.Debugf("re-asking %q: %v", q.Name, err)
			continue
		}
		raw = value
		break
	}

	switch {
	case transform == nil:
		return Answer{Name: q.Name, Answer: raw}, nil
	case hasCached:
		return transformCached(q, transform, cached), nil
	default:
		return transformFresh(q, transform, raw), nil
	}
}

// transformCached stores the transform of the previously cached value rather
// than of the line just typed.
func transformCached(q Question, transform Transform, cached Record) Answer {
	return Answer{Name: q.Name, Answer: transform(cached.Answer)}
}

// transformFresh stores the transform of the line just typed.
func transformFresh(q Question, transform Transform, raw any) Answer {
	return Answer{Name: q.Name, Answer: transform(raw)}
}
