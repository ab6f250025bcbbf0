// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

// Transform maps a raw answer to the value that is stored.
type Transform func(raw any) any

// DefaultAnswer is the default text displayed with a question. It is either a
// Literal or a Derived value.
type DefaultAnswer interface {
	text(prior []Answer) string
}

// Literal is a fixed default.
type Literal string

func (l Literal) text([]Answer) string { return string(l) }

// Derived computes the default from the answers resolved so far in the run.
type Derived func(prior []Answer) string

func (d Derived) text(prior []Answer) string {
	if d == nil {
		return ""
	}
	return d(prior)
}

// Question describes a single prompt. A question with UseAnswer set is never
// asked; its answer is taken from an earlier answer in the same run.
type Question struct {
	// Name keys the answer. It may be empty for the last question, in which
	// case the answer can't be referenced or matched against the cache.
	Name string
	// Prompt is the question text.
	Prompt     string
	Default    DefaultAnswer
	AllowBlank bool
	// UseAnswer names an earlier answer to adopt instead of asking.
	UseAnswer string
	// Transform applies to the adopted value of a UseAnswer question, and to
	// interactive answers that have no entry in Options.Transforms.
	Transform Transform
}

// Derives reports whether q takes its answer from another question.
func (q Question) Derives() bool {
	return q.UseAnswer != ""
}

// Answer is the resolved value for one question.
type Answer struct {
	Name   string `json:"name" yaml:"name"`
	Answer any    `json:"answer" yaml:"answer"`
}

// Record is a previously persisted answer.
type Record struct {
	Name   string `json:"name" yaml:"name"`
	Answer any    `json:"answer" yaml:"answer"`
}

// Options control a single Resolve call. The zero value neither persists nor
// transforms.
type Options struct {
	Persist    bool
	Transforms map[string]Transform
}

// lookupAnswer finds the named answer among those already resolved. Nameless
// answers never match.
func lookupAnswer(answers []Answer, name string) (Answer, bool) {
	if name == "" {
		return Answer{}, false
	}
	for _, a := range answers {
		if a.Name == name {
			return a, true
		}
	}
	return Answer{}, false
}

// lookupRecord finds the cached record for name.
func lookupRecord(records []Record, name string) (Record, bool) {
	if name == "" {
		return Record{}, false
	}
	for _, r := range records {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}
