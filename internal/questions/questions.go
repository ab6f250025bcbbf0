// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package questions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/staranto/promptr/internal/prompt"
	"github.com/staranto/promptr/internal/transform"
)

// File is the on-disk layout of a question file.
type File struct {
	Persist   *bool   `yaml:"persist" hcl:"persist,optional"`
	Questions []Entry `yaml:"questions" hcl:"question,block"`
}

// Entry is one question as written in a question file.
type Entry struct {
	Name     string `yaml:"name" hcl:"name,optional"`
	Question string `yaml:"question" hcl:"question,optional"`
	// Prompt is accepted as an alias of Question.
	Prompt string `yaml:"prompt" hcl:"prompt,optional"`
	// Default is shown with the question.
	Default *string `yaml:"default" hcl:"default,optional"`
	// DefaultFrom is a gjson path evaluated over the answers given so far,
	// e.g. `#(name=="project").answer`.
	DefaultFrom string `yaml:"defaultFrom" hcl:"default_from,optional"`
	AllowBlank  bool   `yaml:"allowBlank" hcl:"allow_blank,optional"`
	UseAnswer   string `yaml:"useAnswer" hcl:"use_answer,optional"`
	// Transform is a transform spec, see package transform.
	Transform string `yaml:"transform" hcl:"transform,optional"`
}

// Batch is a question file ready to hand to a prompt.Resolver.
type Batch struct {
	Source     string
	Questions  []prompt.Question
	Transforms map[string]prompt.Transform
	// Persist is nil when the file doesn't say.
	Persist *bool
}

// Load reads and builds the question file at path. The format follows the
// extension: .hcl is HCL, anything else is YAML (which includes JSON). In HCL
// each question is an unlabeled `question { name = "..." }` block so the
// final one can leave name out.
func Load(path string) (Batch, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Batch{}, fmt.Errorf("failed to read question file: %w", err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		if err := hclsimple.Decode(filepath.Base(path), src, nil, &f); err != nil {
			return Batch{}, fmt.Errorf("failed to parse question file %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(src, &f); err != nil {
			return Batch{}, fmt.Errorf("failed to parse question file %s: %w", path, err)
		}
	}

	b, err := Build(f)
	if err != nil {
		return Batch{}, fmt.Errorf("%s: %w", path, err)
	}
	b.Source = path
	log.Debugf("loaded %d questions from %s", len(b.Questions), path)

	return b, nil
}

// Build validates f and converts it into a Batch.
func Build(f File) (Batch, error) {
	b := Batch{
		Persist:    f.Persist,
		Questions:  make([]prompt.Question, 0, len(f.Questions)),
		Transforms: map[string]prompt.Transform{},
	}

	seen := map[string]bool{}
	for i, e := range f.Questions {
		name := strings.TrimSpace(e.Name)
		ref := name
		if ref == "" {
			ref = fmt.Sprintf("#%d", i+1)
		}

		if name == "" && i != len(f.Questions)-1 {
			return Batch{}, fmt.Errorf("question %s: only the last question may be unnamed", ref)
		}
		if name != "" && seen[name] {
			return Batch{}, fmt.Errorf("question %s: duplicate name", ref)
		}
		seen[name] = true

		fn, err := transform.Compile(e.Transform)
		if err != nil {
			return Batch{}, fmt.Errorf("question %s: %w", ref, err)
		}

		q := prompt.Question{
			Name:       name,
			Prompt:     e.Question,
			AllowBlank: e.AllowBlank,
			UseAnswer:  strings.TrimSpace(e.UseAnswer),
		}
		if q.Prompt == "" {
			q.Prompt = e.Prompt
		}

		if q.Derives() {
			if e.Default != nil || e.DefaultFrom != "" {
				return Batch{}, fmt.Errorf("question %s: useAnswer can't have a default", ref)
			}
			q.Transform = fn
			b.Questions = append(b.Questions, q)
			continue
		}

		if strings.TrimSpace(q.Prompt) == "" {
			return Batch{}, fmt.Errorf("question %s: no question text", ref)
		}

		switch {
		case e.Default != nil && e.DefaultFrom != "":
			return Batch{}, fmt.Errorf("question %s: default and defaultFrom are exclusive", ref)
		case e.Default != nil:
			q.Default = prompt.Literal(*e.Default)
		case e.DefaultFrom != "":
			q.Default = DefaultFrom(e.DefaultFrom)
		}

		if fn != nil {
			if name != "" {
				b.Transforms[name] = fn
			} else {
				q.Transform = fn
			}
		}

		b.Questions = append(b.Questions, q)
	}

	return b, nil
}

// DefaultFrom derives a default by evaluating a gjson path over the answers
// resolved so far, serialized as a JSON array of {name, answer}.
func DefaultFrom(path string) prompt.Derived {
	return func(prior []prompt.Answer) string {
		raw, err := json.Marshal(prior)
		if err != nil {
			log.WithError(err).Warnf("unable to evaluate default %s", path)
			return ""
		}
		return gjson.GetBytes(raw, path).String()
	}
}
