// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/promptr/internal/prompt"
)

// ErrInvalidJSON is returned when the cache is not parseable JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// JSON is the default cache format: an array of {name, answer} objects.
type JSON struct{}

// Decode reads records out of raw. Entries that aren't objects with a name are
// skipped, as is a document that isn't an array.
func (JSON) Decode(raw string) ([]prompt.Record, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	if !gjson.Valid(raw) {
		return nil, ErrInvalidJSON
	}

	doc := gjson.Parse(raw)
	if !doc.IsArray() {
		log.Warnf("answer cache is not an array, ignoring it")
		return nil, nil
	}

	var records []prompt.Record
	for i, entry := range doc.Array() {
		name := entry.Get("name")
		if !entry.IsObject() || name.Type != gjson.String {
			log.Warnf("skipping malformed cache entry %d: %s", i, entry.Raw)
			continue
		}
		records = append(records, prompt.Record{
			Name:   name.String(),
			Answer: entry.Get("answer").Value(),
		})
	}

	return records, nil
}

// Encode renders answers as indented JSON.
func (JSON) Encode(answers []prompt.Answer) (string, error) {
	if answers == nil {
		answers = []prompt.Answer{}
	}
	b, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal answers: %w", err)
	}
	return string(b) + "\n", nil
}
