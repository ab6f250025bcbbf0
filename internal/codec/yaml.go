// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/staranto/promptr/internal/prompt"
)

// YAML stores the cache as a YAML sequence of {name, answer} mappings.
type YAML struct{}

func (YAML) Decode(raw string) ([]prompt.Record, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var records []prompt.Record
	if err := yaml.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	kept := records[:0]
	for _, r := range records {
		if r.Name != "" {
			kept = append(kept, r)
		}
	}
	return kept, nil
}

func (YAML) Encode(answers []prompt.Answer) (string, error) {
	if answers == nil {
		answers = []prompt.Answer{}
	}
	b, err := yaml.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("failed to marshal answers: %w", err)
	}
	return string(b), nil
}
