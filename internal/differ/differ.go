// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/staranto/promptr/internal/prompt"
)

// Diff compares the cached records with the fresh answers, keyed by name, and
// returns an ASCII rendering of the changes and whether there were any.
// Unnamed answers have no key and are left out.
func Diff(previous []prompt.Record, current []prompt.Answer, color bool) (string, bool, error) {
	left := map[string]interface{}{}
	for _, r := range previous {
		if r.Name != "" {
			left[r.Name] = normalize(r.Answer)
		}
	}

	right := map[string]interface{}{}
	for _, a := range current {
		if a.Name != "" {
			right[a.Name] = normalize(a.Answer)
		}
	}

	d := gojsondiff.New().CompareObjects(left, right)
	if !d.Modified() {
		return "", false, nil
	}

	f := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	})
	out, err := f.Format(d)
	if err != nil {
		return "", true, fmt.Errorf("failed to format diff: %w", err)
	}

	return out, true, nil
}

// normalize maps answer values onto the types a JSON decoder produces so that
// a cached 3 and a fresh 3 compare equal.
func normalize(v interface{}) interface{} {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}
