// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RenderPrompt builds the text shown for a question. The question is trimmed
// and loses one trailing "?", the default (if any) is added in parentheses and
// the result always ends in "? ".
func RenderPrompt(question string, def string, hasDefault bool) string {
	base := strings.TrimSuffix(strings.TrimSpace(question), "?")
	if hasDefault {
		return fmt.Sprintf("%s (%s)? ", base, def)
	}
	return base + "? "
}

// displayDefault evaluates the default of q against the answers so far.
func displayDefault(q Question, prior []Answer) (string, bool) {
	if q.Default == nil {
		return "", false
	}
	return q.Default.text(prior), true
}

// stringify renders a cached value the way it is typed back into the input
// buffer.
func stringify(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool, int, int64, float64:
		return fmt.Sprint(v)
	}

	// Objects and lists are prefilled as the JSON they were stored as.
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(b)
}
