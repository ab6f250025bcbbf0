// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPrompt(t *testing.T) {
	assert.Equal(t, "Do you like food? ", RenderPrompt("Do you like food?", "", false))
	assert.Equal(t, "Do you like food (Darn tootin!)? ", RenderPrompt("Do you like food?", "Darn tootin!", true))
	assert.Equal(t, "Name ()? ", RenderPrompt(" Name ", "", true))
	assert.Equal(t, "Really?? ", RenderPrompt("Really???", "", false))
}

func TestValidateAnswer(t *testing.T) {
	strict := Question{}.validators()
	lax := Question{AllowBlank: true}.validators()

	assert.Error(t, ValidateAnswer(nil, strict...))
	assert.Error(t, ValidateAnswer("", strict...))
	assert.NoError(t, ValidateAnswer(" ", strict...))
	assert.NoError(t, ValidateAnswer(0, strict...))

	assert.Error(t, ValidateAnswer(nil, lax...))
	assert.NoError(t, ValidateAnswer("", lax...))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", stringify(nil))
	assert.Equal(t, "pizza", stringify("pizza"))
	assert.Equal(t, "3", stringify(float64(3)))
	assert.Equal(t, "3.5", stringify(3.5))
	assert.Equal(t, "true", stringify(true))
	assert.Equal(t, `{"a":1,"b":["x"]}`, stringify(map[string]any{"a": float64(1), "b": []any{"x"}}))
	assert.Equal(t, `["x","y"]`, stringify([]any{"x", "y"}))
}
