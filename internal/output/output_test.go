// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/promptr/internal/codec"
	"github.com/staranto/promptr/internal/prompt"
)

var testRecords = []prompt.Record{
	{Name: "food", Answer: "pizza"},
	{Name: "count", Answer: float64(3)},
	{Name: "", Answer: true},
}

func TestSpit(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{
			name:   "json",
			format: "json",
			want:   `[{"name":"food","answer":"pizza"},{"name":"count","answer":3},{"name":"","answer":true}]` + "\n",
		},
		{
			name:   "yaml",
			format: "yaml",
			want: `- name: food
  answer: pizza
- name: count
  answer: 3
- name: ""
  answer: true
`,
		},
		{
			name:   "raw",
			format: "raw",
			want: `[
  {
    "name": "food",
    "answer": "pizza"
  },
  {
    "name": "count",
    "answer": 3
  },
  {
    "name": "",
    "answer": true
  }
]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Spit(&buf, testRecords, Options{Format: tt.format, Codec: codec.JSON{}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSpit_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, nil, Options{Format: "json"}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestSpit_RawWithoutCodec(t *testing.T) {
	var buf bytes.Buffer
	err := Spit(&buf, testRecords, Options{Format: "raw"})
	assert.ErrorIs(t, err, ErrNoCodec)
}

func TestSpit_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, testRecords, Options{Format: "text"}))

	out := buf.String()
	assert.Contains(t, out, "food")
	assert.Contains(t, out, "pizza")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "-")
	assert.NotContains(t, out, "answer")
}

func TestSpit_TextTitles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, testRecords, Options{Format: "text", Titles: true}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[0], "answer")
}

func TestSpit_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, nil, Options{Format: "text", Titles: true}))
	assert.Empty(t, buf.String())
}

func TestFromAnswers(t *testing.T) {
	got := FromAnswers([]prompt.Answer{{Name: "a", Answer: "1"}})
	assert.Equal(t, []prompt.Record{{Name: "a", Answer: "1"}}, got)
	assert.NotNil(t, FromAnswers(nil))
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{name: "string", value: "hello", want: "hello"},
		{name: "int", value: 42, want: "42"},
		{name: "float64 integral", value: 42.0, want: "42"},
		{name: "float64 with decimal", value: 42.5, want: "42.5"},
		{name: "bool true", value: true, want: "true"},
		{name: "bool false", value: false, want: "false"},
		{name: "nil default", value: nil, want: ""},
		{name: "nil custom", value: nil, emptyVal: "-", want: "-"},
		{name: "empty string custom", value: "", emptyVal: "-", want: "-"},
		{name: "slice", value: []string{"a", "b"}, want: `["a","b"]`},
		{name: "map", value: map[string]int{"x": 1}, want: `{"x":1}`},
		{name: "zero int", value: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetColors(t *testing.T) {
	t.Setenv("PROMPTR_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", "")

	header, even, odd := getColors("colors")

	assert.NotEmpty(t, header)
	assert.NotEmpty(t, even)
	assert.NotEmpty(t, odd)
}

func BenchmarkInterfaceToString(b *testing.B) {
	values := []interface{}{
		"string",
		42,
		42.5,
		true,
		nil,
		[]string{"a", "b"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range values {
			InterfaceToString(v)
		}
	}
}
