// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/staranto/promptr/internal/prompt"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		delimiter string
		want      []Filter
	}{
		{
			name: "empty spec",
			spec: "",
		},
		{
			name: "single exact match filter",
			spec: "name=food",
			want: []Filter{{Key: "name", Operand: "=", Target: "food"}},
		},
		{
			name: "prefix match filter",
			spec: "name^db_",
			want: []Filter{{Key: "name", Operand: "^", Target: "db_"}},
		},
		{
			name: "negated exact match",
			spec: "answer!=pizza",
			want: []Filter{{Key: "answer", Operand: "=", Target: "pizza", Negate: true}},
		},
		{
			name: "multiple filters",
			spec: "name^db_,answer/^post",
			want: []Filter{
				{Key: "name", Operand: "^", Target: "db_"},
				{Key: "answer", Operand: "/", Target: "^post"},
			},
		},
		{
			name:      "custom delimiter",
			spec:      "name=a;answer>3",
			delimiter: ";",
			want: []Filter{
				{Key: "name", Operand: "=", Target: "a"},
				{Key: "answer", Operand: ">", Target: "3"},
			},
		},
		{
			name: "invalid filters skipped",
			spec: "nooperator,=nokey,name=ok",
			want: []Filter{{Key: "name", Operand: "=", Target: "ok"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.delimiter != "" {
				t.Setenv("PROMPTR_FILTER_DELIM", tt.delimiter)
			}
			assert.Equal(t, tt.want, BuildFilters(tt.spec))
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		filter Filter
		want   bool
	}{
		{"equal", "pizza", Filter{Operand: "=", Target: "pizza"}, true},
		{"not equal", "pizza", Filter{Operand: "=", Target: "tacos", Negate: true}, true},
		{"fold", "PIZZA", Filter{Operand: "~", Target: "pizza"}, true},
		{"prefix", "pizza", Filter{Operand: "^", Target: "piz"}, true},
		{"greater", "b", Filter{Operand: ">", Target: "a"}, true},
		{"less", "b", Filter{Operand: "<", Target: "a"}, false},
		{"contains", "pepperoni pizza", Filter{Operand: "@", Target: "roni"}, true},
		{"regex", "pizza", Filter{Operand: "/", Target: "z{2}"}, true},
		{"bad regex", "pizza", Filter{Operand: "/", Target: "("}, false},
		{"negated regex", "pizza", Filter{Operand: "/", Target: "^t", Negate: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkStringOperand(tt.value, tt.filter))
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	assert.True(t, checkNumericOperand(3, Filter{Operand: "=", Target: "3"}))
	assert.True(t, checkNumericOperand(3, Filter{Operand: ">", Target: "2.5"}))
	assert.False(t, checkNumericOperand(3, Filter{Operand: "<", Target: "2"}))
	assert.True(t, checkNumericOperand(3, Filter{Operand: "=", Target: "4", Negate: true}))
	assert.False(t, checkNumericOperand(3, Filter{Operand: "=", Target: "three"}))
	assert.False(t, checkNumericOperand(3, Filter{Operand: "^", Target: "3"}))
}

func TestCheckContainsOperand(t *testing.T) {
	assert.True(t, checkContainsOperand([]any{"a", "b"}, Filter{Operand: "@", Target: "b"}))
	assert.False(t, checkContainsOperand([]any{"a"}, Filter{Operand: "@", Target: "b"}))
	assert.True(t, checkContainsOperand([]any{"a"}, Filter{Operand: "@", Target: "b", Negate: true}))
	assert.True(t, checkContainsOperand(map[string]any{"k": 1}, Filter{Operand: "@", Target: "k"}))
	assert.True(t, checkContainsOperand(map[string]any{"k": 1}, Filter{Operand: "@", Target: "x", Negate: true}))
	assert.False(t, checkContainsOperand(42, Filter{Operand: "@", Target: "x"}))
}

func TestApplyFilters(t *testing.T) {
	candidate := gjson.Parse(`{"name":"db_host","answer":{"host":"localhost","port":5432,"tags":["a","b"]}}`)

	assert.True(t, applyFilters(candidate, nil))
	assert.True(t, applyFilters(candidate, []Filter{{Key: "name", Operand: "^", Target: "db_"}}))
	assert.True(t, applyFilters(candidate, []Filter{{Key: "answer.port", Operand: ">", Target: "5000"}}))
	assert.True(t, applyFilters(candidate, []Filter{{Key: "answer.tags", Operand: "@", Target: "b"}}))
	assert.False(t, applyFilters(candidate, []Filter{{Key: "missing", Operand: "=", Target: "x"}}))
	assert.False(t, applyFilters(candidate, []Filter{
		{Key: "name", Operand: "^", Target: "db_"},
		{Key: "answer.host", Operand: "=", Target: "remote"},
	}))
}

func TestFilterRecords(t *testing.T) {
	records := []prompt.Record{
		{Name: "food", Answer: "pizza"},
		{Name: "count", Answer: float64(3)},
		{Name: "ok", Answer: true},
		{Name: "db_host", Answer: "localhost"},
	}

	assert.Equal(t, records, FilterRecords(records, ""))
	assert.Equal(t, []prompt.Record{{Name: "food", Answer: "pizza"}}, FilterRecords(records, "answer=pizza"))
	assert.Equal(t, []prompt.Record{{Name: "count", Answer: float64(3)}}, FilterRecords(records, "name=count,answer>2"))
	assert.Empty(t, FilterRecords(records, "name=count,answer<2"))
	assert.Equal(t, []prompt.Record{{Name: "ok", Answer: true}}, FilterRecords(records, "answer=true"))
	assert.Equal(t, []prompt.Record{{Name: "db_host", Answer: "localhost"}}, FilterRecords(records, "name^db_"))
	assert.Empty(t, FilterRecords(records, "name=nothing"))
}
