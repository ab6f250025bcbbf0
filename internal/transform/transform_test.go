// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package transform

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testApplyCase represents a single test case for TestSpec_Apply.
type testApplyCase struct {
	Name    string            `yaml:"name"`
	Spec    string            `yaml:"spec"`
	Input   interface{}       `yaml:"input"`
	EnvVars map[string]string `yaml:"envVars"`
	Want    interface{}       `yaml:"want"`
}

func loadTestData(filename string, v any) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestSpec_Apply(t *testing.T) {
	var tests []testApplyCase
	require.NoError(t, loadTestData("apply_cases.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			t.Setenv("TZ", "")
			for k, v := range tt.EnvVars {
				t.Setenv(k, v)
			}

			spec, err := Parse(tt.Spec)
			require.NoError(t, err)
			assert.Equal(t, tt.Want, spec.Apply(tt.Input))
		})
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("u-10:<%s>")
	require.NoError(t, err)
	assert.Equal(t, Spec{Flags: "u-10", Format: "<%s>"}, s)

	_, err = Parse("x")
	assert.Error(t, err)

	_, err = Parse("u:no placeholder")
	assert.Error(t, err)

	_, err = Parse(":%s and %s")
	assert.Error(t, err)
}

func TestCompile(t *testing.T) {
	fn, err := Compile("  ")
	require.NoError(t, err)
	assert.Nil(t, fn)

	fn, err = Compile(":%s is the best!")
	require.NoError(t, err)
	require.NotNil(t, fn)
	assert.Equal(t, "pizza is the best!", fn("pizza"))

	_, err = Compile("?")
	assert.Error(t, err)
}
