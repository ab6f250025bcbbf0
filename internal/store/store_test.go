// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/promptr/internal/prompt"
)

func TestNew_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROMPTR_CACHE_DIR", dir)
	t.Setenv("PROMPTR_CACHE_FILE", "answers.json")

	s := New()
	assert.Equal(t, filepath.Join(dir, "answers.json"), s.ResolveCachePath())
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("PROMPTR_CACHE_DIR", "")
	t.Setenv("PROMPTR_CACHE_FILE", "")
	t.Setenv("PROMPTR_CFG", "/nonexistent/promptr.yaml")

	wd, err := os.Getwd()
	require.NoError(t, err)

	s := New()
	assert.Equal(t, filepath.Join(wd, DefaultFileName), s.ResolveCachePath())
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := FromPath(filepath.Join(t.TempDir(), "nested", ".promptr.json"))
	path := s.ResolveCachePath()

	assert.False(t, s.Exists(path))

	err := s.WriteText(path, `[{"name":"a","answer":"b"}]`, prompt.WriteOptions{Encoding: prompt.UTF8})
	require.NoError(t, err)
	assert.True(t, s.Exists(path))

	info, err := s.Stat()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	text, err := s.ReadText(path, "utf8")
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"a","answer":"b"}]`, text)

	require.NoError(t, s.Remove())
	assert.False(t, s.Exists(path))
	assert.NoError(t, s.Remove(), "removing twice is fine")
}

func TestFileStore_DirectoryIsNotACache(t *testing.T) {
	dir := t.TempDir()
	s := &FileStore{Dir: dir}
	assert.False(t, s.Exists(dir))
}

func TestFileStore_Disabled(t *testing.T) {
	s := FromPath(filepath.Join(t.TempDir(), ".promptr.json"))
	path := s.ResolveCachePath()
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

	for _, v := range []string{"0", "false"} {
		t.Setenv("PROMPTR_CACHE", v)
		assert.False(t, Enabled())
		assert.False(t, s.Exists(path))
	}

	require.NoError(t, os.Remove(path))
	require.NoError(t, s.WriteText(path, "[]", prompt.WriteOptions{Encoding: prompt.UTF8}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_Encoding(t *testing.T) {
	s := FromPath(filepath.Join(t.TempDir(), ".promptr.json"))
	path := s.ResolveCachePath()

	assert.NoError(t, s.WriteText(path, "[]", prompt.WriteOptions{Encoding: "UTF-8"}))
	_, err := s.ReadText(path, "latin1")
	assert.ErrorIs(t, err, ErrEncoding)
	assert.ErrorIs(t, s.WriteText(path, "[]", prompt.WriteOptions{Encoding: "utf16"}), ErrEncoding)
}
