// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/promptr/internal/config"
	"github.com/staranto/promptr/internal/prompt"
)

// DefaultFileName is the cache file used when nothing else is configured.
const DefaultFileName = ".promptr.json"

// ErrEncoding is returned for any text encoding other than UTF-8.
var ErrEncoding = errors.New("unsupported text encoding")

// FileStore keeps the answer cache in a single file on disk.
type FileStore struct {
	Dir      string
	FileName string
}

// New resolves the cache location.
// Precedence for the directory:
//  1. PROMPTR_CACHE_DIR, if set and non-empty
//  2. the working directory
//
// Precedence for the file name:
//  1. PROMPTR_CACHE_FILE, if set and non-empty
//  2. cache.file from the config file
//  3. DefaultFileName
func New() *FileStore {
	dir, ok := os.LookupEnv("PROMPTR_CACHE_DIR")
	if !ok || dir == "" {
		dir, _ = os.Getwd()
	}

	name, ok := os.LookupEnv("PROMPTR_CACHE_FILE")
	if !ok || name == "" {
		name, _ = config.GetString("cache.file", DefaultFileName)
	}

	return &FileStore{Dir: dir, FileName: name}
}

// FromPath builds a store for an explicit cache file path.
func FromPath(path string) *FileStore {
	return &FileStore{Dir: filepath.Dir(path), FileName: filepath.Base(path)}
}

// Enabled returns true unless PROMPTR_CACHE explicitly disables it
// ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("PROMPTR_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// ResolveCachePath returns the full path of the cache file.
func (s *FileStore) ResolveCachePath() string {
	name := s.FileName
	if name == "" {
		name = DefaultFileName
	}
	return filepath.Join(s.Dir, name)
}

// Exists reports whether a regular file is present at path. A disabled cache
// never exists.
func (s *FileStore) Exists(path string) bool {
	if !Enabled() {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadText reads the cache file.
func (s *FileStore) ReadText(path string, encoding string) (string, error) {
	if err := checkEncoding(encoding); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read from cache: %w", err)
	}
	return string(b), nil
}

// WriteText stores text at path, creating directories as needed.
func (s *FileStore) WriteText(path string, text string, opts prompt.WriteOptions) error {
	if err := checkEncoding(opts.Encoding); err != nil {
		return err
	}
	if !Enabled() {
		log.Debugf("cache disabled, not writing %s", path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// Stat returns file info for the cache file.
func (s *FileStore) Stat() (os.FileInfo, error) {
	return os.Stat(s.ResolveCachePath())
}

// Remove deletes the cache file. Removing a cache that doesn't exist is not an
// error.
func (s *FileStore) Remove() error {
	path := s.ResolveCachePath()
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove cache %s: %w", path, err)
	}
	log.Debugf("removed cache file %s", path)
	return nil
}

func checkEncoding(encoding string) error {
	switch strings.ToLower(strings.ReplaceAll(encoding, "-", "")) {
	case "", prompt.UTF8:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrEncoding, encoding)
	}
}
