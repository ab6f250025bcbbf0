// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"github.com/staranto/promptr/internal/prompt"
)

// SealedPrefix marks an encrypted cache file.
const SealedPrefix = "promptr:sealed:v1:"

const (
	saltSize  = 16
	nonceSize = 24
	keySize   = 32
)

var (
	// ErrSealed is returned when a sealed cache can't be opened with the
	// passphrase given.
	ErrSealed = errors.New("unable to open sealed cache, wrong passphrase?")
	// ErrNotSealed is returned when a sealed codec reads a clear-text cache.
	ErrNotSealed = errors.New("cache is not sealed")
)

// Sealed encrypts the output of Inner with a key derived from Passphrase.
type Sealed struct {
	Inner      prompt.Codec
	Passphrase []byte
}

func (s Sealed) Decode(raw string) ([]prompt.Record, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if !strings.HasPrefix(raw, SealedPrefix) {
		return nil, ErrNotSealed
	}

	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(raw, SealedPrefix))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sealed cache: %w", err)
	}
	if len(blob) < saltSize+nonceSize+secretbox.Overhead {
		return nil, ErrSealed
	}

	salt := blob[:saltSize]
	var nonce [nonceSize]byte
	copy(nonce[:], blob[saltSize:saltSize+nonceSize])

	key, err := s.key(salt)
	if err != nil {
		return nil, err
	}

	plain, ok := secretbox.Open(nil, blob[saltSize+nonceSize:], &nonce, key)
	if !ok {
		return nil, ErrSealed
	}

	return s.Inner.Decode(string(plain))
}

func (s Sealed) Encode(answers []prompt.Answer) (string, error) {
	plain, err := s.Inner.Encode(answers)
	if err != nil {
		return "", err
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	key, err := s.key(salt)
	if err != nil {
		return "", err
	}

	blob := append(salt, nonce[:]...)
	blob = secretbox.Seal(blob, []byte(plain), &nonce, key)

	return SealedPrefix + base64.StdEncoding.EncodeToString(blob) + "\n", nil
}

// key stretches the passphrase with scrypt using the recommended interactive
// parameters.
func (s Sealed) key(salt []byte) (*[keySize]byte, error) {
	k, err := scrypt.Key(s.Passphrase, salt, 1<<15, 8, 1, keySize) //nolint:mnd
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	var key [keySize]byte
	copy(key[:], k)
	return &key, nil
}
