// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"path/filepath"
	"strings"

	"github.com/staranto/promptr/internal/prompt"
)

// ForPath picks the codec for a cache file by its extension. A non-empty
// passphrase seals whatever the extension selects.
func ForPath(path string, passphrase string) prompt.Codec {
	var c prompt.Codec = JSON{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c = YAML{}
	}

	if passphrase != "" {
		return Sealed{Inner: c, Passphrase: []byte(passphrase)}
	}
	return c
}
