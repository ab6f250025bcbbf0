// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/promptr/internal/codec"
	"github.com/staranto/promptr/internal/meta"
	"github.com/staranto/promptr/internal/output"
	"github.com/staranto/promptr/internal/prompt"
	"github.com/staranto/promptr/internal/store"
)

// Streams used by the commands. Tests replace them.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr promptr <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "promptr", subcmd)
			c.Stdout = stdout
			c.Stderr = stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// CacheStore returns the answer store selected by --cache, falling back to
// the environment and config.
func CacheStore(cmd *cli.Command) *store.FileStore {
	if p := cmd.String("cache"); p != "" {
		return store.FromPath(p)
	}
	return store.New()
}

// CacheCodec returns the codec for the store's file, sealed when a passphrase
// is given.
func CacheCodec(cmd *cli.Command, st *store.FileStore) prompt.Codec {
	return codec.ForPath(st.ResolveCachePath(), cmd.String("passphrase"))
}

// LoadRecords reads and decodes the cache. A missing cache yields no records.
func LoadRecords(st *store.FileStore, c prompt.Codec) ([]prompt.Record, error) {
	path := st.ResolveCachePath()
	if !st.Exists(path) {
		log.Debugf("no cache at %s", path)
		return nil, nil
	}

	raw, err := st.ReadText(path, prompt.UTF8)
	if err != nil {
		return nil, err
	}

	records, err := c.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cache %s: %w", path, err)
	}
	return records, nil
}

// OutputOptions collects the output flags.
func OutputOptions(cmd *cli.Command, c prompt.Codec) output.Options {
	return output.Options{
		Format: cmd.String("output"),
		Titles: cmd.Bool("titles"),
		Color:  cmd.Bool("color"),
		Codec:  c,
	}
}
