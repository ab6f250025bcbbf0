// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/promptr/internal/filters"
	"github.com/staranto/promptr/internal/meta"
	"github.com/staranto/promptr/internal/output"
)

// CacheShowCommandAction lists the cached answers, filtered by --filter.
func CacheShowCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "cache") {
		return nil
	}

	st := CacheStore(cmd)
	c := CacheCodec(cmd, st)

	records, err := LoadRecords(st, c)
	if err != nil {
		return err
	}
	records = filters.FilterRecords(records, cmd.String("filter"))
	log.Debugf("showing %d cached records", len(records))

	opts := OutputOptions(cmd, c)
	if opts.Titles && opts.Format == "text" {
		if info, err := st.Stat(); err == nil {
			fmt.Fprintf(stdout, "%s (updated %s)\n", st.ResolveCachePath(), humanize.Time(info.ModTime()))
		} else if !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).Warn("unable to stat cache")
		}
	}

	return output.Spit(stdout, records, opts)
}

// CacheClearCommandAction deletes the cache file.
func CacheClearCommandAction(ctx context.Context, cmd *cli.Command) error {
	st := CacheStore(cmd)
	if err := st.Remove(); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "cleared %s\n", st.ResolveCachePath())
	return nil
}

// CacheCommandBuilder constructs the "cache" command and its show and clear
// subcommands.
func CacheCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	metadata := map[string]any{
		"meta": meta,
	}

	return &cli.Command{
		Name:      "cache",
		Usage:     "inspect or clear the answer cache",
		UsageText: `promptr cache show|clear [options]`,
		Metadata:  metadata,
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "list the cached answers",
				UsageText: `promptr cache show [options]`,
				Metadata:  metadata,
				Flags: append([]cli.Flag{
					NewFilterFlag("cache", meta.Config.Source),
					newTLDRFlag(),
				}, NewGlobalFlags("cache")...),
				Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
					return ctx, GlobalFlagsValidator(ctx, c)
				},
				Action: CacheShowCommandAction,
			},
			{
				Name:      "clear",
				Usage:     "remove the cache file",
				UsageText: `promptr cache clear [--cache path]`,
				Metadata:  metadata,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "cache",
						Usage: "answer cache file. Overrides PROMPTR_CACHE_DIR and PROMPTR_CACHE_FILE",
						Sources: cli.NewValueSourceChain(
							cli.EnvVar("PROMPTR_CACHE_PATH"),
						),
					},
				},
				Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
					return ctx, GlobalFlagsValidator(ctx, c)
				},
				Action: CacheClearCommandAction,
			},
		},
	}
}
