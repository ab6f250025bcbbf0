// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/promptr/internal/differ"
	"github.com/staranto/promptr/internal/line"
	"github.com/staranto/promptr/internal/meta"
	"github.com/staranto/promptr/internal/output"
	"github.com/staranto/promptr/internal/prompt"
	"github.com/staranto/promptr/internal/questions"
)

// ErrNoQuestionFile is returned when ask is run without a file argument.
var ErrNoQuestionFile = errors.New("a question file is required")

// AskCommandAction is the action handler for the "ask" subcommand. It asks
// every question in the file, optionally persists the answers and emits them
// according to the output flags. With --diff the change against the previous
// cache is shown instead.
func AskCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if ShortCircuitTLDR(ctx, cmd, "ask") {
		return nil
	}

	if cmd.Args().Len() == 0 {
		return ErrNoQuestionFile
	}

	batch, err := questions.Load(cmd.Args().First())
	if err != nil {
		return err
	}

	st := CacheStore(cmd)
	c := CacheCodec(cmd, st)

	var previous []prompt.Record
	if cmd.Bool("diff") {
		if previous, err = LoadRecords(st, c); err != nil {
			return err
		}
	}

	persist := resolvePersist(cmd, batch)
	log.Debugf("persist: %v, cache: %s", persist, st.ResolveCachePath())

	r := &prompt.Resolver{
		Open:   line.Open,
		Store:  st,
		Codec:  c,
		Input:  stdin,
		Output: stdout,
	}

	answers, err := r.Resolve(ctx, batch.Questions, prompt.Options{
		Persist:    persist,
		Transforms: batch.Transforms,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", batch.Source, err)
	}

	if cmd.Bool("diff") {
		out, changed, err := differ.Diff(previous, answers, cmd.Bool("color"))
		if err != nil {
			return err
		}
		if !changed {
			fmt.Fprintln(stderr, "no changes")
			return nil
		}
		fmt.Fprint(stdout, out)
		return nil
	}

	return output.Spit(stdout, output.FromAnswers(answers), OutputOptions(cmd, c))
}

// resolvePersist lets an explicit flag (or its env/config source) win over the
// question file, which wins over the default of not persisting.
func resolvePersist(cmd *cli.Command, batch questions.Batch) bool {
	if cmd.IsSet("persist") || cmd.IsSet("no-persist") {
		return cmd.Bool("persist")
	}
	if batch.Persist != nil {
		return *batch.Persist
	}
	return false
}

// AskCommandBuilder constructs the cli.Command definition for the "ask"
// command, wiring flags, metadata, and the action/validator handlers.
func AskCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "ask the questions in a file",
		UsageText: `promptr ask <file> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "show the difference from the cached answers",
				Value: false,
			},
			&cli.BoolWithInverseFlag{
				Name:    "persist",
				Aliases: []string{"p"},
				Usage:   "write the answers to the cache",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("PROMPTR_PERSIST"),
					yaml.YAML("ask.persist", altsrc.StringSourcer(meta.Config.Source)),
				),
			},
			newTLDRFlag(),
		}, NewGlobalFlags("ask")...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: AskCommandAction,
	}
}
