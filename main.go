// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/joho/godotenv"

	"github.com/staranto/promptr/internal/command"
	"github.com/staranto/promptr/internal/config"
	mylog "github.com/staranto/promptr/internal/log"
	"github.com/staranto/promptr/internal/version"
)

var ctx = context.Background()

// subcommandDepth is the number of words after the command that name a
// subcommand, so default flag sets land after them.
var subcommandDepth = map[string]int{
	"cache": 1,
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	// Best-effort: a .env in the working directory may carry PROMPTR_*
	// settings. Real environment values win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
	}

	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	} else {
		args = mangleArguments(args)
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// mangleArguments inserts a named set of default arguments from the config
// file right after the command (and subcommand). The set is "defaults" unless
// an @set argument names another one, in which case that argument is
// removed. A set is configured as <command>.<set>.
func mangleArguments(args []string) []string {
	end := commandPathEnd(args)

	// Short-circuit for --help/-h. If help is requested, just keep the command
	// path and add --help flag.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			preamble := make([]string, end)
			copy(preamble, args[:end])
			return append(preamble, "--help")
		}
	}

	if end == 1 {
		return args
	}

	working := make([]string, 0, len(args))
	working = append(working, args...)

	// See if there is a @set specified. If so, it names the set and is removed
	// from args.
	set := "defaults"
	for i := end; i < len(working); i++ {
		if strings.HasPrefix(working[i], "@") {
			set = working[i][1:]
			working = append(working[:i], working[i+1:]...)
			break
		}
	}

	idx := end
	setArgs, _ := config.GetStringSlice(args[1] + "." + set)
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		working = append(working[:idx], append(parts, working[idx:]...)...)
		idx += len(parts)
	}

	log.Debugf("idx=%d, set=%s, args=%v", idx, set, working)
	return working
}

// commandPathEnd returns the index just past the binary, command and any
// subcommand words.
func commandPathEnd(args []string) int {
	if len(args) < 2 || strings.HasPrefix(args[1], "-") {
		return 1
	}

	end := 2
	for i := 0; i < subcommandDepth[args[1]]; i++ {
		if end >= len(args) || strings.HasPrefix(args[end], "-") {
			break
		}
		end++
	}
	return end
}
