// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/promptr/internal/meta"
)

const bashCompletionScript = `# bash completion for promptr
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_promptr()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "ask cache completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--cache --color -c --output -o --passphrase --titles -t --tldr"

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml raw" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--cache" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    case "$cmd" in
        ask)
            local opts="$common --diff --persist -p --no-persist"
            if [[ "$cur" != -* ]]; then
                COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml|json|hcl)' -- "$cur") $(compgen -d -- "$cur") )
                return 0
            fi
            ;;
        cache)
            if [[ ${COMP_CWORD} -eq 2 ]]; then
                COMPREPLY=( $(compgen -W "show clear" -- "$cur") )
                return 0
            fi
            local opts="$common --filter -f"
            ;;
        completion)
            local opts="bash zsh"
            ;;
        *)
            local opts="$common"
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _promptr promptr
`

const zshCompletionScript = `#compdef promptr

_promptr() {
  local -a cmds
  cmds=(
    'ask:ask the questions in a file'
    'cache:inspect or clear the answer cache'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '--cache[answer cache file]:file:_files'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml raw)'
  '--passphrase[cache passphrase]:passphrase'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'promptr commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    ask)
      _arguments -C \
        $common \
        '--diff[show changes from the cached answers]' \
        '(-p --persist --no-persist)'{-p,--persist}'[write answers to the cache]' \
        '--no-persist[do not write answers]' \
        '1:question file:_files -g "*.(yaml|yml|json|hcl)"'
      ;;
    cache)
      if (( CURRENT == 3 )); then
        _arguments '1: :((show\:"list cached answers" clear\:"remove the cache file"))'
        return
      fi
      _arguments -C \
        $common \
        '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _promptr promptr
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(stdout, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(stdout, bashCompletionScript)
		} else {
			fmt.Fprintln(stderr, "usage: promptr completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "promptr completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
