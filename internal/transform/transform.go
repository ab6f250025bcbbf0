// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/promptr/internal/prompt"
)

var (
	flagsRegex  = regexp.MustCompile(`^[uUlLtT~ib0-9-]*$`)
	lengthRegex = regexp.MustCompile(`-?\d+`)
)

// Spec is a parsed transform spec of the form "<flags>[:<format>]".
type Spec struct {
	// Flags select the string operations to apply.
	Flags string
	// Format, when set, is a fmt template with a single %s for the value.
	Format string
}

// Parse validates and splits a transform spec.
func Parse(spec string) (Spec, error) {
	flags, format, _ := strings.Cut(spec, ":")
	flags = strings.TrimSpace(flags)

	if !flagsRegex.MatchString(flags) {
		return Spec{}, fmt.Errorf("invalid transform flags %q", flags)
	}
	if format != "" && strings.Count(format, "%s") != 1 {
		return Spec{}, fmt.Errorf("transform format %q must contain exactly one %%s", format)
	}

	return Spec{Flags: flags, Format: format}, nil
}

// Compile parses spec and returns it as a prompt.Transform. An empty spec
// compiles to nil.
func Compile(spec string) (prompt.Transform, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	s, err := Parse(spec)
	if err != nil {
		return nil, err
	}
	return s.Apply, nil
}

// Apply transforms value. Only string values are reshaped; i and b convert
// other scalars where they can.
func (s Spec) Apply(value any) any {
	result, ok := value.(string)
	if !ok {
		return s.convert(value)
	}

	if strings.Contains(s.Flags, "~") {
		result = strings.TrimSpace(result)
	}

	// Convert an RFC3339 time to the TZ zone.
	if strings.ContainsAny(s.Flags, "tT") {
		if tz := os.Getenv("TZ"); tz != "" {
			if loc, err := time.LoadLocation(tz); err == nil {
				if t, err := time.Parse(time.RFC3339, result); err == nil {
					result = t.In(loc).Format("2006-01-02T15:04:05MST")
				} else {
					log.Debugf("not a time, leaving as is: %s", result)
				}
			}
		}
	}

	// The later of l and u wins.
	lastL := strings.LastIndexAny(s.Flags, "lL")
	lastU := strings.LastIndexAny(s.Flags, "uU")

	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	// Length. A negative length keeps both ends and elides the middle.
	if match := lengthRegex.FindAllString(s.Flags, -1); len(match) != 0 {
		l, _ := strconv.Atoi(match[len(match)-1])
		abs := int(math.Abs(float64(l)))
		runes := []rune(result)
		if len(runes) > abs {
			if l < 0 {
				lr := abs/2 - 1
				if lr < 0 {
					lr = 0
				}
				result = string(runes[:lr]) + ".." + string(runes[len(runes)-lr:])
			} else {
				result = string(runes[:l])
			}
		}
	}

	if s.Format != "" {
		result = fmt.Sprintf(s.Format, result)
	}

	return s.convert(result)
}

// convert applies the i and b flags. Values that don't convert are returned
// unchanged.
func (s Spec) convert(value any) any {
	switch {
	case strings.Contains(s.Flags, "i"):
		switch v := value.(type) {
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		case float64:
			return int(v)
		case bool:
			if v {
				return 1
			}
			return 0
		}
	case strings.Contains(s.Flags, "b"):
		switch v := value.(type) {
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return b
			}
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "y", "yes":
				return true
			case "n", "no":
				return false
			}
		case int:
			return v != 0
		case float64:
			return v != 0
		}
	}
	return value
}
