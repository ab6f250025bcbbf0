// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v3"

	"github.com/staranto/promptr/internal/config"
	"github.com/staranto/promptr/internal/prompt"
)

// Formats are the accepted values of the --output flag.
var Formats = []string{"text", "json", "yaml", "raw"}

// ErrNoCodec is returned for raw output without a codec to encode with.
var ErrNoCodec = errors.New("raw output requires a codec")

// Options control how a result set is emitted.
type Options struct {
	Format string
	Titles bool
	Color  bool
	// Codec encodes the raw format. It is the same codec the cache file uses.
	Codec prompt.Codec
}

// FromAnswers converts resolved answers into their record form.
func FromAnswers(answers []prompt.Answer) []prompt.Record {
	records := make([]prompt.Record, 0, len(answers))
	for _, a := range answers {
		records = append(records, prompt.Record(a))
	}
	return records
}

func toAnswers(records []prompt.Record) []prompt.Answer {
	answers := make([]prompt.Answer, 0, len(records))
	for _, r := range records {
		answers = append(answers, prompt.Answer(r))
	}
	return answers
}

// Spit renders records to w in the requested format.
func Spit(w io.Writer, records []prompt.Record, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	log.Debugf("emitting %d records as %q", len(records), opts.Format)

	switch opts.Format {
	case "raw":
		if opts.Codec == nil {
			return ErrNoCodec
		}
		raw, err := opts.Codec.Encode(toAnswers(records))
		if err != nil {
			return fmt.Errorf("failed to encode answers: %w", err)
		}
		_, err = io.WriteString(w, raw)
		return err
	case "json":
		if records == nil {
			records = []prompt.Record{}
		}
		jsonOutput, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("failed to marshal answers: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("failed to marshal answers: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	default:
		TableWriter(records, opts, w)
		return nil
	}
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options.
func TableWriter(records []prompt.Record, opts Options, w io.Writer) {
	if len(records) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 2)
	log.Debugf("padding: %v", pad)

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			InterfaceToString(r.Name, "-"),
			InterfaceToString(r.Answer),
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("name", "answer").BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts an answer value to its display string. A custom
// empty value may be provided for nil and the empty string.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	switch value := value.(type) {
	case nil:
		return emptyValue[0]
	case string:
		if value == "" {
			return emptyValue[0]
		}
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
