package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"sift/internal/validate"
)

// Format selects how a summary is rendered.
type Format string

const (
	// FormatAuto renders a table on a terminal and lines otherwise.
	FormatAuto Format = "auto"
	// FormatTable renders findings as a table with reasons.
	FormatTable Format = "table"
	// FormatLines prints one bad identifier per line.
	FormatLines Format = "lines"
	// FormatJSON emits the full summary as indented JSON.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatAuto, FormatTable, FormatLines, FormatJSON:
		return Format(name), nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("unknown report format %q (expected auto, table, lines, or json)", name)
	}
}

// Summary describes one validation run for reporting.
type Summary struct {
	// Source is the record file the run consumed.
	Source string
	// Records is how many records the run processed, skipped included.
	Records int
	// Skipped counts records passed over for a missing identifier.
	Skipped int
	// Findings holds the flagged identifiers and reasons, sorted by
	// identifier.
	Findings []validate.Finding
}

// Render writes the summary to w in the requested format.
func Render(w io.Writer, s Summary, format Format) error {
	switch resolveFormat(w, format) {
	case FormatTable:
		return renderTable(w, s)
	case FormatJSON:
		return renderJSON(w, s)
	default:
		return renderLines(w, s)
	}
}

func resolveFormat(w io.Writer, format Format) Format {
	if format != FormatAuto && format != "" {
		return format
	}
	if isTerminal(w) {
		return FormatTable
	}
	return FormatLines
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderLines matches the reference reporting behavior: one bad
// identifier per line, nothing else.
func renderLines(w io.Writer, s Summary) error {
	for _, finding := range s.Findings {
		if _, err := fmt.Fprintln(w, finding.ID); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, s Summary) error {
	findings := s.Findings
	if findings == nil {
		findings = []validate.Finding{}
	}
	payload := map[string]any{
		"source":  s.Source,
		"records": s.Records,
		"skipped": s.Skipped,
		"bad":     findings,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
