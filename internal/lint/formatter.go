package lint

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter renders lint results for terminal or machine consumption.
type Formatter struct {
	format string
	quiet  bool
}

// NewFormatter creates a formatter for the given output format.
func NewFormatter(format string, quiet bool) *Formatter {
	return &Formatter{format: format, quiet: quiet}
}

// Format writes the result to w.
func (f *Formatter) Format(w io.Writer, result *Result) error {
	if f.format == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal lint result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	shown := 0
	for _, issue := range result.Issues {
		if f.quiet && issue.Severity < SeverityError {
			continue
		}
		fmt.Fprintf(w, "%s %s: %s (%s)\n", issue.Severity, issue.FilePath, issue.Message, issue.Rule)
		shown++
	}
	fmt.Fprintf(w, "%d files scanned, %d issues\n", result.FilesTotal, shown)
	return nil
}
