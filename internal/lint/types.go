// Package lint checks converted wiki pages for leftovers the link rewriter
// deliberately does not touch, so they can be fixed by hand before import.
// It never resolves link targets against the page set.
package lint

import "path/filepath"

// Severity indicates the importance level of a linting issue.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue represents a single problem found in a converted page.
type Issue struct {
	FilePath string   `json:"file_path"`
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
}

// Result contains all issues found during linting.
type Result struct {
	Issues     []Issue `json:"issues"`
	FilesTotal int     `json:"files_total"`
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			count++
		}
	}
	return count
}

// IsDocFile returns true if the file is a wiki page file.
func IsDocFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}
