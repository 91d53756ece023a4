package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/wikimigrate/internal/markdown"
)

// RuleRelativeLinkTarget flags markdown-file link targets that survived
// conversion, typically the double-parent-into-subdirectory shape no rewrite
// rule claims.
const RuleRelativeLinkTarget = "relative-link-target"

// Config contains configuration for the linter.
type Config struct {
	// Quiet suppresses warnings, only showing errors.
	Quiet bool
	// Format specifies output format (text, json).
	Format string
}

// Linter scans converted output for link targets the rewriter left behind.
type Linter struct {
	cfg *Config
}

// NewLinter creates a linter with the given configuration.
func NewLinter(cfg *Config) *Linter {
	return &Linter{cfg: cfg}
}

// LintPath lints a single file or every page file under a directory.
func (l *Linter) LintPath(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat lint path: %w", err)
	}

	result := &Result{}
	if !info.IsDir() {
		issues, err := l.lintFile(path)
		if err != nil {
			return nil, err
		}
		result.Issues = issues
		result.FilesTotal = 1
		return result, nil
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsDocFile(p) {
			return nil
		}
		result.FilesTotal++
		issues, err := l.lintFile(p)
		if err != nil {
			return err
		}
		result.Issues = append(result.Issues, issues...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk lint path: %w", err)
	}
	return result, nil
}

func (l *Linter) lintFile(path string) ([]Issue, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", path, err)
	}
	links, err := markdown.ExtractLinks(body)
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", path, err)
	}

	var issues []Issue
	for _, link := range links {
		if !isUnconvertedTarget(link.Destination) {
			continue
		}
		issues = append(issues, Issue{
			FilePath: path,
			Severity: SeverityWarning,
			Rule:     RuleRelativeLinkTarget,
			Message:  fmt.Sprintf("unconverted markdown link target %q", link.Destination),
		})
	}
	return issues, nil
}

// isUnconvertedTarget reports whether a destination still points at a
// markdown file by path. Converted pages should only carry flat wiki titles,
// anchors and external URLs.
func isUnconvertedTarget(dest string) bool {
	if !strings.HasSuffix(dest, ".md") {
		return false
	}
	// External URLs keep their extension; that is not our business.
	return !strings.Contains(dest, "://")
}
