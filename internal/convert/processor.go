// Package convert runs the per-document pipeline: read, rewrite links,
// derive the wiki title, wrap with metadata, write. Failures are captured in
// the Result so one bad file never aborts a batch.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/wikimigrate/internal/markdown"
	"git.home.luguber.info/inful/wikimigrate/internal/wiki"
	"git.home.luguber.info/inful/wikimigrate/internal/wikititle"
)

// Result records the outcome of processing a single source document.
// Never mutated after creation.
type Result struct {
	Success        bool   `json:"success"`
	SourcePath     string `json:"source_path"`
	OutputPath     string `json:"output_path,omitempty"`
	Title          string `json:"title,omitempty"`
	Category       string `json:"category,omitempty"`
	OriginalLinks  int    `json:"original_links"`
	ConvertedLinks int    `json:"converted_links"`
	ContentLength  int    `json:"content_length,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Processor converts one source document at a time. It owns no state across
// invocations; each call is fully self-contained.
type Processor struct {
	normalizer *wikititle.Normalizer
	rewriter   *markdown.Rewriter
	header     wiki.Header
}

// NewProcessor wires the per-document pipeline components together.
func NewProcessor(n *wikititle.Normalizer, h wiki.Header) *Processor {
	return &Processor{
		normalizer: n,
		rewriter:   markdown.NewRewriter(n.Normalize),
		header:     h,
	}
}

// Process reads sourcePath, rewrites its internal links, wraps it with the
// page header and footer for category, and writes the result to outputPath.
// I/O failures are converted into a failed Result, never propagated.
func (p *Processor) Process(sourcePath, outputPath, category string) Result {
	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		return failure(sourcePath, fmt.Errorf("%w: %v", ErrReadFailed, err))
	}

	body := string(raw)
	originalLinks := markdown.CountInlineLinks(body)

	rewritten := p.rewriter.Rewrite(body)
	title := p.normalizer.Normalize(Stem(sourcePath))

	page := wiki.Page{
		Title:    title,
		Category: category,
		Body:     wiki.Wrap(rewritten, title, category, p.header),
	}

	if err := os.WriteFile(outputPath, []byte(page.Body), 0o644); err != nil {
		return failure(sourcePath, fmt.Errorf("%w: %v", ErrWriteFailed, err))
	}

	return Result{
		Success:        true,
		SourcePath:     sourcePath,
		OutputPath:     outputPath,
		Title:          title,
		Category:       category,
		OriginalLinks:  originalLinks,
		ConvertedLinks: markdown.CountInlineLinks(page.Body),
		ContentLength:  len(page.Body),
	}
}

// Stem returns the filename without directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func failure(sourcePath string, err error) Result {
	return Result{
		Success:    false,
		SourcePath: sourcePath,
		Error:      err.Error(),
	}
}
