package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/wikimigrate/internal/config"
	"git.home.luguber.info/inful/wikimigrate/internal/convert"
	"git.home.luguber.info/inful/wikimigrate/internal/logfields"
	"git.home.luguber.info/inful/wikimigrate/internal/wiki"
	"git.home.luguber.info/inful/wikimigrate/internal/wikititle"
)

// Driver owns a migration run: the cumulative result list and the category
// index. Per-document state never crosses file boundaries.
type Driver struct {
	cfg        *config.Config
	normalizer *wikititle.Normalizer
	processor  *convert.Processor

	// WriteReport controls whether the JSON run report is persisted into the
	// output root. On by default.
	WriteReport bool
}

// NewDriver wires a driver from configuration.
func NewDriver(cfg *config.Config) *Driver {
	n := wikititle.New(cfg.AcronymTable())
	return &Driver{
		cfg:        cfg,
		normalizer: n,
		processor: convert.NewProcessor(n, wiki.Header{
			LastUpdated: cfg.Header.LastUpdated,
			Attribution: cfg.Header.Attribution,
		}),
		WriteReport: true,
	}
}

// Run converts every selected document under inputRoot into the flat
// outputRoot, writes the category index, and returns the run summary. A
// failing document is recorded and skipped; only run-level problems (walk
// failure, unwritable output root or index) return an error.
func (d *Driver) Run(inputRoot, outputRoot string) (*RunSummary, error) {
	summary := newRunSummary(inputRoot, outputRoot)
	slog.Info("Starting wiki migration", logfields.RunID(summary.RunID),
		logfields.Source(inputRoot), logfields.Output(outputRoot))

	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create output root: %w", err)
	}

	sources, warnings, err := Collect(d.cfg, inputRoot)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		slog.Warn(w)
		summary.Warnings = append(summary.Warnings, w)
	}

	for _, src := range sources {
		outPath := filepath.Join(outputRoot, d.normalizer.Normalize(src.Stem)+d.cfg.Extension)
		res := d.processor.Process(src.Path, outPath, src.Category)
		if res.Success {
			summary.Succeeded = append(summary.Succeeded, res)
			slog.Debug("Converted page", logfields.Source(src.Path),
				logfields.Title(res.Title), logfields.Category(src.Category))
		} else {
			summary.Failed = append(summary.Failed, res)
			slog.Error("Failed to convert page", logfields.Source(src.Path), slog.String("reason", res.Error))
		}
	}

	indexPath := filepath.Join(outputRoot, d.cfg.IndexFile)
	if err := os.WriteFile(indexPath, []byte(d.buildIndex(summary.Succeeded)), 0o644); err != nil {
		return nil, fmt.Errorf("write index page: %w", err)
	}
	slog.Info("Generated content index", logfields.Path(indexPath), logfields.Files(len(summary.Succeeded)))

	summary.finish()
	if d.WriteReport {
		if err := summary.Persist(outputRoot); err != nil {
			slog.Warn("Failed to persist run report", logfields.Error(err))
		}
	}
	slog.Info("Migration complete", logfields.RunID(summary.RunID), slog.String("summary", summary.Summary()))
	return summary, nil
}
