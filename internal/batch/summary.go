package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/wikimigrate/internal/convert"
)

// RunOutcome is the typed enumeration of final run result states.
type RunOutcome string

const (
	OutcomeSuccess RunOutcome = "success"
	OutcomeWarning RunOutcome = "warning"
	OutcomeFailed  RunOutcome = "failed"
)

// ReportFileName is the reserved report filename written into the output root.
const ReportFileName = "migration-report.json"

// RunSummary aggregates everything a migration run produced. It replaces the
// ambient processed/failed lists of earlier tooling with an explicit value
// owned by the driver.
type RunSummary struct {
	SchemaVersion int              `json:"schema_version"`
	RunID         string           `json:"run_id"`
	Input         string           `json:"input"`
	Output        string           `json:"output"`
	Start         time.Time        `json:"start"`
	End           time.Time        `json:"end"`
	Succeeded     []convert.Result `json:"succeeded"`
	Failed        []convert.Result `json:"failed"`
	Warnings      []string         `json:"warnings"`
	Outcome       RunOutcome       `json:"outcome"`
}

func newRunSummary(input, output string) *RunSummary {
	return &RunSummary{
		SchemaVersion: 1,
		RunID:         uuid.NewString(),
		Input:         input,
		Output:        output,
		Start:         time.Now(),
		Succeeded:     []convert.Result{},
		Failed:        []convert.Result{},
		Warnings:      []string{},
	}
}

func (s *RunSummary) finish() {
	s.End = time.Now()
	s.deriveOutcome()
}

func (s *RunSummary) deriveOutcome() {
	switch {
	case len(s.Failed) > 0 || len(s.Warnings) > 0:
		s.Outcome = OutcomeWarning
	default:
		s.Outcome = OutcomeSuccess
	}
}

// LinksConverted returns the aggregate converted-link count across all
// successfully written pages.
func (s *RunSummary) LinksConverted() int {
	total := 0
	for _, r := range s.Succeeded {
		total += r.ConvertedLinks
	}
	return total
}

// Summary returns a human-readable single-line summary.
func (s *RunSummary) Summary() string {
	dur := s.End.Sub(s.Start)
	return fmt.Sprintf("succeeded=%d failed=%d links=%d warnings=%d duration=%s outcome=%s",
		len(s.Succeeded), len(s.Failed), s.LinksConverted(), len(s.Warnings), dur.Truncate(time.Millisecond), s.Outcome)
}

// Persist writes the report atomically into the output root. Best effort;
// errors are returned for caller logging but do not change the run outcome.
func (s *RunSummary) Persist(root string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run report: %w", err)
	}
	path := filepath.Join(root, ReportFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp run report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("atomic rename run report: %w", err)
	}
	return nil
}
