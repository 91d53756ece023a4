package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeySource     = "source"
	KeyOutput     = "output"
	KeyCategory   = "category"
	KeyTitle      = "title"
	KeyFiles      = "files"
	KeyRunID      = "run_id"
	KeyRule       = "rule"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Source(s string) slog.Attr        { return slog.String(KeySource, s) }
func Output(o string) slog.Attr        { return slog.String(KeyOutput, o) }
func Category(c string) slog.Attr      { return slog.String(KeyCategory, c) }
func Title(t string) slog.Attr         { return slog.String(KeyTitle, t) }
func Files(n int) slog.Attr            { return slog.Int(KeyFiles, n) }
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Rule(r string) slog.Attr          { return slog.String(KeyRule, r) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
