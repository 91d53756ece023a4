package commands

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/wikimigrate/internal/batch"
	"git.home.luguber.info/inful/wikimigrate/internal/logfields"
	"git.home.luguber.info/inful/wikimigrate/internal/manifest"
	"git.home.luguber.info/inful/wikimigrate/internal/wikititle"
)

// ScanCmd implements the 'scan' command: enumerate and fingerprint the
// documents a conversion would process, without writing any pages.
type ScanCmd struct {
	Input string `arg:"" help:"Input documentation directory"`
}

// Run prints the source manifest as JSON on stdout.
func (sc *ScanCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	sources, warnings, err := batch.Collect(cfg, sc.Input)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}
	slog.Info("Scan complete", logfields.Source(sc.Input), logfields.Files(len(sources)))

	m := manifest.Build(sc.Input, sources, wikititle.New(cfg.AcronymTable()))
	data, err := m.ToJSON()
	if err != nil {
		return fmt.Errorf("serialize manifest: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
