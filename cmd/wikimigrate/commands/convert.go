package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/wikimigrate/internal/batch"
)

// ConvertCmd implements the 'convert' command: the full batch run.
type ConvertCmd struct {
	Input    string `arg:"" help:"Input documentation directory"`
	Output   string `arg:"" help:"Output directory for wiki pages"`
	NoReport bool   `help:"Skip writing migration-report.json into the output directory"`
}

// Run executes the conversion and prints the outcome. Per-file failures are
// recorded in the summary and do not fail the command; run-level errors do.
func (cc *ConvertCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	driver := batch.NewDriver(cfg)
	driver.WriteReport = !cc.NoReport

	summary, err := driver.Run(cc.Input, cc.Output)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Converted %d files (%d links), %d failures\n",
		len(summary.Succeeded), summary.LinksConverted(), len(summary.Failed))
	for _, f := range summary.Failed {
		fmt.Fprintf(os.Stdout, "  %s: %s\n", f.SourcePath, f.Error)
	}
	return nil
}
