package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/wikimigrate/internal/lint"
)

// LintCmd implements the 'lint' command over a converted output tree.
type LintCmd struct {
	Path   string `arg:"" help:"Converted output directory (or single page file) to check"`
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet  bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
}

// Run executes the lint and sets the exit code from the findings.
func (lc *LintCmd) Run(_ *Global, _ *CLI) error {
	linter := lint.NewLinter(&lint.Config{Quiet: lc.Quiet, Format: lc.Format})
	result, err := linter.LintPath(lc.Path)
	if err != nil {
		return fmt.Errorf("linting failed: %w", err)
	}

	formatter := lint.NewFormatter(lc.Format, lc.Quiet)
	if err := formatter.Format(os.Stdout, result); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if result.HasErrors() {
		os.Exit(2)
	} else if result.WarningCount() > 0 && !lc.Quiet {
		os.Exit(1)
	}
	return nil
}
