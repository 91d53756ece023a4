package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/wikimigrate/internal/config"
)

const defaultConfigFile = "wikimigrate.yaml"

// Global carries state shared across subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"wikimigrate.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Convert ConvertCmd `cmd:"" help:"Convert a documentation tree into flat wiki pages"`
	Scan    ScanCmd    `cmd:"" help:"List and fingerprint the documents a conversion would process"`
	Lint    LintCmd    `cmd:"" help:"Check converted pages for unconverted link targets"`
	Init    InitCmd    `cmd:"" help:"Write a default configuration file"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig resolves the effective configuration. The default config file is
// optional; an explicitly named one must exist.
func (c *CLI) loadConfig() (*config.Config, error) {
	if _, err := os.Stat(c.Config); os.IsNotExist(err) {
		if c.Config == defaultConfigFile {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("configuration file not found: %s", c.Config)
	}
	return config.Load(c.Config)
}
