package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/wikimigrate/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

// Run writes the default configuration to the configured path.
func (ic *InitCmd) Run(_ *Global, root *CLI) error {
	if err := config.Init(root.Config, ic.Force); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", root.Config)
	return nil
}
