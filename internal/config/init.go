package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Init writes the default configuration to configPath. Refuses to overwrite
// an existing file unless force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}

	header := "# wikimigrate configuration\n# Category map: source subdirectory -> index category label.\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
