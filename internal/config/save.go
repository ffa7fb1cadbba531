package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configHeader = `# finishline configuration
#
# locale: BCP 47 tag used for name casing (e.g. "nb", "tr").
#         Leave empty for locale-neutral rules.
# theme:  hex color overrides for the TUI.
`

// WriteDefaultConfig writes the default configuration to the given path,
// creating parent directories as needed. Used on first start when no config
// file exists anywhere in the lookup chain.
func WriteDefaultConfig(path string) error {
	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
