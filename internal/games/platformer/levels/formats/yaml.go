// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file. Rows hold
// the tile map as single-character codes, one string per grid row.
type YAMLLevel struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	TimeLimit int      `yaml:"time_limit,omitempty"`
	Rows      []string `yaml:"rows"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (YAMLLevel, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return YAMLLevel{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yl, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
