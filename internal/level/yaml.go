package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Theme     string   `yaml:"theme,omitempty"`
	SpawnRate float64  `yaml:"spawn_rate,omitempty"`
	Enemies   []string `yaml:"enemies"`
	Spawn     *Point   `yaml:"spawn,omitempty"`
	Rows      []string `yaml:"rows"`
}

// ParseYAML parses and validates a YAML level file.
// An explicit spawn overrides a 'P' marker in the rows.
func ParseYAML(data []byte) (Definition, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Definition{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	tpl, marker, err := ParseRows(yl.Rows)
	if err != nil {
		return Definition{}, err
	}

	def := Definition{
		ID:        yl.ID,
		Name:      yl.Name,
		Theme:     yl.Theme,
		Enemies:   yl.Enemies,
		SpawnRate: yl.SpawnRate,
		Template:  tpl,
	}
	if def.Name == "" {
		def.Name = def.ID
	}
	if def.SpawnRate == 0 {
		def.SpawnRate = 1
	}
	switch {
	case yl.Spawn != nil:
		def.Spawn = *yl.Spawn
	case marker != nil:
		def.Spawn = *marker
	default:
		return Definition{}, fmt.Errorf("%w: %s has no spawn", ErrInvalidLevel, def.ID)
	}

	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
