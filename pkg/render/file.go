package render

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// dayFormat is the key layout used when a map is written to disk.
const dayFormat = "2006-01-02"

// MarshalYAML encodes the map with ISO date keys so dumps are diffable.
func (m DataLevelMap) MarshalYAML() (any, error) {
	out := make(map[string]int, len(m))
	for day, level := range m {
		out[day.Format(dayFormat)] = level
	}

	return out, nil
}

// UnmarshalYAML decodes a map written by MarshalYAML.
func (m *DataLevelMap) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]int
	if err := value.Decode(&raw); err != nil {
		return err
	}

	decoded := NewDataLevelMap()
	for key, level := range raw {
		day, err := time.Parse(dayFormat, key)
		if err != nil {
			return fmt.Errorf("invalid day '%s': %w", key, err)
		}
		decoded[Day(day)] = level
	}

	*m = decoded
	return nil
}

// WriteFile dumps the map to path as YAML.
func (m DataLevelMap) WriteFile(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal data level map: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write data level map: %w", err)
	}

	return nil
}

// LoadFile reads a map previously written with WriteFile.
func LoadFile(path string) (DataLevelMap, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user supplied dump path
	if err != nil {
		return nil, fmt.Errorf("failed to read data level map: %w", err)
	}

	var m DataLevelMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse data level map: %w", err)
	}

	return m, nil
}
