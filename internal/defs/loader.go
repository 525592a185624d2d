// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadTowerDefinitions reads a JSON array of tower definitions.
func LoadTowerDefinitions(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	for _, def := range towerDefs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("invalid tower definitions in %s: %w", path, err)
		}
	}

	lib := NewLibrary(towerDefs...)
	slog.Info("loaded tower definitions", "path", path, "count", lib.Len())
	return lib, nil
}
