package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayout []byte

// LoadLayout returns the template layout. The embedded defaults are loaded first;
// if path is non-empty, that YAML file is decoded on top, replacing only the keys it sets.
func LoadLayout(path string) (Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(defaultLayout, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to unmarshal default layout: %w", err)
	}
	if path == "" {
		return layout, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to unmarshal layout %s: %w", path, err)
	}
	return layout, nil
}
