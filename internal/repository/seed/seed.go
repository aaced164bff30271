// Package seed holds the catalogs a fresh store starts with
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs.yaml
var defaultCatalogs []byte

// Catalogs lists the behavior type and trigger type names to seed
type Catalogs struct {
	BehaviorTypes []string `yaml:"behavior_types"`
	TriggerTypes  []string `yaml:"trigger_types"`
}

// Default returns the built-in catalogs
func Default() Catalogs {
	c, err := Parse(defaultCatalogs)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded catalogs are invalid: %v", err))
	}
	return c
}

// Load reads catalogs from a YAML file, falling back to the built-in set
// when path is empty.
func Load(path string) (Catalogs, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalogs{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalogs from YAML. Blank names are dropped and duplicates
// (case-insensitive) keep their first occurrence.
func Parse(data []byte) (Catalogs, error) {
	var c Catalogs
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalogs{}, fmt.Errorf("parse seed catalogs: %w", err)
	}
	c.BehaviorTypes = clean(c.BehaviorTypes)
	c.TriggerTypes = clean(c.TriggerTypes)
	return c, nil
}

func clean(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToLower(n)
		if n == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
