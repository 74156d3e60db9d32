// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package charity serves the donation directory: organizations that accept
// reusable items as an alternative to disposal.
package charity

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recyclo/pkg/types"
)

//go:embed defaults.yaml
var defaultDirectory []byte

// Charity is one donation destination. An empty City means nationwide.
type Charity struct {
	Name    string   `json:"name" yaml:"name"`
	City    string   `json:"city,omitempty" yaml:"city,omitempty"`
	URL     string   `json:"url" yaml:"url"`
	Accepts []string `json:"accepts" yaml:"accepts"`
}

type directoryFile struct {
	Charities []Charity `yaml:"charities"`
}

// Directory is the loaded charity list, read-only after Load.
type Directory struct {
	charities []Charity
}

// Load builds a Directory from the built-in list, appending entries from
// the optional directory file in cfg.
func Load(cfg types.CharityConfig) (*Directory, error) {
	var file directoryFile
	if err := yaml.Unmarshal(defaultDirectory, &file); err != nil {
		return nil, fmt.Errorf("parsing built-in charity directory: %w", err)
	}

	if cfg.DirectoryFile != "" {
		data, err := os.ReadFile(cfg.DirectoryFile)
		if err != nil {
			return nil, fmt.Errorf("reading charity directory: %w", err)
		}
		var extra directoryFile
		if err := yaml.Unmarshal(data, &extra); err != nil {
			return nil, fmt.Errorf("parsing charity directory %s: %w", cfg.DirectoryFile, err)
		}
		file.Charities = append(file.Charities, extra.Charities...)
	}

	for i := range file.Charities {
		file.Charities[i].City = strings.ToLower(strings.TrimSpace(file.Charities[i].City))
	}

	return &Directory{charities: file.Charities}, nil
}

// All returns every directory entry.
func (d *Directory) All() []Charity {
	return d.charities
}

// Filter returns charities matching a city and accepted category. Empty
// filters match everything; nationwide entries (no city) match any city.
// Category matching is a case-insensitive substring test, so "electronics"
// matches a query for "electronic".
func (d *Directory) Filter(city, category string) []Charity {
	cityKey := strings.ToLower(strings.TrimSpace(city))
	catKey := strings.ToLower(strings.TrimSpace(category))

	var out []Charity
	for _, c := range d.charities {
		if cityKey != "" && c.City != "" && c.City != cityKey {
			continue
		}
		if catKey != "" && !accepts(c, catKey) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func accepts(c Charity, catKey string) bool {
	for _, a := range c.Accepts {
		if strings.Contains(strings.ToLower(a), catKey) || strings.Contains(catKey, strings.ToLower(a)) {
			return true
		}
	}
	return false
}
