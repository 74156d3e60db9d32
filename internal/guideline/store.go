// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package guideline loads and indexes locality recycling rules.
// The store is built once at startup and read-only afterwards, so any
// number of concurrent requests may query it without locking.
package guideline

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recyclo/pkg/types"
)

//go:embed defaults.yaml
var defaultRules []byte

// attributePriority orders attribute-gated rules when the rules file does
// not assign explicit priorities. Higher fires first.
var attributePriority = map[string]int{
	types.AttrSoftBag:          50,
	types.AttrFoam:             40,
	types.AttrPaperCupOrCarton: 30,
	types.AttrGreasyOrWet:      20,
}

// ruleSpec is the on-disk form of one rule within a material's list.
type ruleSpec struct {
	Attribute string       `yaml:"attribute,omitempty"`
	Action    types.Action `yaml:"action"`
	Priority  *int         `yaml:"priority,omitempty"`
}

// rulesFile maps locality -> material -> ordered rule list.
type rulesFile map[string]map[string][]ruleSpec

// Store indexes guideline rules by (locality, material) for request-time
// lookup.
type Store struct {
	// byLocality maps canonical locality key to lower-cased material key
	// to rules sorted by descending priority.
	byLocality map[string]map[string][]types.GuidelineRule
}

// Load builds a Store from the built-in ruleset, then merges the optional
// rules file from cfg over it. A locality present in the file replaces the
// built-in table for that locality wholesale.
func Load(cfg types.PolicyConfig) (*Store, error) {
	s := &Store{byLocality: make(map[string]map[string][]types.GuidelineRule)}

	if err := s.merge(defaultRules); err != nil {
		return nil, fmt.Errorf("parsing built-in rules: %w", err)
	}

	if cfg.RulesFile != "" {
		data, err := os.ReadFile(cfg.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("reading rules file: %w", err)
		}
		if err := s.merge(data); err != nil {
			return nil, fmt.Errorf("parsing rules file %s: %w", cfg.RulesFile, err)
		}
	}

	if _, ok := s.byLocality[types.DefaultLocality]; !ok {
		return nil, fmt.Errorf("ruleset has no %q locality table", types.DefaultLocality)
	}

	return s, nil
}

func (s *Store) merge(data []byte) error {
	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	for locality, materials := range file {
		locKey := strings.ToLower(strings.TrimSpace(locality))
		table := make(map[string][]types.GuidelineRule, len(materials))

		for material, specs := range materials {
			rules := make([]types.GuidelineRule, 0, len(specs))
			for _, spec := range specs {
				if spec.Action == "" {
					return fmt.Errorf("locality %s material %s: rule missing action", locKey, material)
				}
				rules = append(rules, types.GuidelineRule{
					Material:  material,
					Locality:  locKey,
					Attribute: spec.Attribute,
					Action:    spec.Action,
					Priority:  rulePriority(spec),
				})
			}
			sort.SliceStable(rules, func(i, j int) bool {
				return rules[i].Priority > rules[j].Priority
			})
			table[strings.ToLower(material)] = rules
		}

		s.byLocality[locKey] = table
	}

	return nil
}

// rulePriority resolves a spec's priority: explicit value first, then the
// canonical attribute order, then 0 for unconditional defaults.
func rulePriority(spec ruleSpec) int {
	if spec.Priority != nil {
		return *spec.Priority
	}
	if spec.Attribute == "" {
		return 0
	}
	if p, ok := attributePriority[spec.Attribute]; ok {
		return p
	}
	return 10
}

// Lookup returns the ordered rules for a material under a locality.
// Resolution order: exact (material, locality); then (material, "default")
// when the locality has no rules for that material; then an empty slice.
// An empty result signals "no local override", not an error. Material
// matching is case-insensitive. Callers must not mutate the returned slice.
func (s *Store) Lookup(material, locality string) []types.GuidelineRule {
	matKey := strings.ToLower(strings.TrimSpace(material))

	if table, ok := s.byLocality[strings.ToLower(strings.TrimSpace(locality))]; ok {
		if rules, ok := table[matKey]; ok {
			return rules
		}
	}
	if table, ok := s.byLocality[types.DefaultLocality]; ok {
		if rules, ok := table[matKey]; ok {
			return rules
		}
	}
	return nil
}

// Localities lists every locality with its own rule table, sorted.
func (s *Store) Localities() []string {
	out := make([]string, 0, len(s.byLocality))
	for loc := range s.byLocality {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}

// Materials lists the materials with rules under a locality, sorted.
// Material names are returned as they appear in the ruleset.
func (s *Store) Materials(locality string) []string {
	table, ok := s.byLocality[strings.ToLower(strings.TrimSpace(locality))]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(table))
	for _, rules := range table {
		if len(rules) > 0 {
			out = append(out, rules[0].Material)
		}
	}
	sort.Strings(out)
	return out
}
