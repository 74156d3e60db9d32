// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultLocality is the fallback locality key used when a request carries
// no recognizable locality, and the fallback table when a locality has no
// rules for a material.
const DefaultLocality = "default"

// GuidelineRule maps a (material, locality) pair to a disposal action,
// optionally gated on one contextual attribute. Rules for a pair form an
// ordered list evaluated by descending priority; the first rule whose
// condition holds wins.
type GuidelineRule struct {
	// Material is the classifier label the rule applies to.
	Material string `json:"material" yaml:"material"`

	// Locality is the canonical locality key, or "default".
	Locality string `json:"locality" yaml:"locality"`

	// Attribute is the canonical attribute key gating this rule. An empty
	// Attribute makes the rule unconditional: the material's default
	// action for the locality.
	Attribute string `json:"attribute,omitempty" yaml:"attribute,omitempty"`

	// Action is the disposal category the rule selects.
	Action Action `json:"action" yaml:"action"`

	// Priority orders rule evaluation, highest first. Unconditional rules
	// carry priority 0 so attribute rules always fire before them.
	Priority int `json:"priority" yaml:"priority"`
}

// Matches reports whether the rule's condition holds for the given
// attributes. Unconditional rules match everything.
func (r GuidelineRule) Matches(attrs Attributes) bool {
	return r.Attribute == "" || attrs.Has(r.Attribute)
}
