// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the recyclo decision
// pipeline: classifier predictions, contextual attributes, guideline rules,
// and the final disposal verdict.
package types

// Prediction is one ranked material guess from the image classifier.
// A classification yields at least one Prediction, ordered by descending
// probability. Probabilities need not sum to 1 when the oracle returns
// only its top K classes.
type Prediction struct {
	// Label is the material category as returned by the classifier
	// (e.g. "Cardboard", "Glass", "Plastic").
	Label string `json:"label" yaml:"label"`

	// Probability is the classifier's confidence in [0, 1].
	Probability float64 `json:"probability" yaml:"probability"`
}

// Action is the final disposal category for an item.
type Action string

const (
	ActionRecyclable Action = "Recyclable"
	ActionCompost    Action = "Compost"
	ActionLandfill   Action = "Landfill"

	// ActionDropOff covers items a curbside program rejects but a store
	// drop-off accepts, such as film plastic and scrunchable bags.
	ActionDropOff Action = "Drop-off"

	// ActionHazard marks items needing special handling (batteries,
	// chemicals). It wins over every locality rule and default mapping.
	ActionHazard Action = "Hazard"

	// ActionOther is the catch-all, and the action attached to abstained
	// verdicts.
	ActionOther Action = "Other"
)

// Attributes holds user-supplied contextual flags about the item, keyed by
// canonical attribute name. Keys absent from the map are false. Attributes
// is built once per request by policy.NormalizeAttributes and not mutated
// afterwards.
type Attributes map[string]bool

// Has reports whether the attribute key is present and true.
func (a Attributes) Has(key string) bool {
	return a[key]
}

// Canonical attribute keys recognized by the normalizer. Anything else in
// the raw request is dropped.
const (
	AttrSoftBag          = "soft_bag"
	AttrFoam             = "foam"
	AttrPaperCupOrCarton = "paper_cup_or_carton"
	AttrGreasyOrWet      = "greasy_or_wet"
	AttrHazard           = "hazard"
)

// Verdict is the final merged disposal decision for one classified item.
// Verdicts are request-scoped values; the engine never persists them.
type Verdict struct {
	// Material is the top classifier label, verbatim, for display.
	Material string `json:"material" yaml:"material"`

	// Action is the disposal decision.
	Action Action `json:"action" yaml:"action"`

	// Confidence is the top prediction's probability, unmodified by rule
	// evaluation. Rules adjust the action, never the number.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Why is a human-readable rationale citing the rule or mapping that
	// produced the action.
	Why string `json:"why" yaml:"why"`

	// Tip is an optional handling hint for the material. Empty when no
	// tip is registered.
	Tip string `json:"tip,omitempty" yaml:"tip,omitempty"`

	// Abstained is true when classifier confidence fell below the policy
	// threshold and no action was committed to. Abstention is a valid
	// outcome, not an error.
	Abstained bool `json:"abstained" yaml:"abstained"`
}
