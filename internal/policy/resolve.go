// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package policy

import (
	"fmt"
	"strings"

	"github.com/pdiddy/recyclo/internal/guideline"
	"github.com/pdiddy/recyclo/internal/tips"
	"github.com/pdiddy/recyclo/pkg/types"
)

// DefaultMinConfidence is the abstention threshold used when the policy
// config does not set one.
const DefaultMinConfidence = 0.70

// AbstainWhy is the rationale attached to every abstained verdict.
const AbstainWhy = "low model confidence"

// defaultActions maps lower-cased material labels to a generic action when
// no locality rule matches. Labels absent from the table resolve to Other.
var defaultActions = map[string]types.Action{
	"cardboard":   types.ActionRecyclable,
	"glass":       types.ActionRecyclable,
	"metal":       types.ActionRecyclable,
	"paper":       types.ActionRecyclable,
	"plastic":     types.ActionRecyclable,
	"plastic#1":   types.ActionRecyclable,
	"plastic#2":   types.ActionRecyclable,
	"food scraps": types.ActionCompost,
	"organics":    types.ActionCompost,
	"trash":       types.ActionLandfill,
	"mixed waste": types.ActionLandfill,
}

// Resolver merges a classifier ranking, guideline rules, and contextual
// attributes into a Verdict. Precedence is fixed: abstention, then the
// hazard override, then locality rules, then the default material mapping.
// Resolve is pure and safe for concurrent use.
type Resolver struct {
	store         *guideline.Store
	tips          *tips.Table
	minConfidence float64
}

// NewResolver builds a Resolver around a loaded guideline store and tip
// table. A zero or negative MinConfidence falls back to
// DefaultMinConfidence.
func NewResolver(store *guideline.Store, tipTable *tips.Table, cfg types.PolicyConfig) *Resolver {
	min := cfg.MinConfidence
	if min <= 0 {
		min = DefaultMinConfidence
	}
	return &Resolver{store: store, tips: tipTable, minConfidence: min}
}

// MinConfidence returns the resolver's abstention threshold.
func (r *Resolver) MinConfidence() float64 {
	return r.minConfidence
}

// Resolve produces the final verdict for one classification. Predictions
// must be ordered by descending probability with at least one entry; ties
// at the top keep classifier order because only preds[0] is consulted.
func (r *Resolver) Resolve(preds []types.Prediction, locality string, attrs types.Attributes) types.Verdict {
	if len(preds) == 0 {
		// The classifier adapter guarantees a non-empty ranking; an empty
		// one here means the caller bypassed it, so decline to act.
		return types.Verdict{Action: types.ActionOther, Why: AbstainWhy, Abstained: true}
	}

	top := preds[0]
	v := types.Verdict{
		Material:   top.Label,
		Confidence: top.Probability,
	}

	// Abstention gate. Checked before everything, including hazard: a
	// low-confidence classification is not acted on at all.
	if top.Probability < r.minConfidence {
		v.Action = types.ActionOther
		v.Why = AbstainWhy
		v.Abstained = true
		v.Tip, _ = r.tips.For("", types.ActionOther)
		return v
	}

	display := DisplayLocality(NormalizeLocality(locality))

	// Safety override: a hazardous item never goes through rule or
	// default-mapping evaluation.
	if attrs.Has(types.AttrHazard) {
		v.Action = types.ActionHazard
		v.Why = fmt.Sprintf("%s marked as '%s' → special handling required", top.Label, AttributeLabel(types.AttrHazard))
		v.Tip, _ = r.tips.For(top.Label, v.Action)
		return v
	}

	// Locality rules, highest priority first; first match wins.
	for _, rule := range r.store.Lookup(top.Label, locality) {
		if !rule.Matches(attrs) {
			continue
		}
		v.Action = rule.Action
		if rule.Attribute != "" {
			v.Why = fmt.Sprintf("%s marked as '%s' → %s (%s)", rule.Material, AttributeLabel(rule.Attribute), rule.Action, display)
		} else {
			v.Why = fmt.Sprintf("%s → %s (%s)", rule.Material, rule.Action, display)
		}
		v.Tip, _ = r.tips.For(top.Label, v.Action)
		return v
	}

	// No local override: generic material mapping.
	action, ok := defaultActions[strings.ToLower(strings.TrimSpace(top.Label))]
	if !ok {
		action = types.ActionOther
	}
	v.Action = action
	v.Why = fmt.Sprintf("%s → %s (%s)", top.Label, action, display)
	v.Tip, _ = r.tips.For(top.Label, v.Action)
	return v
}
