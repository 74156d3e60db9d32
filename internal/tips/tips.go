// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tips selects explanatory handling hints for a resolved verdict.
package tips

import (
	"strings"

	"github.com/pdiddy/recyclo/pkg/types"
)

// key addresses one tip. An empty Material matches any material for the
// action; an empty Action matches any action for the material.
type key struct {
	material string
	action   types.Action
}

// Table is a static tip mapping, built once and read-only afterwards.
type Table struct {
	tips map[key]string
}

// Default returns the built-in tip table.
func Default() *Table {
	return &Table{tips: map[key]string{
		{material: "cardboard"}: "Flatten boxes and keep them dry; remove packing tape if you can.",
		{material: "glass"}:     "Rinse and remove caps; most programs take bottles and jars only.",
		{material: "metal"}:     "Rinse cans; crushing is optional but saves space.",
		{material: "paper"}:     "Keep it clean and dry; no greasy pizza boxes.",
		{material: "plastic"}:   "#1 and #2 bottles are most widely accepted.",
		{material: "trash"}:     "This item is not recyclable locally; consider reusing or proper disposal.",

		{action: types.ActionHazard}:  "Take batteries, electronics, and chemicals to a household hazardous waste drop-off.",
		{action: types.ActionDropOff}: "Many grocery stores collect film plastic and bags at the entrance.",
		{action: types.ActionCompost}: "Keep compost free of plastic, glass, and produce stickers.",

		// Shown with abstained verdicts.
		{action: types.ActionOther}: "Try another angle or better light, or choose from a list.",
	}}
}

// For returns the tip registered for a material and action. Lookup order:
// exact (material, action); material under any action; action under any
// material. The second return is false when nothing is registered; the
// caller must handle absence.
func (t *Table) For(material string, action types.Action) (string, bool) {
	mat := strings.ToLower(strings.TrimSpace(material))

	for _, k := range []key{
		{material: mat, action: action},
		{material: mat},
		{action: action},
	} {
		if tip, ok := t.tips[k]; ok {
			return tip, true
		}
	}
	return "", false
}
