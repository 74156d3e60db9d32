// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package policy turns a classifier ranking, locality rules, and contextual
// attributes into one disposal verdict. It performs no I/O and holds no
// per-request state; all tables are injected at construction.
package policy

import (
	"strings"

	"github.com/pdiddy/recyclo/pkg/types"
)

// recognizedAttributes is the set of attribute keys the normalizer keeps.
// Unknown keys in raw input are dropped, never rejected.
var recognizedAttributes = map[string]bool{
	types.AttrSoftBag:          true,
	types.AttrFoam:             true,
	types.AttrPaperCupOrCarton: true,
	types.AttrGreasyOrWet:      true,
	types.AttrHazard:           true,
}

// attributeLabels supplies display names for why-strings.
var attributeLabels = map[string]string{
	types.AttrSoftBag:          "Soft bag / plastic wrap",
	types.AttrFoam:             "Foam / Styrofoam",
	types.AttrPaperCupOrCarton: "Paper cup or carton",
	types.AttrGreasyOrWet:      "Greasy or wet",
	types.AttrHazard:           "Hazardous item",
}

// AttributeLabel returns the display name for a canonical attribute key.
func AttributeLabel(key string) string {
	if label, ok := attributeLabels[key]; ok {
		return label
	}
	return strings.ReplaceAll(key, "_", " ")
}

// NormalizeLocality canonicalizes a free-form locality: trim, lower-case,
// and keep only the city part of "city, state" input. Empty or missing input
// yields "default". The result is never validated against the guideline
// store; unknown localities fall back at lookup time.
func NormalizeLocality(raw string) string {
	loc := strings.ToLower(strings.TrimSpace(raw))
	if city, _, found := strings.Cut(loc, ","); found {
		loc = strings.TrimSpace(city)
	}
	if loc == "" {
		return types.DefaultLocality
	}
	return loc
}

// DisplayLocality renders a canonical locality key for why-strings:
// "default" becomes "Default", "san francisco" becomes "San Francisco".
func DisplayLocality(key string) string {
	if key == "" || key == types.DefaultLocality {
		return "Default"
	}
	words := strings.Fields(key)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NormalizeAttributes filters raw attribute flags down to recognized keys.
// Unknown keys are silently dropped and missing keys default to false.
// Never fails; nil input yields an empty set.
func NormalizeAttributes(raw map[string]bool) types.Attributes {
	attrs := make(types.Attributes, len(raw))
	for k, v := range raw {
		key := strings.ToLower(strings.TrimSpace(k))
		if recognizedAttributes[key] {
			attrs[key] = v
		}
	}
	return attrs
}

// CoerceBool interprets loosely-typed attribute values from form posts and
// query strings. Numbers are true when non-zero; strings follow the usual
// yes/no vocabulary, with any other non-empty string counting as true.
func CoerceBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case nil:
		return false
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		switch s {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off", "":
			return false
		}
		return true
	}
	return false
}
