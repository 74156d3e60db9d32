// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package policy

import (
	"testing"

	"github.com/pdiddy/recyclo/pkg/types"
)

func TestNormalizeLocality(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "default"},
		{"   ", "default"},
		{"Austin", "austin"},
		{"  Austin  ", "austin"},
		{"Austin, TX", "austin"},
		{"SAN Francisco", "san francisco"},
		{"San Francisco, CA, USA", "san francisco"},
		{",", "default"},
		{", TX", "default"},
	}
	for _, tt := range tests {
		if got := NormalizeLocality(tt.raw); got != tt.want {
			t.Errorf("NormalizeLocality(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDisplayLocality(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"default", "Default"},
		{"", "Default"},
		{"austin", "Austin"},
		{"san francisco", "San Francisco"},
		{"new york", "New York"},
	}
	for _, tt := range tests {
		if got := DisplayLocality(tt.key); got != tt.want {
			t.Errorf("DisplayLocality(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestNormalizeAttributes(t *testing.T) {
	raw := map[string]bool{
		"hazard":        true,
		"  Foam  ":      true,
		"glowing":       true, // unrecognized, dropped
		"greasy_or_wet": false,
	}

	attrs := NormalizeAttributes(raw)

	if len(attrs) != 3 {
		t.Fatalf("kept %d attrs, want 3: %v", len(attrs), attrs)
	}
	if !attrs.Has(types.AttrHazard) {
		t.Error("hazard should survive normalization")
	}
	if !attrs.Has(types.AttrFoam) {
		t.Error("foam should survive with trimming and lower-casing")
	}
	if attrs.Has("glowing") {
		t.Error("unrecognized key should be dropped")
	}
	if attrs.Has(types.AttrGreasyOrWet) {
		t.Error("explicit false should read as unset")
	}
}

func TestNormalizeAttributesNil(t *testing.T) {
	attrs := NormalizeAttributes(nil)
	if len(attrs) != 0 {
		t.Errorf("nil input should yield an empty set, got %v", attrs)
	}
	if attrs.Has(types.AttrHazard) {
		t.Error("empty set should report no attributes")
	}
}

func TestAttributeLabel(t *testing.T) {
	if got := AttributeLabel(types.AttrFoam); got != "Foam / Styrofoam" {
		t.Errorf("AttributeLabel(foam) = %q", got)
	}
	if got := AttributeLabel("never_seen"); got != "never seen" {
		t.Errorf("AttributeLabel fallback = %q, want underscores replaced", got)
	}
}

func TestCoerceBool(t *testing.T) {
	truthy := []any{true, 1, int64(2), 3.5, "1", "true", "YES", " y ", "on", "banana"}
	for _, v := range truthy {
		if !CoerceBool(v) {
			t.Errorf("CoerceBool(%#v) = false, want true", v)
		}
	}

	falsy := []any{false, nil, 0, int64(0), 0.0, "0", "false", "No", "n", "OFF", "", "  ", []string{"x"}}
	for _, v := range falsy {
		if CoerceBool(v) {
			t.Errorf("CoerceBool(%#v) = true, want false", v)
		}
	}
}
