// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tips

import (
	"strings"
	"testing"

	"github.com/pdiddy/recyclo/pkg/types"
)

func TestForMaterialTip(t *testing.T) {
	table := Default()

	tip, ok := table.For("Cardboard", types.ActionRecyclable)
	if !ok {
		t.Fatal("want a tip for cardboard")
	}
	if !strings.Contains(tip, "Flatten") {
		t.Errorf("cardboard tip = %q", tip)
	}

	// Material tips apply under any action.
	landfill, ok := table.For("cardboard", types.ActionLandfill)
	if !ok || landfill != tip {
		t.Error("material tip should be action-independent")
	}
}

func TestForActionFallback(t *testing.T) {
	table := Default()

	tip, ok := table.For("Battery", types.ActionHazard)
	if !ok {
		t.Fatal("want the hazard tip for an unlisted material")
	}
	if !strings.Contains(tip, "hazardous waste") {
		t.Errorf("hazard tip = %q", tip)
	}
}

func TestForMaterialBeatsAction(t *testing.T) {
	table := Default()

	// Plastic has its own tip; Drop-off has a generic one. Material wins.
	tip, ok := table.For("Plastic", types.ActionDropOff)
	if !ok || !strings.Contains(tip, "#1 and #2") {
		t.Errorf("got %q, want the plastic material tip", tip)
	}
}

func TestForAbstainTip(t *testing.T) {
	table := Default()

	tip, ok := table.For("", types.ActionOther)
	if !ok {
		t.Fatal("want a tip for abstained verdicts")
	}
	if !strings.Contains(tip, "another angle") {
		t.Errorf("abstain tip = %q", tip)
	}
}

func TestForMiss(t *testing.T) {
	table := Default()

	if tip, ok := table.For("Unobtanium", types.ActionRecyclable); ok {
		t.Errorf("want no tip, got %q", tip)
	}
}
