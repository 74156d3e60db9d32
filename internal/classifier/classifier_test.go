// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/pdiddy/recyclo/pkg/types"
)

func TestStaticSortsAndCopies(t *testing.T) {
	s := Static{Predictions: []types.Prediction{
		{Label: "Glass", Probability: 0.2},
		{Label: "Metal", Probability: 0.7},
	}}

	preds, err := s.Classify(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if preds[0].Label != "Metal" {
		t.Errorf("top label = %q, want Metal after sorting", preds[0].Label)
	}

	// The caller gets a copy, not the configured slice.
	preds[0].Label = "mutated"
	if s.Predictions[0].Label == "mutated" || s.Predictions[1].Label == "mutated" {
		t.Error("Classify should not alias the configured predictions")
	}
}

func TestStaticEmpty(t *testing.T) {
	_, err := Static{}.Classify(context.Background(), nil)

	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Kind != KindEmpty {
		t.Errorf("err = %v, want KindEmpty", err)
	}
}

func TestStaticErrorPassthrough(t *testing.T) {
	want := errors.New("boom")
	_, err := Static{Err: want}.Classify(context.Background(), nil)
	if !errors.Is(err, want) {
		t.Errorf("err = %v, want configured error", err)
	}
}

func TestNormalizeClampsAndKeepsTieOrder(t *testing.T) {
	preds := normalize([]types.Prediction{
		{Label: "A", Probability: 1.7},
		{Label: "B", Probability: -0.3},
		{Label: "C", Probability: 1.2},
	})

	if preds[0].Probability != 1 || preds[1].Probability != 1 {
		t.Errorf("probabilities not clamped: %+v", preds)
	}
	// A and C both clamp to 1; the stable sort keeps A first.
	if preds[0].Label != "A" || preds[1].Label != "C" {
		t.Errorf("tie order not preserved: %+v", preds)
	}
	if preds[2].Probability != 0 {
		t.Errorf("negative probability should clamp to 0: %+v", preds[2])
	}
}

func TestErrorMessage(t *testing.T) {
	plain := &Error{Kind: KindBadImage, Msg: "empty image"}
	if plain.Error() != "classifier: empty image" {
		t.Errorf("Error() = %q", plain.Error())
	}

	inner := errors.New("connection refused")
	wrapped := &Error{Kind: KindUnavailable, Msg: "calling inference service", Err: inner}
	if !errors.Is(wrapped, inner) {
		t.Error("Unwrap should expose the inner error")
	}
}
