// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classifier wraps the image classification oracle behind a small
// capability interface so the decision core can be tested with
// deterministic rankings.
package classifier

import (
	"context"
	"fmt"
	"sort"

	"github.com/pdiddy/recyclo/pkg/types"
)

// Classifier produces a ranked material classification for raw image bytes.
// Implementations return at least one prediction, sorted by descending
// probability, or an *Error. No caching, no internal retries beyond
// transport-level rate-limit backoff: each call is an independent inference
// and the caller decides whether to try again.
type Classifier interface {
	Classify(ctx context.Context, image []byte) ([]types.Prediction, error)
}

// ErrorKind distinguishes classifier failure modes.
type ErrorKind string

const (
	// KindBadImage means the payload was rejected before inference:
	// oversized, empty, or not a recognized image format.
	KindBadImage ErrorKind = "bad_image"

	// KindUnavailable means the oracle could not be reached or answered
	// with a failure status.
	KindUnavailable ErrorKind = "unavailable"

	// KindEmpty means the oracle answered but produced no prediction.
	KindEmpty ErrorKind = "empty"
)

// Error is the single failure type surfaced by classifiers.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classifier: %s: %v", e.Msg, e.Err)
	}
	return "classifier: " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// normalize clamps probabilities into [0, 1] and restores descending order.
// The sort is stable so equal probabilities keep the oracle's order, which
// the resolver relies on for tie-breaking.
func normalize(preds []types.Prediction) []types.Prediction {
	for i := range preds {
		if preds[i].Probability < 0 {
			preds[i].Probability = 0
		}
		if preds[i].Probability > 1 {
			preds[i].Probability = 1
		}
	}
	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].Probability > preds[j].Probability
	})
	return preds
}

// Static is a fixed-answer classifier for tests and the offline CLI path.
type Static struct {
	Predictions []types.Prediction
	Err         error
}

// Classify returns the configured predictions or error, ignoring the image.
func (s Static) Classify(_ context.Context, _ []byte) ([]types.Prediction, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.Predictions) == 0 {
		return nil, &Error{Kind: KindEmpty, Msg: "no predictions configured"}
	}
	out := make([]types.Prediction, len(s.Predictions))
	copy(out, s.Predictions)
	return normalize(out), nil
}
