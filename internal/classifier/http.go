// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/recyclo/internal/httputil"
	"github.com/pdiddy/recyclo/pkg/types"
)

// HTTP calls a remote inference service that runs the material
// classification model. The service accepts a base64 image and answers
// with ranked (label, probability) pairs.
type HTTP struct {
	client *http.Client
	cfg    types.ClassifierConfig
}

// NewHTTP builds an HTTP classifier from config. The caller may share one
// instance across requests; the oracle endpoint is expected to be
// reentrant.
func NewHTTP(cfg types.ClassifierConfig) *HTTP {
	return &HTTP{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
}

// classifyRequest is the inference service request body.
type classifyRequest struct {
	ImageData string `json:"image_data"`
}

// classifyResponse is the inference service response body.
type classifyResponse struct {
	Predictions []types.Prediction `json:"predictions"`
	Error       string             `json:"error,omitempty"`
}

// Classify validates the image locally, posts it to the inference service,
// and returns the ranked predictions. All failures are *Error values; the
// caller decides whether to retry or report.
func (h *HTTP) Classify(ctx context.Context, image []byte) ([]types.Prediction, error) {
	if err := ValidateImage(image, h.cfg.MaxImageBytes); err != nil {
		return nil, err
	}

	body, err := json.Marshal(classifyRequest{
		ImageData: base64.StdEncoding.EncodeToString(image),
	})
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Msg: "encoding request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Msg: "building request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if h.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", h.cfg.UserAgent)
	}
	if h.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.cfg.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, h.client, req, h.cfg.MaxRetries)
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Msg: "calling inference service", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Msg: "reading response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Kind: KindUnavailable, Msg: fmt.Sprintf("inference service returned %d", resp.StatusCode)}
	}

	var parsed classifyResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &Error{Kind: KindUnavailable, Msg: "decoding response", Err: err}
	}
	if parsed.Error != "" {
		return nil, &Error{Kind: KindUnavailable, Msg: "inference failed: " + parsed.Error}
	}
	if len(parsed.Predictions) == 0 {
		return nil, &Error{Kind: KindEmpty, Msg: "oracle returned no predictions"}
	}

	return normalize(parsed.Predictions), nil
}
