// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/recyclo/internal/classifier"
	"github.com/pdiddy/recyclo/internal/policy"
	"github.com/pdiddy/recyclo/pkg/types"
)

// processImageRequest is the classification request body. Attribute values
// are loosely typed: browsers send booleans, form relays send strings.
type processImageRequest struct {
	ImageData string         `json:"image_data"`
	City      string         `json:"city"`
	Attrs     map[string]any `json:"attrs"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"min_confidence": s.resolver.MinConfidence(),
	})
}

func (s *Server) processImage(c *gin.Context) {
	var req processImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ImageData == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image data provided."})
		return
	}

	image, err := decodeImageData(req.ImageData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid image data: %v", err)})
		return
	}

	preds, err := s.classifier.Classify(c.Request.Context(), image)
	if err != nil {
		var cerr *classifier.Error
		if errors.As(err, &cerr) && cerr.Kind == classifier.KindBadImage {
			c.JSON(http.StatusBadRequest, gin.H{"error": cerr.Msg})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't analyze image"})
		return
	}

	locality := policy.NormalizeLocality(req.City)
	attrs := normalizeRawAttrs(req.Attrs)
	verdict := s.resolver.Resolve(preds, locality, attrs)

	// Best-effort log for signed-in users; a storage hiccup never fails
	// the classification response.
	if s.progress != nil {
		if user := currentUser(c); user != "" {
			if err := s.progress.Log(c.Request.Context(), user, verdict, locality); err != nil {
				fmt.Fprintf(os.Stderr, "warning: progress log failed: %v\n", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"material":        verdict.Material,
		"action":          verdict.Action,
		"confidence":      verdict.Confidence,
		"confidence_text": confidenceText(verdict),
		"why":             verdict.Why,
		"tip":             verdict.Tip,
		"abstained":       verdict.Abstained,
		"request_id":      c.GetString("request_id"),
	})
}

// decodeImageData accepts both a bare base64 payload and a browser data
// URL ("data:image/png;base64,....").
func decodeImageData(raw string) ([]byte, error) {
	if _, encoded, found := strings.Cut(raw, ","); found {
		raw = encoded
	}
	return base64.StdEncoding.DecodeString(raw)
}

// normalizeRawAttrs coerces loosely-typed attribute values to booleans and
// hands them to the policy normalizer, which drops unrecognized keys.
func normalizeRawAttrs(raw map[string]any) types.Attributes {
	coerced := make(map[string]bool, len(raw))
	for k, v := range raw {
		coerced[k] = policy.CoerceBool(v)
	}
	return policy.NormalizeAttributes(coerced)
}

// confidenceText renders the probability for display, flagging abstained
// verdicts as low.
func confidenceText(v types.Verdict) string {
	if v.Abstained {
		return fmt.Sprintf("%.1f %% (low)", v.Confidence*100)
	}
	return fmt.Sprintf("%.1f %% Confidence Score", v.Confidence*100)
}

func (s *Server) listCharities(c *gin.Context) {
	if s.charities == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "charity directory not loaded"})
		return
	}
	matches := s.charities.Filter(c.Query("city"), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"ok": true, "charities": matches})
}

// requireUser resolves the caller identity or answers 401.
func (s *Server) requireUser(c *gin.Context) (string, bool) {
	if s.progress == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "progress store not available"})
		return "", false
	}
	user := currentUser(c)
	if user == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "sign in required"})
		return "", false
	}
	return user, true
}

func (s *Server) progressSummary(c *gin.Context) {
	user, ok := s.requireUser(c)
	if !ok {
		return
	}
	summary, err := s.progress.Summarize(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"total":   summary.Total,
		"totals":  summary.Totals,
		"per_day": summary.PerDay,
	})
}

func (s *Server) progressLogs(c *gin.Context) {
	user, ok := s.requireUser(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	entries, err := s.progress.Recent(c.Request.Context(), user, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "logs": entries})
}

func (s *Server) clearLogs(c *gin.Context) {
	user, ok := s.requireUser(c)
	if !ok {
		return
	}
	removed, err := s.progress.Clear(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "removed": removed})
}
