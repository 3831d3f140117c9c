// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tenderlens/internal/analysis"
	"github.com/tenderlens/internal/extract"
	"github.com/tenderlens/internal/parser"
)

// AnalyzeResponse is the payload returned on a successful analysis
type AnalyzeResponse struct {
	Summary         string  `json:"summary"`
	ElapsedSeconds  float64 `json:"elapsed_seconds"`
	ParagraphsTotal int     `json:"paragraphs_total"`
	ParagraphsUsed  int     `json:"paragraphs_used"`
	RequestID       string  `json:"request_id"`
}

// HandleAnalyze handles POST /api/v1/analyze requests. The flow is strictly
// sequential: parse the upload, extract the text, call the model, respond.
func (s *Server) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	requestID := uuid.New().String()

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxBytes)
	if err := r.ParseMultipartForm(s.cfg.Upload.MaxBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid upload: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "a .docx file is required")
		return
	}
	defer file.Close()

	s.log.Printf("[%s] Received %s (%d bytes)", requestID, header.Filename, header.Size)

	paragraphs, err := parser.ParseUpload(header.Filename, file, header.Size)
	if err != nil {
		s.log.Errorf("[%s] Failed to load document: %v", requestID, err)
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("failed to load document: %v", err))
		return
	}

	var keywords []string
	if filterEnabled(r.FormValue("use_keyword_filter")) {
		keywords = extract.ParseKeywords(r.FormValue("keywords"))
	}

	filtered := extract.Filter(paragraphs, keywords)
	text := extract.Content(paragraphs, keywords)
	s.log.Printf("[%s] Extracted %d/%d paragraphs (%d chars)", requestID, len(filtered), len(paragraphs), len(text))

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.LLM.RequestTimeout())
	defer cancel()

	start := time.Now()
	summary, err := s.analyst.Analyze(ctx, text)
	elapsed := time.Since(start)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrInsufficientBalance):
			s.log.Errorf("[%s] Analysis failed: insufficient account balance", requestID)
			writeError(w, http.StatusPaymentRequired, "账户余额不足，请充值后重试 (insufficient account balance, top up and retry)")
		case errors.Is(err, analysis.ErrRateLimited):
			s.log.Errorf("[%s] Analysis failed: rate limit retries exhausted", requestID)
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
		default:
			s.log.Errorf("[%s] Analysis failed: %v", requestID, err)
			writeError(w, http.StatusBadGateway, fmt.Sprintf("analysis failed: %v", err))
		}
		return
	}

	s.log.Printf("[%s] Analysis completed in %.2fs", requestID, elapsed.Seconds())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnalyzeResponse{
		Summary:         summary,
		ElapsedSeconds:  elapsed.Seconds(),
		ParagraphsTotal: len(paragraphs),
		ParagraphsUsed:  len(filtered),
		RequestID:       requestID,
	})
}

// filterEnabled interprets the checkbox value from the form
func filterEnabled(value string) bool {
	return value == "true" || value == "on" || value == "1"
}
