// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package server

import (
	"encoding/json"
	"net/http"

	"github.com/tenderlens/internal/analysis"
	"github.com/tenderlens/internal/config"
	"github.com/tenderlens/internal/logger"
	"github.com/tenderlens/internal/server/middleware"
)

// Server bundles the handlers for the tenderlens web UI and API
type Server struct {
	cfg     *config.Config
	analyst *analysis.Analyst
	log     *logger.Logger
}

// NewServer creates a server with its dependencies
func NewServer(cfg *config.Config, analyst *analysis.Analyst, log *logger.Logger) *Server {
	return &Server{
		cfg:     cfg,
		analyst: analyst,
		log:     log,
	}
}

// Routes returns the HTTP handler with all routes registered
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.HandleIndex)
	mux.HandleFunc("/api/v1/analyze", s.HandleAnalyze)
	mux.HandleFunc("/api/v1/health", HandleHealth)
	mux.HandleFunc("/ws/logs", s.HandleLogStream)

	return middleware.TrafficLogger(mux)
}

// writeError writes a JSON error envelope with the given status
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
