// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package server

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*
var templatesFS embed.FS

// defaultKeywords pre-seeds the keyword textarea in the upload form
const defaultKeywords = "招标\n投标\n项目\n资格\n投标文件\n截止时间\n评标"

// indexData carries the values rendered into the upload page
type indexData struct {
	Model           string
	DefaultKeywords string
}

// renderTemplate is a helper function to render templates with base layout
func (s *Server) renderTemplate(w http.ResponseWriter, tmplName string, data interface{}) error {
	tmpl, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+tmplName)
	if err != nil {
		s.log.Errorf("Failed to parse template %s: %v", tmplName, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		s.log.Errorf("Failed to execute template %s: %v", tmplName, err)
		return err
	}
	return nil
}

// HandleIndex serves the upload and analysis page
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := indexData{
		Model:           s.cfg.LLM.Model,
		DefaultKeywords: defaultKeywords,
	}
	if err := s.renderTemplate(w, "index.html", data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}
