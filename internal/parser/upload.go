// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ParseUpload validates an uploaded file and returns its paragraph texts.
// Only .docx is accepted.
func ParseUpload(filename string, r io.ReaderAt, size int64) ([]string, error) {
	if IsTemporaryFile(filename) {
		return nil, fmt.Errorf("refusing temporary file: %s", filepath.Base(filename))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".docx" {
		return nil, fmt.Errorf("unsupported file type: %s (only .docx is accepted)", ext)
	}

	return ReadDocx(r, size)
}

// IsTemporaryFile checks if a file is a temporary file (e.g., ~$doc.docx)
func IsTemporaryFile(filePath string) bool {
	base := filepath.Base(filePath)
	if strings.HasPrefix(base, "~$") {
		return true
	}
	if strings.HasPrefix(base, "._") {
		return true
	}
	if strings.HasSuffix(base, ".tmp") {
		return true
	}
	return false
}
