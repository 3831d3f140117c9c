// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package parser

import (
	"bytes"
	"testing"
)

func TestParseUpload_RejectsUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"tender.pdf", "tender.doc", "tender.txt", "tender"} {
		if _, err := ParseUpload(name, nil, 0); err == nil {
			t.Errorf("Expected %s to be rejected", name)
		}
	}
}

func TestParseUpload_RejectsTemporaryFiles(t *testing.T) {
	for _, name := range []string{"~$tender.docx", "._tender.docx", "tender.docx.tmp"} {
		if _, err := ParseUpload(name, nil, 0); err == nil {
			t.Errorf("Expected temporary file %s to be rejected", name)
		}
	}
}

func TestParseUpload_AcceptsDocx(t *testing.T) {
	data := buildDocx(t, []string{"项目名称"})

	paragraphs, err := ParseUpload("Tender.DOCX", bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ParseUpload failed: %v", err)
	}
	if len(paragraphs) != 1 || paragraphs[0] != "项目名称" {
		t.Errorf("Unexpected paragraphs: %v", paragraphs)
	}
}

func TestIsTemporaryFile(t *testing.T) {
	cases := map[string]bool{
		"~$report.docx":     true,
		"._report.docx":     true,
		"report.docx.tmp":   true,
		"report.docx":       false,
		"dir/~$nested.docx": true,
	}
	for name, want := range cases {
		if got := IsTemporaryFile(name); got != want {
			t.Errorf("IsTemporaryFile(%q) = %v, expected %v", name, got, want)
		}
	}
}
