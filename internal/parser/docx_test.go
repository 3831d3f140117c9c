// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package parser

import (
	"archive/zip"
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestSplitParagraphs(t *testing.T) {
	content := `<w:document><w:body>` +
		`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:t>招标公告</w:t></w:r></w:p>` +
		`<w:p w14:paraId="3A2B"/>` +
		`<w:p><w:r><w:t xml:space="preserve">截止时间：</w:t></w:r><w:r><w:t>2025-05-28</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got := splitParagraphs(content)

	want := []string{"招标公告", "", "截止时间：2025-05-28"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paragraph mismatch. Expected: %v, Got: %v", want, got)
	}
}

func TestSplitParagraphs_EmptyParagraphWithRuns(t *testing.T) {
	content := `<w:p><w:pPr/><w:r><w:rPr/></w:r></w:p>`

	got := splitParagraphs(content)

	if len(got) != 1 || got[0] != "" {
		t.Errorf("Expected one empty paragraph, got %v", got)
	}
}

func TestSplitParagraphs_UnescapesEntities(t *testing.T) {
	content := `<w:p><w:r><w:t>A &amp; B &lt;C&gt;</w:t></w:r></w:p>`

	got := splitParagraphs(content)

	if len(got) != 1 || got[0] != "A & B <C>" {
		t.Errorf("Expected unescaped text, got %v", got)
	}
}

func TestSplitParagraphs_NoParagraphs(t *testing.T) {
	if got := splitParagraphs(`<w:document><w:body></w:body></w:document>`); len(got) != 0 {
		t.Errorf("Expected no paragraphs, got %v", got)
	}
}

func TestReadDocx(t *testing.T) {
	data := buildDocx(t, []string{"招标公告", "", "截止时间：2025-05-28"})

	got, err := ReadDocx(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ReadDocx failed: %v", err)
	}

	want := []string{"招标公告", "", "截止时间：2025-05-28"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paragraph mismatch. Expected: %v, Got: %v", want, got)
	}
}

func TestReadDocx_NotADocx(t *testing.T) {
	data := []byte("plain text, not a zip archive")

	if _, err := ReadDocx(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Fatal("Expected an error for a non-docx payload")
	}
}

// buildDocx assembles a minimal .docx archive with the given paragraph texts
func buildDocx(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		if p == "" {
			body.WriteString(`<w:p/>`)
			continue
		}
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	relationships := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          contentTypes,
		"_rels/.rels":                  relationships,
		"word/document.xml":            document,
		"word/_rels/document.xml.rels": relationships,
	}
	for name, content := range files {
		f, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to create %s in archive: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close archive: %v", err)
	}
	return buf.Bytes()
}
