// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package parser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	// one match per <w:p> block, self-closing form included so empty
	// paragraphs keep their slot in the output
	paragraphRe = regexp.MustCompile(`(?s)<w:p(?:\s[^>]*)?/>|<w:p(?:\s[^>]*)?>.*?</w:p>`)
	runTextRe   = regexp.MustCompile(`(?s)<w:t(?:\s[^>]*)?>(.*?)</w:t>`)
)

var xmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

// ReadDocx extracts the ordered paragraph texts from a DOCX body
func ReadDocx(r io.ReaderAt, size int64) ([]string, error) {
	doc, err := docx.ReadDocxFromMemory(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX file: %w", err)
	}
	defer doc.Close()

	return splitParagraphs(doc.Editable().GetContent()), nil
}

// splitParagraphs turns raw document XML into one entry per paragraph.
// Run texts within a paragraph are concatenated; paragraphs without any
// run text yield an empty string.
func splitParagraphs(content string) []string {
	blocks := paragraphRe.FindAllString(content, -1)
	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		var sb strings.Builder
		for _, m := range runTextRe.FindAllStringSubmatch(block, -1) {
			sb.WriteString(xmlUnescaper.Replace(m[1]))
		}
		paragraphs = append(paragraphs, sb.String())
	}
	return paragraphs
}
