// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package extract

import "strings"

// Filter returns the paragraphs containing at least one keyword as a
// case-insensitive substring, in original order. With no keywords every
// paragraph is kept.
func Filter(paragraphs []string, keywords []string) []string {
	if len(keywords) == 0 {
		return paragraphs
	}

	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	kept := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		paraLower := strings.ToLower(para)
		for _, kw := range lowered {
			if strings.Contains(paraLower, kw) {
				kept = append(kept, para)
				break
			}
		}
	}
	return kept
}

// Content joins the (optionally keyword-filtered) paragraphs into a single
// text blob with newline separators. An empty document yields an empty string.
func Content(paragraphs []string, keywords []string) string {
	return strings.Join(Filter(paragraphs, keywords), "\n")
}

// ParseKeywords splits a keyword list entered one per line, trimming
// whitespace and discarding empty lines.
func ParseKeywords(raw string) []string {
	var keywords []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			keywords = append(keywords, line)
		}
	}
	return keywords
}
