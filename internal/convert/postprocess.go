// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "strings"

// Postprocess cleans a model response for writing: a fence the model
// wrapped around the whole file is stripped, then leading blank lines are
// dropped. Content already free of both comes back unchanged.
func Postprocess(content string) string {
	return trimLeadingBlankLines(stripFences(content))
}

// stripFences removes one triple-backtick marker from the very start and
// one from the very end of content. Fences inside the content are left
// alone.
func stripFences(content string) string {
	if strings.HasPrefix(content, "```") {
		content = content[3:]
	}
	if strings.HasSuffix(content, "```") {
		content = content[:len(content)-3]
	}
	return content
}

// trimLeadingBlankLines drops whitespace-only lines from the start of
// content. Everything after the first non-blank line is preserved byte
// for byte, trailing newline included.
func trimLeadingBlankLines(content string) string {
	for {
		nl := strings.IndexByte(content, '\n')
		if nl < 0 {
			return content
		}
		if strings.TrimSpace(content[:nl]) != "" {
			return content
		}
		content = content[nl+1:]
	}
}
