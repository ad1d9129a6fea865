// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	_ "embed"
	"text/template"
)

// systemPrompt frames every conversion request sent to the backend.
const systemPrompt = "You are a technical documentation expert who specializes in converting documentation into concise rule files for llms to follow. You read documentation and summarize its content into rulefiles that are direct and concise. For references, always use full markdown links like [Link Text](https://url.com). Never add triple backticks (```) at the start or end of the file. Make sure to preserve all code examples and their formatting."

// promptText is the user prompt template. It lives in its own file because
// the rule structure example contains triple backticks, which Go raw
// string literals cannot hold.
//
//go:embed prompt.tmpl
var promptText string

var promptTmpl = template.Must(template.New("rule").Parse(promptText))

// buildPrompt renders the conversion prompt around one document's content.
func buildPrompt(docContent string) (string, error) {
	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, struct{ Document string }{Document: docContent}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
