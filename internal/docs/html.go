package docs

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		emoji.Emoji,
	),
	// Raw HTML in topics is dropped: html.WithUnsafe is not set.
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// HTML converts md to an HTML fragment. On conversion failure the escaped
// source is returned inside <pre>.
func HTML(md string) template.HTML {
	md = strings.TrimSpace(md)
	if md == "" {
		return template.HTML("")
	}
	var b bytes.Buffer
	if err := markdownRenderer.Convert([]byte(md), &b); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(md) + "</pre>")
	}
	return template.HTML(b.String())
}
