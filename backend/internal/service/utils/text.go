package utils

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// TextProcessor cleans user input on the way in and renders post bodies on the way out.
type TextProcessor struct {
	md     goldmark.Markdown
	strict *bluemonday.Policy
	ugc    *bluemonday.Policy
}

func NewTextProcessor() *TextProcessor {
	md := goldmark.New(
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	)

	ugc := bluemonday.UGCPolicy()
	ugc.RequireNoFollowOnLinks(true)
	ugc.AddTargetBlankToFullyQualifiedLinks(true)

	return &TextProcessor{md: md, strict: bluemonday.StrictPolicy(), ugc: ugc}
}

// Clean strips every html tag and surrounding whitespace. Input that was only
// markup becomes empty and then fails required-field validation. Plain
// characters such as '<' or '&' are kept as typed.
//
// The result is plain text, not html: entities are decoded, so "&lt;script&gt;"
// is stored as "<script>". Titles and comment bodies are served as cleaned, and
// consumers must escape them before embedding them in a page. Post bodies reach
// clients through Render.
func (tp *TextProcessor) Clean(text string) string {
	return strings.TrimSpace(html.UnescapeString(tp.strict.Sanitize(text)))
}

// Render converts markdown to html that is safe to embed. On a render failure
// the escaped source text is returned.
func (tp *TextProcessor) Render(text string) string {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		return tp.strict.Sanitize(text)
	}
	return strings.TrimSpace(tp.ugc.Sanitize(buf.String()))
}
