// Package markdown renders issue bodies to sanitized HTML fragments.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/runoshun/issue-butler/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements domain.MarkdownRenderer.
var _ domain.MarkdownRenderer = (*Renderer)(nil)

// Renderer converts GitHub-flavored markdown to HTML.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New creates a Renderer with GFM extensions and a user-generated-content sanitizer.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			// Raw HTML in bodies is common on GitHub; the policy below strips anything unsafe.
			html.WithUnsafe(),
			html.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("checked", "disabled", "type").OnElements("input")
	policy.AllowAttrs("align").OnElements("td", "th")

	return &Renderer{
		md:     md,
		policy: policy,
	}
}

// Render returns the HTML fragment for source. Empty input renders as "".
func (r *Renderer) Render(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
