// Package document compiles the report template and delivers the rasterized result.
package document

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/issue-butler/internal/domain"
)

// Ensure Renderer implements domain.DocumentGenerator.
var _ domain.DocumentGenerator = (*Renderer)(nil)

// Renderer binds cards into an HTML template and hands the result to a Rasterizer.
type Renderer struct {
	rasterizer domain.Rasterizer
}

// NewRenderer creates a new Renderer.
func NewRenderer(rasterizer domain.Rasterizer) *Renderer {
	return &Renderer{
		rasterizer: rasterizer,
	}
}

// templateData is what the template sees.
type templateData struct {
	TeamName string
	Cards    []cardView
}

type cardView struct {
	Title    string
	Body     template.HTML // Sanitized by the markdown renderer
	TeamName string
	Labels   []labelView
	ID       int64
	Number   int
}

type labelView struct {
	Name  string
	Style template.CSS // Generated from the label palette
}

// Generate validates doc, compiles it, rasterizes it and delivers it per doc.Mode.
func (r *Renderer) Generate(ctx context.Context, doc domain.Document, opts domain.RenderOptions) (*domain.Artifact, error) {
	if err := validate(doc, opts); err != nil {
		return nil, err
	}

	html, err := Compile(doc.Template, doc.Data)
	if err != nil {
		return nil, err
	}

	pdf, err := r.rasterizer.Rasterize(ctx, html, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRender, err)
	}

	switch doc.Mode {
	case domain.OutputStream:
		return &domain.Artifact{Mode: domain.OutputStream, Stream: pdf}, nil
	case domain.OutputBuffer:
		defer func() { _ = pdf.Close() }()
		data, err := io.ReadAll(pdf)
		if err != nil {
			return nil, fmt.Errorf("%w: read pdf: %w", domain.ErrRender, err)
		}
		return &domain.Artifact{Mode: domain.OutputBuffer, Buffer: data}, nil
	default:
		defer func() { _ = pdf.Close() }()
		n, err := writeFile(doc.Path, pdf)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrRender, err)
		}
		return &domain.Artifact{Mode: domain.OutputFile, Path: doc.Path, BytesWritten: n}, nil
	}
}

// Compile executes the template against data and returns the HTML document.
func Compile(source string, data *domain.DocumentData) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", fmt.Errorf("%w: template is required", domain.ErrMalformedDocument)
	}
	if data == nil {
		return "", fmt.Errorf("%w: data is required", domain.ErrMalformedDocument)
	}

	tmpl, err := template.New("report").Option("missingkey=error").Parse(source)
	if err != nil {
		return "", fmt.Errorf("%w: parse template: %w", domain.ErrMalformedDocument, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newTemplateData(data)); err != nil {
		return "", fmt.Errorf("%w: execute template: %w", domain.ErrMalformedDocument, err)
	}
	return buf.String(), nil
}

func newTemplateData(data *domain.DocumentData) templateData {
	cards := make([]cardView, len(data.Cards))
	for i, c := range data.Cards {
		labels := make([]labelView, len(c.Labels))
		for j, l := range c.Labels {
			labels[j] = labelView{Name: l.Name, Style: template.CSS(l.Style)} //nolint:gosec // palette output
		}
		cards[i] = cardView{
			ID:       c.ID,
			Number:   c.Number,
			Title:    c.Title,
			Body:     template.HTML(c.BodyHTML), //nolint:gosec // sanitized upstream
			Labels:   labels,
			TeamName: c.TeamName,
		}
	}
	return templateData{TeamName: data.TeamName, Cards: cards}
}

// validate rejects malformed input before any compilation or rasterization work.
func validate(doc domain.Document, opts domain.RenderOptions) error {
	if strings.TrimSpace(doc.Template) == "" {
		return fmt.Errorf("%w: template is required", domain.ErrMalformedDocument)
	}
	if doc.Data == nil {
		return fmt.Errorf("%w: data is required", domain.ErrMalformedDocument)
	}
	switch doc.Mode {
	case "", domain.OutputFile:
		if doc.Path == "" {
			return fmt.Errorf("%w: path is required in file mode", domain.ErrMalformedDocument)
		}
	case domain.OutputBuffer, domain.OutputStream:
	default:
		return fmt.Errorf("%w: unknown output mode %q", domain.ErrMalformedDocument, doc.Mode)
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedDocument, err)
	}
	return nil
}

// writeFile writes r to path, creating parent directories.
// A partially written file is removed.
func writeFile(path string, r io.Reader) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("write output file: %w", err)
	}
	return n, nil
}
