package domain

import (
	"context"
	"io"
)

// IssueClient retrieves issues from the remote tracker.
type IssueClient interface {
	// GetIssue fetches one issue by owner, repository and number.
	GetIssue(ctx context.Context, owner string, ref IssueReference) (*RemoteIssue, error)
}

// MarkdownRenderer converts issue bodies to HTML fragments.
type MarkdownRenderer interface {
	// Render returns sanitized HTML for the markdown source.
	Render(markdown string) (string, error)
}

// Rasterizer turns a complete HTML document into PDF bytes.
type Rasterizer interface {
	// Rasterize returns a reader over the PDF. The caller must close it.
	Rasterize(ctx context.Context, html string, opts RenderOptions) (io.ReadCloser, error)
}

// DocumentGenerator compiles a template against card data and produces the artifact.
type DocumentGenerator interface {
	// Generate renders doc and delivers it according to doc.Mode.
	Generate(ctx context.Context, doc Document, opts RenderOptions) (*Artifact, error)
}

// ConfigLoader loads report configuration.
type ConfigLoader interface {
	// Load reads the report config file at path.
	Load(path string) (*ReportConfig, error)
}

// ConfigWriter writes starter configuration files.
type ConfigWriter interface {
	// Init writes the starter config to path. Returns ErrConfigExists unless force is set.
	Init(path string, force bool) error
}

// RemoteResolver discovers the repository owner from the local checkout.
type RemoteResolver interface {
	// Owner returns the owner of the origin remote, or "" if unknown.
	Owner() (string, error)
}
