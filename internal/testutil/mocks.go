// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/issue-butler/internal/domain"
)

// NewTestLogger returns a logger writing text records to buf.
func NewTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockIssueClient is a test double for domain.IssueClient.
// Fields are ordered to minimize memory padding.
type MockIssueClient struct {
	Issues map[domain.IssueReference]*domain.RemoteIssue
	Errs   map[domain.IssueReference]error
	Calls  []domain.IssueReference
	Owners []string
}

// NewMockIssueClient creates a new MockIssueClient with initialized maps.
func NewMockIssueClient() *MockIssueClient {
	return &MockIssueClient{
		Issues: make(map[domain.IssueReference]*domain.RemoteIssue),
		Errs:   make(map[domain.IssueReference]error),
	}
}

// GetIssue returns the configured issue or error for ref.
func (m *MockIssueClient) GetIssue(ctx context.Context, owner string, ref domain.IssueReference) (*domain.RemoteIssue, error) {
	m.Calls = append(m.Calls, ref)
	m.Owners = append(m.Owners, owner)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.Errs[ref]; ok {
		return nil, err
	}
	return m.Issues[ref], nil
}

// MockMarkdownRenderer is a test double for domain.MarkdownRenderer.
type MockMarkdownRenderer struct {
	Errs map[string]error // Keyed by markdown source
}

// Render wraps the source in a paragraph, or fails for configured sources.
func (m *MockMarkdownRenderer) Render(markdown string) (string, error) {
	if err, ok := m.Errs[markdown]; ok {
		return "", err
	}
	if markdown == "" {
		return "", nil
	}
	return "<p>" + markdown + "</p>", nil
}

// MockRasterizer is a test double for domain.Rasterizer.
// It echoes a fixed PDF header followed by the HTML it was given.
type MockRasterizer struct {
	Err     error
	HTML    []string
	Options []domain.RenderOptions
}

// Rasterize records the call and returns a deterministic pseudo-PDF.
func (m *MockRasterizer) Rasterize(_ context.Context, html string, opts domain.RenderOptions) (io.ReadCloser, error) {
	m.HTML = append(m.HTML, html)
	m.Options = append(m.Options, opts)
	if m.Err != nil {
		return nil, m.Err
	}
	return io.NopCloser(bytes.NewReader(append([]byte("%PDF-1.4\n"), html...))), nil
}

// MockDocumentGenerator is a test double for domain.DocumentGenerator.
// Fields are ordered to minimize memory padding.
type MockDocumentGenerator struct {
	Err       error
	Documents []domain.Document
	Options   []domain.RenderOptions
}

// Generate records the call and returns an artifact for the requested mode.
func (m *MockDocumentGenerator) Generate(_ context.Context, doc domain.Document, opts domain.RenderOptions) (*domain.Artifact, error) {
	m.Documents = append(m.Documents, doc)
	m.Options = append(m.Options, opts)
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.Artifact{Mode: doc.Mode, Path: doc.Path}, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.ReportConfig
	Err    error
	Paths  []string
}

// Load returns a copy of the configured config.
func (m *MockConfigLoader) Load(path string) (*domain.ReportConfig, error) {
	m.Paths = append(m.Paths, path)
	if m.Err != nil {
		return nil, m.Err
	}
	cfg := *m.Config
	return &cfg, nil
}

// MockConfigWriter is a test double for domain.ConfigWriter.
type MockConfigWriter struct {
	Err   error
	Paths []string
	Force []bool
}

// Init records the call.
func (m *MockConfigWriter) Init(path string, force bool) error {
	m.Paths = append(m.Paths, path)
	m.Force = append(m.Force, force)
	return m.Err
}

// MockRemoteResolver is a test double for domain.RemoteResolver.
type MockRemoteResolver struct {
	Err       error
	OwnerName string
	Calls     int
}

// Owner returns the configured owner.
func (m *MockRemoteResolver) Owner() (string, error) {
	m.Calls++
	return m.OwnerName, m.Err
}

// WriteFile writes content to name under dir and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
