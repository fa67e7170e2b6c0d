// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/runoshun/issue-butler/internal/domain"
	"github.com/runoshun/issue-butler/internal/infra/config"
	"github.com/runoshun/issue-butler/internal/infra/document"
	"github.com/runoshun/issue-butler/internal/infra/git"
	"github.com/runoshun/issue-butler/internal/infra/github"
	"github.com/runoshun/issue-butler/internal/infra/logging"
	"github.com/runoshun/issue-butler/internal/infra/markdown"
	"github.com/runoshun/issue-butler/internal/infra/pdf"
	"github.com/runoshun/issue-butler/internal/usecase"
)

// httpTimeout bounds a single GitHub API round trip on top of the per-fetch context.
const httpTimeout = 60 * time.Second

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Issues       domain.IssueClient
	Markdown     domain.MarkdownRenderer
	Documents    domain.DocumentGenerator
	ConfigLoader domain.ConfigLoader
	ConfigWriter domain.ConfigWriter
	Remote       domain.RemoteResolver

	// Pointer fields
	Logger *slog.Logger
	sink   *logging.Sink

	// Configuration
	Settings config.Settings
}

// New creates a new Container from resolved process settings.
func New(settings config.Settings) (*Container, error) {
	sink, err := logging.NewSink(os.Stderr, settings.LogFile)
	if err != nil {
		return nil, fmt.Errorf("open log output: %w", err)
	}
	logger := logging.New(sink, logging.ParseLevel(settings.LogLevel), settings.LogFormat)

	wd, err := os.Getwd()
	if err != nil {
		_ = sink.Close()
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	issues := github.NewClient(github.Config{
		BaseURL: settings.GitHubURL,
		Token:   settings.Token,
	}, &http.Client{Timeout: httpTimeout})

	rasterizer := pdf.NewRasterizer(pdf.Options{
		Bin:       settings.ChromeBin,
		NoSandbox: settings.NoSandbox,
	}, logger)

	return &Container{
		Issues:       issues,
		Markdown:     markdown.New(),
		Documents:    document.NewRenderer(rasterizer),
		ConfigLoader: config.NewLoader(),
		ConfigWriter: config.NewManager(),
		Remote:       git.NewClient(wd),
		Logger:       logger,
		sink:         sink,
		Settings:     settings,
	}, nil
}

// Deps lists the ports injected by NewWithDeps.
type Deps struct {
	Issues       domain.IssueClient
	Markdown     domain.MarkdownRenderer
	Documents    domain.DocumentGenerator
	ConfigLoader domain.ConfigLoader
	ConfigWriter domain.ConfigWriter
	Remote       domain.RemoteResolver
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(settings config.Settings, deps Deps, logger *slog.Logger) *Container {
	return &Container{
		Issues:       deps.Issues,
		Markdown:     deps.Markdown,
		Documents:    deps.Documents,
		ConfigLoader: deps.ConfigLoader,
		ConfigWriter: deps.ConfigWriter,
		Remote:       deps.Remote,
		Logger:       logger,
		Settings:     settings,
	}
}

// Close releases the log file, if one was opened.
func (c *Container) Close() error {
	if c.sink == nil {
		return nil
	}
	return c.sink.Close()
}

// UseCase factory methods

// ResolveReportUseCase returns a new ResolveReport use case.
func (c *Container) ResolveReportUseCase() *usecase.ResolveReport {
	return usecase.NewResolveReport(c.ConfigLoader, c.Remote, c.Logger)
}

// GenerateReportUseCase returns a new GenerateReport use case.
func (c *Container) GenerateReportUseCase() *usecase.GenerateReport {
	fetcher := usecase.NewIssueFetcher(c.Issues, c.Logger, c.Settings.FetchTimeout)
	assembler := usecase.NewCardAssembler(c.Markdown, c.Logger)
	return usecase.NewGenerateReport(fetcher, assembler, c.Documents, c.Logger)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigWriter)
}
