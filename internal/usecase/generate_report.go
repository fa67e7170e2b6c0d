package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/runoshun/issue-butler/internal/domain"
)

// GenerateReportInput contains the parameters for generating a report.
// Fields are ordered to minimize memory padding.
type GenerateReportInput struct {
	Config     *domain.ReportConfig // Resolved configuration (required)
	Template   string               // Template source; overrides Config.TemplatePath when set
	OutputPath string               // Destination for file mode; defaults to Config.OutputPath()
	Mode       domain.OutputMode    // Defaults to file
}

// GenerateReportOutput contains the result of generating a report.
// Fields are ordered to minimize memory padding.
type GenerateReportOutput struct {
	Artifact *domain.Artifact
	RunID    string
	Cards    []domain.Card
	Failures []domain.Failure // References dropped or degraded along the way
}

// GenerateReport fetches the configured issues and renders them into one document.
type GenerateReport struct {
	fetcher   *IssueFetcher
	assembler *CardAssembler
	documents domain.DocumentGenerator
	logger    *slog.Logger
}

// NewGenerateReport creates a new GenerateReport use case.
func NewGenerateReport(fetcher *IssueFetcher, assembler *CardAssembler, documents domain.DocumentGenerator, logger *slog.Logger) *GenerateReport {
	return &GenerateReport{
		fetcher:   fetcher,
		assembler: assembler,
		documents: documents,
		logger:    logger,
	}
}

// Execute runs the pipeline. Fetch and body failures are absorbed into the output;
// an empty card set or a document failure aborts the run.
func (uc *GenerateReport) Execute(ctx context.Context, in GenerateReportInput) (*GenerateReportOutput, error) {
	cfg := in.Config
	if cfg == nil {
		return nil, fmt.Errorf("%w: no report configuration", domain.ErrConfiguration)
	}

	runID := uuid.NewString()
	log := uc.logger.With("run", runID)
	log.Debug("run phase", "phase", domain.PhaseIdle)

	if len(cfg.References) == 0 {
		return nil, fmt.Errorf("%w: couldn't find issues in configuration", domain.ErrEmptyResult)
	}

	tmpl, err := uc.template(in)
	if err != nil {
		return nil, err
	}

	log.Debug("run phase", "phase", domain.PhaseFetching, "references", len(cfg.References))
	results := make([]FetchResult, 0, len(cfg.References))
	for _, ref := range cfg.References {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, uc.fetcher.Fetch(ctx, cfg.Owner, ref))
	}

	log.Debug("run phase", "phase", domain.PhaseAssembling)
	cards, failures := uc.assembler.Assemble(cfg.Team, results)
	if len(cards) == 0 {
		log.Debug("run phase", "phase", domain.PhaseFailed)
		return nil, fmt.Errorf("%w: no issues found (%d of %d references failed)", domain.ErrEmptyResult, len(failures), len(cfg.References))
	}

	mode := in.Mode
	if mode == "" {
		mode = domain.OutputFile
	}
	path := in.OutputPath
	if path == "" && mode == domain.OutputFile {
		path = cfg.OutputPath()
	}

	log.Debug("run phase", "phase", domain.PhaseRendering, "cards", len(cards), "mode", mode)
	artifact, err := uc.documents.Generate(ctx, domain.Document{
		Template: tmpl,
		Data: &domain.DocumentData{
			TeamName: domain.TeamDisplayName(cfg.Team),
			Cards:    cards,
		},
		Path: path,
		Mode: mode,
	}, cfg.Render)
	if err != nil {
		log.Debug("run phase", "phase", domain.PhaseFailed)
		return nil, fmt.Errorf("generate document: %w", err)
	}

	log.Info("report generated", "cards", len(cards), "dropped", len(failures), "mode", mode, "path", artifact.Path)
	log.Debug("run phase", "phase", domain.PhaseDone)

	return &GenerateReportOutput{
		Artifact: artifact,
		RunID:    runID,
		Cards:    cards,
		Failures: failures,
	}, nil
}

// template returns the template source for the run.
func (uc *GenerateReport) template(in GenerateReportInput) (string, error) {
	if strings.TrimSpace(in.Template) != "" {
		return in.Template, nil
	}
	if in.Config.TemplatePath == "" {
		return domain.DefaultReportTemplate(), nil
	}
	content, err := os.ReadFile(in.Config.TemplatePath)
	if err != nil {
		return "", fmt.Errorf("%w: read template: %w", domain.ErrConfiguration, err)
	}
	return string(content), nil
}
