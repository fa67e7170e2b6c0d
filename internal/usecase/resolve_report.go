// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/issue-butler/internal/domain"
)

// ResolveReportInput contains the parameters for resolving a report configuration.
// Non-empty override fields take precedence over the config file.
type ResolveReportInput struct {
	ConfigPath   string // Report config file (required)
	Team         string
	Owner        string
	OutputDir    string
	TemplatePath string
}

// ResolveReportOutput contains the resolved configuration.
type ResolveReportOutput struct {
	Config      *domain.ReportConfig
	OwnerSource string // "settings", "config" or "remote"
}

// ResolveReport loads the report config and fills run-level settings.
type ResolveReport struct {
	loader domain.ConfigLoader
	remote domain.RemoteResolver
	logger *slog.Logger
}

// NewResolveReport creates a new ResolveReport use case.
// remote may be nil when no git checkout is available.
func NewResolveReport(loader domain.ConfigLoader, remote domain.RemoteResolver, logger *slog.Logger) *ResolveReport {
	return &ResolveReport{
		loader: loader,
		remote: remote,
		logger: logger,
	}
}

// Execute loads and validates the configuration.
// Precedence: overrides > config file > origin remote (owner only).
func (uc *ResolveReport) Execute(_ context.Context, in ResolveReportInput) (*ResolveReportOutput, error) {
	cfg, err := uc.loader.Load(in.ConfigPath)
	if err != nil {
		return nil, err
	}

	if in.Team != "" {
		cfg.Team = in.Team
	}
	if in.OutputDir != "" {
		cfg.OutputDir = in.OutputDir
	}
	if in.TemplatePath != "" {
		cfg.TemplatePath = in.TemplatePath
	}

	source := "config"
	switch {
	case in.Owner != "":
		cfg.Owner = in.Owner
		source = "settings"
	case cfg.Owner == "" && uc.remote != nil:
		owner, err := uc.remote.Owner()
		if err != nil {
			// Missing remote is not fatal here; Validate reports the unknown owner.
			uc.logger.Debug("resolve owner from remote", "error", err)
		}
		if owner != "" {
			cfg.Owner = owner
			source = "remote"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ResolveReportOutput{
		Config:      cfg,
		OwnerSource: source,
	}, nil
}
