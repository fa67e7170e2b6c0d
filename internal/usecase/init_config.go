package usecase

import (
	"context"

	"github.com/runoshun/issue-butler/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Path  string // Destination of the starter config
	Force bool   // Overwrite an existing file
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig writes a starter report configuration.
type InitConfig struct {
	writer domain.ConfigWriter
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(writer domain.ConfigWriter) *InitConfig {
	return &InitConfig{
		writer: writer,
	}
}

// Execute creates the configuration file from the embedded template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	path := in.Path
	if path == "" {
		path = domain.DefaultConfigFile
	}
	if err := uc.writer.Init(path, in.Force); err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
