package domain

import (
	"fmt"
	"strings"
)

// IssueReference identifies one remote issue to fetch.
// Fields are ordered to minimize memory padding.
type IssueReference struct {
	Repo string // Repository name under the run's owner
	ID   int    // Issue number
}

// String returns the reference as repo#id.
func (r IssueReference) String() string {
	return fmt.Sprintf("%s#%d", r.Repo, r.ID)
}

// Validate reports whether the reference can be fetched.
func (r IssueReference) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: %s: id must be a positive integer", ErrInvalidReference, r)
	}
	if strings.TrimSpace(r.Repo) == "" {
		return fmt.Errorf("%w: %s: repo is required", ErrInvalidReference, r)
	}
	return nil
}

// ReportConfig is the resolved configuration for one report run.
// Fields are ordered to minimize memory padding.
type ReportConfig struct {
	Team         string
	Owner        string
	OutputDir    string
	TemplatePath string // Custom HTML template; empty means the embedded default
	References   []IssueReference
	Warnings     []string
	Render       RenderOptions
}

// Default values for a report run.
const (
	DefaultOutputDir  = "files"
	DefaultConfigFile = "butler.toml"
)

// Validate checks the run-level fields required before fetching.
func (c *ReportConfig) Validate() error {
	if strings.TrimSpace(c.Team) == "" {
		return fmt.Errorf("%w: team name is required", ErrConfiguration)
	}
	if strings.TrimSpace(c.Owner) == "" {
		return fmt.Errorf("%w: %w", ErrConfiguration, ErrOwnerUnknown)
	}
	return nil
}

// OutputPath returns the default PDF path for the run.
func (c *ReportConfig) OutputPath() string {
	dir := c.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}
	return ReportPath(dir, c.Team)
}
