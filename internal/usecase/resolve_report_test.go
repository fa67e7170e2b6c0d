package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/issue-butler/internal/domain"
	"github.com/runoshun/issue-butler/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoader(cfg domain.ReportConfig) *testutil.MockConfigLoader {
	return &testutil.MockConfigLoader{Config: &cfg}
}

func TestResolveReport_Execute_FromConfig(t *testing.T) {
	// Setup
	loader := newLoader(domain.ReportConfig{
		Team:       "platform",
		Owner:      "acme",
		References: []domain.IssueReference{{ID: 1, Repo: "api"}},
	})
	remote := &testutil.MockRemoteResolver{OwnerName: "from-remote"}
	uc := NewResolveReport(loader, remote, testutil.DiscardLogger())

	// Execute
	out, err := uc.Execute(context.Background(), ResolveReportInput{ConfigPath: "butler.toml"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "acme", out.Config.Owner)
	assert.Equal(t, "config", out.OwnerSource)
	assert.Equal(t, []string{"butler.toml"}, loader.Paths)
	assert.Zero(t, remote.Calls)
}

func TestResolveReport_Execute_OverridesWin(t *testing.T) {
	// Setup
	loader := newLoader(domain.ReportConfig{Team: "platform", Owner: "acme", OutputDir: "files"})
	uc := NewResolveReport(loader, nil, testutil.DiscardLogger())

	// Execute
	out, err := uc.Execute(context.Background(), ResolveReportInput{
		ConfigPath:   "butler.toml",
		Team:         "web",
		Owner:        "other",
		OutputDir:    "out",
		TemplatePath: "t.html",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "web", out.Config.Team)
	assert.Equal(t, "other", out.Config.Owner)
	assert.Equal(t, "out", out.Config.OutputDir)
	assert.Equal(t, "t.html", out.Config.TemplatePath)
	assert.Equal(t, "settings", out.OwnerSource)
}

func TestResolveReport_Execute_OwnerFromRemote(t *testing.T) {
	// Setup
	loader := newLoader(domain.ReportConfig{Team: "platform"})
	remote := &testutil.MockRemoteResolver{OwnerName: "octo"}
	uc := NewResolveReport(loader, remote, testutil.DiscardLogger())

	// Execute
	out, err := uc.Execute(context.Background(), ResolveReportInput{ConfigPath: "butler.toml"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "octo", out.Config.Owner)
	assert.Equal(t, "remote", out.OwnerSource)
}

func TestResolveReport_Execute_OwnerUnknown(t *testing.T) {
	// Setup
	loader := newLoader(domain.ReportConfig{Team: "platform"})
	remote := &testutil.MockRemoteResolver{Err: errors.New("no origin")}
	uc := NewResolveReport(loader, remote, testutil.DiscardLogger())

	// Execute
	_, err := uc.Execute(context.Background(), ResolveReportInput{ConfigPath: "butler.toml"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.ErrorIs(t, err, domain.ErrOwnerUnknown)
}

func TestResolveReport_Execute_MissingTeam(t *testing.T) {
	loader := newLoader(domain.ReportConfig{Owner: "acme"})
	uc := NewResolveReport(loader, nil, testutil.DiscardLogger())

	_, err := uc.Execute(context.Background(), ResolveReportInput{ConfigPath: "butler.toml"})

	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestResolveReport_Execute_LoadError(t *testing.T) {
	loader := &testutil.MockConfigLoader{Err: domain.ErrConfiguration}
	uc := NewResolveReport(loader, nil, testutil.DiscardLogger())

	_, err := uc.Execute(context.Background(), ResolveReportInput{ConfigPath: "butler.toml"})

	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
