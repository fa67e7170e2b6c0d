package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportPath(t *testing.T) {
	assert.Equal(t, filepath.Join("files", "platform.pdf"), ReportPath("files", "Platform"))
	assert.Equal(t, filepath.Join("/tmp/out", "core.pdf"), ReportPath("/tmp/out", " CORE "))
}

func TestTeamDisplayName(t *testing.T) {
	tests := []struct {
		team     string
		expected string
	}{
		{"platform", "PLATFORM Team"},
		{"Web", "WEB Team"},
		{" data ", "DATA Team"},
	}

	for _, tt := range tests {
		t.Run(tt.team, func(t *testing.T) {
			assert.Equal(t, tt.expected, TeamDisplayName(tt.team))
		})
	}
}
