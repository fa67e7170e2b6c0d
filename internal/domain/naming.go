package domain

import (
	"path/filepath"
	"strings"
)

// ReportPath returns the PDF path for a team.
// Format: <dir>/<team>.pdf with the team lower-cased.
func ReportPath(dir, team string) string {
	return filepath.Join(dir, strings.ToLower(strings.TrimSpace(team))+".pdf")
}

// TeamDisplayName returns the team label shown on every card.
// Format: <TEAM> Team
func TeamDisplayName(team string) string {
	return strings.ToUpper(strings.TrimSpace(team)) + " Team"
}
