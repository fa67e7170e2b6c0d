package domain

// RemoteIssue is an issue record as returned by the remote tracker.
// A failed fetch is represented by a nil *RemoteIssue, never a partial record.
// Fields are ordered to minimize memory padding.
type RemoteIssue struct {
	Title  string
	Body   string // Markdown
	Labels []Label
	ID     int64
	Number int
}

// Label is a tag attached to an issue.
type Label struct {
	Name        string
	Color       string // Hex code without '#', e.g. "3941AC"
	Description string
	ID          int64
}

// StyledLabel is a label ready for display.
type StyledLabel struct {
	Name  string
	Style string // CSS declarations for the label badge
}

// Card is the per-issue view model consumed by the report template.
// Fields are ordered to minimize memory padding.
type Card struct {
	Title    string
	BodyHTML string
	TeamName string
	Labels   []StyledLabel
	ID       int64
	Number   int
}
