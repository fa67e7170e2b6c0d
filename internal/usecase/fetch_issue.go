package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/runoshun/issue-butler/internal/domain"
)

// DefaultFetchTimeout bounds a single issue request.
const DefaultFetchTimeout = 30 * time.Second

// FetchResult is the outcome of fetching one reference.
// Issue is nil when Err is set.
type FetchResult struct {
	Err       error
	Issue     *domain.RemoteIssue
	Reference domain.IssueReference
}

// IssueFetcher resolves references through an IssueClient.
// Failures are logged and returned in the result, never as an error.
type IssueFetcher struct {
	client  domain.IssueClient
	logger  *slog.Logger
	timeout time.Duration
}

// NewIssueFetcher creates a new IssueFetcher.
// A non-positive timeout uses DefaultFetchTimeout.
func NewIssueFetcher(client domain.IssueClient, logger *slog.Logger, timeout time.Duration) *IssueFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &IssueFetcher{
		client:  client,
		logger:  logger,
		timeout: timeout,
	}
}

// Fetch retrieves the issue for ref.
func (f *IssueFetcher) Fetch(ctx context.Context, owner string, ref domain.IssueReference) FetchResult {
	if err := ref.Validate(); err != nil {
		return f.fail(ref, err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	issue, err := f.client.GetIssue(ctx, owner, ref)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			f.logger.Debug("issue request timed out", "ref", ref.String(), "timeout", f.timeout)
		}
		return f.fail(ref, err)
	}
	if issue == nil {
		return f.fail(ref, domain.ErrEmptyIssue)
	}
	return FetchResult{Reference: ref, Issue: issue}
}

func (f *IssueFetcher) fail(ref domain.IssueReference, err error) FetchResult {
	f.logger.Warn("error finding issue", "ref", ref.String(), "error", err)
	return FetchResult{Reference: ref, Err: err}
}
