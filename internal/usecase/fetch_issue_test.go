package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/runoshun/issue-butler/internal/domain"
	"github.com/runoshun/issue-butler/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowClient blocks until the request context is done.
type slowClient struct{}

func (slowClient) GetIssue(ctx context.Context, _ string, _ domain.IssueReference) (*domain.RemoteIssue, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestIssueFetcher_Fetch_Success(t *testing.T) {
	// Setup
	client := testutil.NewMockIssueClient()
	ref := domain.IssueReference{ID: 5, Repo: "api"}
	client.Issues[ref] = &domain.RemoteIssue{ID: 55, Number: 5, Title: "five"}
	fetcher := NewIssueFetcher(client, testutil.DiscardLogger(), time.Second)

	// Execute
	res := fetcher.Fetch(context.Background(), "acme", ref)

	// Assert
	require.NoError(t, res.Err)
	require.NotNil(t, res.Issue)
	assert.Equal(t, "five", res.Issue.Title)
	assert.Equal(t, ref, res.Reference)
}

func TestIssueFetcher_Fetch_ErrorIsAbsorbed(t *testing.T) {
	// Setup
	client := testutil.NewMockIssueClient()
	ref := domain.IssueReference{ID: 5, Repo: "api"}
	cause := errors.New("network down")
	client.Errs[ref] = cause
	var logs bytes.Buffer
	fetcher := NewIssueFetcher(client, testutil.NewTestLogger(&logs), time.Second)

	// Execute
	res := fetcher.Fetch(context.Background(), "acme", ref)

	// Assert
	assert.Nil(t, res.Issue)
	assert.ErrorIs(t, res.Err, cause)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "network down")
}

func TestIssueFetcher_Fetch_InvalidReference(t *testing.T) {
	// Setup
	client := testutil.NewMockIssueClient()
	fetcher := NewIssueFetcher(client, testutil.DiscardLogger(), time.Second)

	// Execute
	res := fetcher.Fetch(context.Background(), "acme", domain.IssueReference{ID: 3})

	// Assert
	assert.ErrorIs(t, res.Err, domain.ErrInvalidReference)
	assert.Empty(t, client.Calls)
}

func TestIssueFetcher_Fetch_Timeout(t *testing.T) {
	// Setup
	fetcher := NewIssueFetcher(slowClient{}, testutil.DiscardLogger(), 10*time.Millisecond)

	// Execute
	res := fetcher.Fetch(context.Background(), "acme", domain.IssueReference{ID: 1, Repo: "api"})

	// Assert: the timeout is just another fetch failure
	assert.Nil(t, res.Issue)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestNewIssueFetcher_DefaultTimeout(t *testing.T) {
	fetcher := NewIssueFetcher(testutil.NewMockIssueClient(), testutil.DiscardLogger(), 0)
	assert.Equal(t, DefaultFetchTimeout, fetcher.timeout)
}
