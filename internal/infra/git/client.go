// Package git reads repository metadata used to fill report defaults.
package git

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/runoshun/issue-butler/internal/domain"
)

// DefaultRemote is the remote consulted for the repository owner.
const DefaultRemote = "origin"

// Ensure Client implements domain.RemoteResolver.
var _ domain.RemoteResolver = (*Client)(nil)

// Client resolves the repository owner from a git remote URL.
type Client struct {
	dir    string // Directory inside the working tree
	remote string // Remote name, usually "origin"
}

// NewClient creates a client for the repository containing dir.
// The repository is opened lazily so a missing checkout is only reported when the owner is needed.
func NewClient(dir string) *Client {
	return &Client{dir: dir, remote: DefaultRemote}
}

// Owner returns the owner segment of the remote URL.
func (c *Client) Owner() (string, error) {
	repo, err := gogit.PlainOpenWithOptions(c.dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("%w: open git repository: %w", domain.ErrOwnerUnknown, err)
	}

	remote, err := repo.Remote(c.remote)
	if err != nil {
		return "", fmt.Errorf("%w: remote %q: %w", domain.ErrOwnerUnknown, c.remote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: remote %q has no url", domain.ErrOwnerUnknown, c.remote)
	}

	owner, err := ParseOwner(urls[0])
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrOwnerUnknown, err)
	}
	return owner, nil
}

// ParseOwner extracts the owner from a remote URL.
// Supported forms:
//
//	https://github.com/owner/repo.git
//	ssh://git@github.com/owner/repo.git
//	git@github.com:owner/repo.git
func ParseOwner(remoteURL string) (string, error) {
	raw := strings.TrimSpace(remoteURL)
	if raw == "" {
		return "", errors.New("empty remote url")
	}

	var path string
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("parse remote url: %w", err)
		}
		path = u.Path
	} else {
		// scp-like syntax: [user@]host:path
		_, after, ok := strings.Cut(raw, ":")
		if !ok {
			return "", fmt.Errorf("unrecognized remote url %q", raw)
		}
		path = after
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" {
		return "", fmt.Errorf("remote url %q has no owner", raw)
	}
	return parts[0], nil
}
