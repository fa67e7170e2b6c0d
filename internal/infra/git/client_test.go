package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/runoshun/issue-butler/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T, urls ...string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	if len(urls) > 0 {
		_, err = repo.CreateRemote(&config.RemoteConfig{Name: DefaultRemote, URLs: urls})
		require.NoError(t, err)
	}
	return dir
}

func TestClient_Owner(t *testing.T) {
	t.Run("reads owner from origin", func(t *testing.T) {
		dir := setupTestRepo(t, "https://github.com/acme/api.git")

		owner, err := NewClient(dir).Owner()

		require.NoError(t, err)
		assert.Equal(t, "acme", owner)
	})

	t.Run("detects repository from a subdirectory", func(t *testing.T) {
		dir := setupTestRepo(t, "git@github.com:acme/api.git")
		sub := filepath.Join(dir, "docs", "reports")
		require.NoError(t, os.MkdirAll(sub, 0o750))

		owner, err := NewClient(sub).Owner()

		require.NoError(t, err)
		assert.Equal(t, "acme", owner)
	})

	t.Run("no origin remote", func(t *testing.T) {
		dir := setupTestRepo(t)

		_, err := NewClient(dir).Owner()

		assert.ErrorIs(t, err, domain.ErrOwnerUnknown)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := NewClient(t.TempDir()).Owner()

		assert.ErrorIs(t, err, domain.ErrOwnerUnknown)
	})
}

func TestParseOwner(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "https://github.com/acme/api.git", want: "acme"},
		{url: "https://github.com/acme/api", want: "acme"},
		{url: "https://token@ghe.example.com/platform/web.git", want: "platform"},
		{url: "ssh://git@github.com/acme/api.git", want: "acme"},
		{url: "ssh://git@github.com:22/acme/api.git", want: "acme"},
		{url: "git@github.com:acme/api.git", want: "acme"},
		{url: "", wantErr: true},
		{url: "https://github.com/acme", wantErr: true},
		{url: "not-a-url", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ParseOwner(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
