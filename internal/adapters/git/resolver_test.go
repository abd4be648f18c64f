package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commitRepo initializes a repository in dir with one commit and returns
// its hash.
func commitRepo(t *testing.T, dir string) string {
	t.Helper()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "MLproject"), []byte("name: demo\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("MLproject")
	require.NoError(t, err)
	hash, err := wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "dev", Email: "dev@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return hash.String()
}

// TestHeadRevision resolves the committed hash from the repository root.
func TestHeadRevision(t *testing.T) {
	dir := t.TempDir()
	want := commitRepo(t, dir)

	rev, err := NewResolver().HeadRevision(dir)
	require.NoError(t, err)
	assert.Equal(t, want, rev)
	assert.Len(t, rev, 40)
}

// TestHeadRevisionFromSubdirectory verifies the search walks up to the
// repository root like the git CLI.
func TestHeadRevisionFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	want := commitRepo(t, dir)
	sub := filepath.Join(dir, "src", "steps")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	rev, err := NewResolver().HeadRevision(sub)
	require.NoError(t, err)
	assert.Equal(t, want, rev)
}

// TestHeadRevisionOutsideRepository verifies plain directories yield an
// error the caller downgrades to "no revision".
func TestHeadRevisionOutsideRepository(t *testing.T) {
	_, err := NewResolver().HeadRevision(t.TempDir())
	require.Error(t, err)
}

// TestHeadRevisionEmptyRepository verifies a repository without commits
// yields an error rather than a bogus hash.
func TestHeadRevisionEmptyRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = NewResolver().HeadRevision(dir)
	require.Error(t, err)
}
