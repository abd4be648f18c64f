package git

import (
	"context"
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/melih/projectdock/internal/core/domain"
)

// Fetcher implements ports.ProjectFetcher with go-git. Remote project
// URIs are cloned into a temporary directory; paths that already exist
// locally are used in place.
type Fetcher struct{}

// NewFetcher creates a project fetcher.
func NewFetcher() *Fetcher { return &Fetcher{} }

// Fetch materializes the project at uri into a working directory and
// returns it with a cleanup releasing any temporary copy. An existing
// local directory is returned as-is, in which case requesting a version
// is an error. Anything else is treated as a git repository URL; the
// clone is shallow unless a version must be checked out.
func (f *Fetcher) Fetch(ctx context.Context, uri, version string) (string, func(), error) {
	if info, err := os.Stat(uri); err == nil && info.IsDir() {
		if version != "" {
			return "", nil, domain.NewExecutionError(domain.CodeFetch, "fetch-project",
				"a version may only be requested for git project URIs", nil)
		}
		return uri, func() {}, nil
	}

	tmpDir, err := os.MkdirTemp("", "project-fetch-")
	if err != nil {
		return "", nil, domain.NewExecutionError(domain.CodeIO, "fetch-project",
			"could not create a directory for the project clone", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	opts := &gogit.CloneOptions{URL: uri}
	if version == "" {
		opts.Depth = 1
	}
	repo, err := gogit.PlainCloneContext(ctx, tmpDir, false, opts)
	if err != nil {
		cleanup()
		return "", nil, domain.NewExecutionError(domain.CodeFetch, "fetch-project",
			fmt.Sprintf("unable to clone project repository %s", uri), err)
	}
	if version != "" {
		if err := checkout(repo, version); err != nil {
			cleanup()
			return "", nil, domain.NewExecutionError(domain.CodeFetch, "fetch-project",
				fmt.Sprintf("unable to check out version %q of %s; ensure it exists in the repository", version, uri), err)
		}
	}
	return tmpDir, cleanup, nil
}

// checkout moves the clone's working tree to the commit that version
// resolves to. Branch names, tags and commit hashes are all accepted.
func checkout(repo *gogit.Repository, version string) error {
	hash, err := repo.ResolveRevision(plumbing.Revision(version))
	if err != nil {
		return err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return err
	}
	return worktree.Checkout(&gogit.CheckoutOptions{Hash: *hash})
}
