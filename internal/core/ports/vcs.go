package ports

import "context"

// CommitResolver reports the current revision of a project's working tree.
type CommitResolver interface {
	// HeadRevision returns the full hash of HEAD for the repository
	// containing workDir. It returns an error when workDir is not inside
	// a repository or the repository has no commits yet.
	HeadRevision(workDir string) (string, error)
}

// ProjectFetcher materializes a project reference into a local working
// directory.
type ProjectFetcher interface {
	// Fetch returns a directory holding the project at uri, optionally at
	// the requested version, together with a cleanup releasing it. The
	// cleanup is non-nil whenever the error is nil.
	Fetch(ctx context.Context, uri, version string) (workDir string, cleanup func(), err error)
}
