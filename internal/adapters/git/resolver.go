package git

import (
	gogit "github.com/go-git/go-git/v5"
)

// Resolver implements ports.CommitResolver with go-git.
type Resolver struct{}

// NewResolver creates a git revision resolver.
func NewResolver() *Resolver { return &Resolver{} }

// HeadRevision returns the full hash of HEAD for the repository that
// contains workDir, searching parent directories the way the git CLI
// does. Callers treat any error as "no revision available".
func (r *Resolver) HeadRevision(workDir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(workDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", err
	}
	return head.Hash().String(), nil
}
