package build

import "github.com/melih/projectdock/internal/config"

// ImageTag derives the reference for a project image. The repository URI
// is used as the prefix and falls back to config.DefaultRepositoryPrefix
// when empty. A known source revision contributes its first seven
// characters as the tag so images stay traceable; without one the prefix
// is returned bare.
func ImageTag(repositoryURI, revision string) string {
	if repositoryURI == "" {
		repositoryURI = config.DefaultRepositoryPrefix
	}
	if revision == "" {
		return repositoryURI
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	return repositoryURI + ":" + revision
}
