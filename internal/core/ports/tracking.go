package ports

import "context"

// RunTagger records metadata tags on a tracking run.
type RunTagger interface {
	SetTag(ctx context.Context, runID, key, value string) error
}

// CredentialProvider resolves platform credentials a container needs to
// talk to a tracking backend.
type CredentialProvider interface {
	// EnvVars returns credential environment variables for the given
	// tracking URI. URIs that need no credentials yield an empty map.
	EnvVars(trackingURI string) (map[string]string, error)
}
