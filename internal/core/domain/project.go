package domain

// Project is the metadata required to containerize a working directory.
type Project struct {
	// Name identifies the project; required so image tags stay meaningful.
	Name string `json:"name"`
	// Image is the base image the generated Dockerfile builds FROM.
	Image string `json:"image"`
}

// BuildRequest describes one containerization of a project working directory.
type BuildRequest struct {
	// WorkDir is the source tree packaged into the build context. Mutually
	// exclusive with ProjectURI.
	WorkDir string
	// ProjectURI references a project to fetch into a temporary working
	// directory, typically a git repository URL.
	ProjectURI string
	// ProjectVersion is the revision of ProjectURI to fetch; HEAD of the
	// default branch when empty.
	ProjectVersion string
	// Project supplies the name and base image.
	Project Project
	// RepositoryURI prefixes the derived image tag; a default is substituted
	// when empty.
	RepositoryURI string
	// RunID is the tracking run to record image metadata on. Tagging is
	// skipped when empty.
	RunID string
}

// BuildResult reports a completed image build.
type BuildResult struct {
	ImageURI string `json:"image_uri"`
	ImageID  string `json:"image_id"`
	// Warnings carries soft failures (for example a build-context archive
	// that could not be deleted) that did not invalidate the build.
	Warnings []string `json:"warnings,omitempty"`
}
