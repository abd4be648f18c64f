package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/melih/projectdock/internal/config"
	"github.com/melih/projectdock/internal/core/domain"
	"github.com/melih/projectdock/internal/core/ports"
)

// Service implements ports.BuildService. It derives the image tag,
// assembles the build context, drives the engine and records the built
// image on the tracking run.
type Service struct {
	engine  ports.ImageBuilder
	vcs     ports.CommitResolver
	fetcher ports.ProjectFetcher
	tagger  ports.RunTagger
	creds   ports.CredentialProvider
	logger  *slog.Logger
}

// Option configures optional collaborators on a Service.
type Option func(*Service)

// WithCommitResolver supplies the version-control query used to derive
// revision-suffixed tags. Without one, tags carry no revision segment.
func WithCommitResolver(vcs ports.CommitResolver) Option {
	return func(s *Service) { s.vcs = vcs }
}

// WithProjectFetcher supplies the fetcher that materializes remote
// project URIs. Without one, only local working directories are accepted.
func WithProjectFetcher(fetcher ports.ProjectFetcher) Option {
	return func(s *Service) { s.fetcher = fetcher }
}

// WithRunTagger supplies the tracking client that records image metadata
// on runs. Without one, tagging is skipped.
func WithRunTagger(tagger ports.RunTagger) Option {
	return func(s *Service) { s.tagger = tagger }
}

// WithCredentialProvider supplies the platform credential source merged
// into container run configurations.
func WithCredentialProvider(creds ports.CredentialProvider) Option {
	return func(s *Service) { s.creds = creds }
}

// WithLogger overrides the default slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService creates a build service on top of the given image engine.
func NewService(engine ports.ImageBuilder, opts ...Option) *Service {
	s := &Service{engine: engine, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckEngine verifies a usable container engine before any build work.
func (s *Service) CheckEngine(ctx context.Context) error {
	return s.engine.Ping(ctx)
}

// ValidateProject checks the project metadata required before any build
// attempt.
func ValidateProject(p domain.Project) error {
	if p.Name == "" {
		return domain.NewExecutionError(domain.CodeInvalidProject, "validate",
			"project name must be specified for image tagging", nil)
	}
	if p.Image == "" {
		return domain.NewExecutionError(domain.CodeInvalidProject, "validate",
			"project must specify the base image to build from via the 'image' field", nil)
	}
	return nil
}

// BuildImage containerizes the requested project on top of its base
// image. The context archive is deleted after the build on a best-effort
// basis; a failed deletion is logged and reported as a warning on the
// result, never as an error.
func (s *Service) BuildImage(ctx context.Context, req domain.BuildRequest) (*domain.BuildResult, error) {
	if err := ValidateProject(req.Project); err != nil {
		return nil, err
	}
	workDir, cleanup, err := s.resolveWorkDir(ctx, req)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	revision := s.headRevision(workDir)
	imageURI := ImageTag(req.RepositoryURI, revision)

	ctxPath, err := CreateBuildContext(workDir, Dockerfile(req.Project.Image, revision))
	if err != nil {
		return nil, err
	}
	result := &domain.BuildResult{ImageURI: imageURI}
	defer func() {
		if rmErr := os.Remove(ctxPath); rmErr != nil {
			s.logger.Warn("build context archive was not deleted", "path", ctxPath, "error", rmErr)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("build context archive %s was not deleted: %v", ctxPath, rmErr))
		}
	}()

	f, err := os.Open(ctxPath)
	if err != nil {
		return nil, domain.NewExecutionError(domain.CodeIO, "build", "could not open build context archive", err)
	}
	s.logger.Info("building image", "image", imageURI, "base", req.Project.Image)
	imageID, err := s.engine.Build(ctx, imageURI, f, path.Join(config.BuildContextRootName, config.GeneratedDockerfileName))
	f.Close()
	if err != nil {
		return nil, err
	}
	result.ImageID = imageID
	s.logger.Info("built image", "image", imageURI, "id", imageID)

	if err := s.recordImage(ctx, req.RunID, result); err != nil {
		return nil, err
	}
	return result, nil
}

// TrackingRunConfig translates a tracking URI into the mounts and
// environment a project container needs to reach that backend.
func (s *Service) TrackingRunConfig(trackingURI string) (*domain.RunConfig, error) {
	return TrackingConfig(trackingURI, s.creds)
}

// resolveWorkDir picks the local working directory for the request,
// fetching the project when it is referenced by URI. The returned cleanup
// releases any fetched copy.
func (s *Service) resolveWorkDir(ctx context.Context, req domain.BuildRequest) (string, func(), error) {
	switch {
	case req.WorkDir != "" && req.ProjectURI != "":
		return "", nil, domain.NewExecutionError(domain.CodeInvalidProject, "validate",
			"a working directory and a project URI are mutually exclusive", nil)
	case req.WorkDir != "" && req.ProjectVersion != "":
		return "", nil, domain.NewExecutionError(domain.CodeInvalidProject, "validate",
			"a project version may only be combined with a project URI", nil)
	case req.WorkDir != "":
		return req.WorkDir, func() {}, nil
	case req.ProjectURI == "":
		return "", nil, domain.NewExecutionError(domain.CodeInvalidProject, "validate",
			"either a working directory or a project URI is required", nil)
	case s.fetcher == nil:
		return "", nil, domain.NewExecutionError(domain.CodeFetch, "fetch-project",
			"no project fetcher is configured for remote project URIs", nil)
	}
	s.logger.Info("fetching project", "uri", req.ProjectURI, "version", req.ProjectVersion)
	return s.fetcher.Fetch(ctx, req.ProjectURI, req.ProjectVersion)
}

// headRevision resolves the working tree's revision, or empty when the
// directory is not under version control.
func (s *Service) headRevision(workDir string) string {
	if s.vcs == nil {
		return ""
	}
	rev, err := s.vcs.HeadRevision(workDir)
	if err != nil {
		s.logger.Debug("no revision for working directory", "dir", workDir, "error", err)
		return ""
	}
	return rev
}

// recordImage stores the image reference and identifier on the tracking
// run. Skipped when no tagger is configured or the request names no run.
func (s *Service) recordImage(ctx context.Context, runID string, result *domain.BuildResult) error {
	if s.tagger == nil || runID == "" {
		s.logger.Debug("image tagging skipped", "run", runID, "tagger", s.tagger != nil)
		return nil
	}
	if err := s.tagger.SetTag(ctx, runID, config.TagImageURI, result.ImageURI); err != nil {
		return domain.NewExecutionError(domain.CodeTracking, "record-image", "could not tag run with image uri", err)
	}
	if err := s.tagger.SetTag(ctx, runID, config.TagImageID, result.ImageID); err != nil {
		return domain.NewExecutionError(domain.CodeTracking, "record-image", "could not tag run with image id", err)
	}
	return nil
}
