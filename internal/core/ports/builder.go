package ports

import (
	"context"
	"io"

	"github.com/melih/projectdock/internal/core/domain"
)

// ImageBuilder defines the container-engine operations needed to build
// project images. This interface allows us to switch between Docker and
// Podman without changing the business logic.
type ImageBuilder interface {
	// Ping verifies the engine daemon is installed and reachable.
	Ping(ctx context.Context) error

	// Build submits a gzip-compressed tar build context to the engine and
	// returns the ID of the resulting image. dockerfile is the path of the
	// Dockerfile inside the context.
	Build(ctx context.Context, tag string, buildContext io.Reader, dockerfile string) (string, error)
}

// BuildService defines the core operations for containerizing projects.
type BuildService interface {
	// CheckEngine verifies a usable container engine before any build work.
	CheckEngine(ctx context.Context) error

	// BuildImage assembles a build context for the request's project,
	// builds the image and records it on the tracking run.
	BuildImage(ctx context.Context, req domain.BuildRequest) (*domain.BuildResult, error)

	// TrackingRunConfig translates a tracking URI into the mounts and
	// environment a project container needs to reach that backend.
	TrackingRunConfig(trackingURI string) (*domain.RunConfig, error)
}
