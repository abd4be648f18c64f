package docker

import (
	"context"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/opencontainers/go-digest"

	"github.com/melih/projectdock/internal/core/domain"
)

// installHint is appended to engine-availability errors so the caller can
// fix their environment.
const installHint = "Ensure Docker is installed as per the instructions at https://docs.docker.com/install/overview/."

// Adapter implements ports.ImageBuilder using the Docker Engine API.
type Adapter struct {
	cli *client.Client
	out io.Writer
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithBuildOutput streams the engine's build progress to w. Progress is
// discarded by default.
func WithBuildOutput(w io.Writer) Option {
	return func(a *Adapter) { a.out = w }
}

// NewAdapter creates a Docker adapter configured from the environment
// (DOCKER_HOST and friends), negotiating the API version with the daemon.
func NewAdapter(opts ...Option) (*Adapter, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, domain.NewExecutionError(domain.CodeEngineUnavailable, "docker",
			"could not create docker client. "+installHint, err)
	}
	a := &Adapter{cli: cli, out: io.Discard}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Ping verifies the docker daemon is reachable.
func (a *Adapter) Ping(ctx context.Context) error {
	if _, err := a.cli.Ping(ctx); err != nil {
		return domain.NewExecutionError(domain.CodeEngineUnavailable, "docker",
			"could not reach the docker daemon. "+installHint, err)
	}
	return nil
}

// Build submits a gzip-compressed tar as a custom build context and
// returns the identifier of the built image. dockerfile is the path of
// the Dockerfile inside the context. Intermediate containers are removed
// whether the build succeeds or not.
func (a *Adapter) Build(ctx context.Context, tag string, buildContext io.Reader, dockerfile string) (string, error) {
	resp, err := a.cli.ImageBuild(ctx, buildContext, types.ImageBuildOptions{
		Tags:        []string{tag},
		Dockerfile:  dockerfile,
		Remove:      true,
		ForceRemove: true,
	})
	if err != nil {
		return "", domain.NewExecutionError(domain.CodeBuildFailed, "docker", "image build failed", err)
	}
	defer resp.Body.Close()

	// build failures arrive in-band on the message stream
	if err := jsonmessage.DisplayJSONMessagesStream(resp.Body, a.out, 0, false, nil); err != nil {
		return "", domain.NewExecutionError(domain.CodeBuildFailed, "docker", "image build failed", err)
	}

	inspect, _, err := a.cli.ImageInspectWithRaw(ctx, tag)
	if err != nil {
		return "", domain.NewExecutionError(domain.CodeBuildFailed, "docker", "could not inspect built image", err)
	}
	if _, err := digest.Parse(inspect.ID); err != nil {
		return "", domain.NewExecutionError(domain.CodeBuildFailed, "docker", "engine returned an invalid image id", err)
	}
	return inspect.ID, nil
}
