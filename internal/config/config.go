// Package config collects the fixed names, paths and environment keys the
// rest of the module relies on. Keeping them here instead of scattered
// literals lets tests substitute alternate paths.
package config

import "os"

const (
	// GeneratedDockerfileName is the name of the Dockerfile written into the
	// build context. The daemon is pointed at it by path within the archive.
	GeneratedDockerfileName = "Dockerfile.mlflow-autogenerated"

	// BuildContextRootName is the single root directory of the build context
	// archive. The source tree is copied beneath it and the generated
	// Dockerfile references it in its COPY instruction.
	BuildContextRootName = "mlflow-project-docker-build-context"

	// ContainerTrackingDir is where a locally backed tracking store is
	// mounted inside the container.
	ContainerTrackingDir = "/mlflow/tmp/mlruns"

	// ContainerWorkdirPath is where the project source ends up inside the
	// image; the generated Dockerfile copies into it and sets it as WORKDIR.
	ContainerWorkdirPath = "/mlflow/projects/code"

	// DefaultRepositoryPrefix is used as the image repository when the caller
	// does not supply one.
	DefaultRepositoryPrefix = "docker-project"

	// TrackingURIEnvVar is the environment variable the containerized process
	// reads to locate its tracking server.
	TrackingURIEnvVar = "MLFLOW_TRACKING_URI"

	// DatabricksURI is the tracking URI literal denoting the managed backend.
	DatabricksURI = "databricks"
)

// Run tag keys recorded on the tracking run after a successful build.
const (
	TagImageURI = "mlflow.docker.image_uri"
	TagImageID  = "mlflow.docker.image_id"
)

// Getenv returns the value of key, or fallback when unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
