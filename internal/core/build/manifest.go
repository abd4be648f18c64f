package build

import (
	"fmt"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/melih/projectdock/internal/config"
)

// Dockerfile renders the generated manifest that layers the project tree
// onto the base image. The revision, when known, is recorded as an OCI
// revision label on the built image.
func Dockerfile(baseImage, revision string) string {
	manifest := fmt.Sprintf("FROM %s\nCOPY %s/ %s\nWORKDIR %s\n",
		baseImage, config.BuildContextRootName, config.ContainerWorkdirPath, config.ContainerWorkdirPath)
	if revision != "" {
		manifest += fmt.Sprintf("LABEL %s=%s\n", ocispec.AnnotationRevision, revision)
	}
	return manifest
}
