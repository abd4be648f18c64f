package build

import (
	"net/url"

	"github.com/melih/projectdock/internal/config"
	"github.com/melih/projectdock/internal/core/domain"
	"github.com/melih/projectdock/internal/core/ports"
)

// TrackingConfig translates a tracking URI into the run configuration a
// project container needs to reach that backend. Local filesystem and
// sqlite backends get the store mounted at the fixed container directory
// and the tracking variable rewritten to point inside the container;
// remote and managed backends get neither. Credential variables from the
// provider are merged in unconditionally.
func TrackingConfig(trackingURI string, creds ports.CredentialProvider) (*domain.RunConfig, error) {
	cfg := &domain.RunConfig{Env: map[string]string{}}
	if hostPath, containerURI, ok := localTrackingPath(trackingURI); ok {
		cfg.Mounts = append(cfg.Mounts, domain.Mount{
			HostPath:      hostPath,
			ContainerPath: config.ContainerTrackingDir,
		})
		cfg.Env[config.TrackingURIEnvVar] = containerURI
	}
	if creds != nil {
		vars, err := creds.EnvVars(trackingURI)
		if err != nil {
			return nil, domain.NewExecutionError(domain.CodeTracking, "tracking-config",
				"could not resolve platform credentials", err)
		}
		for k, v := range vars {
			cfg.Env[k] = v
		}
	}
	return cfg, nil
}

// localTrackingPath reports whether uri names a local filesystem backend.
// For local backends it returns the host path to mount and the rewritten
// URI the container should use; sqlite stores keep a sqlite-style URI.
func localTrackingPath(uri string) (hostPath, containerURI string, ok bool) {
	if uri == config.DatabricksURI {
		return "", "", false
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", "", false
	}
	if parsed.Host != "" || parsed.User != nil {
		return "", "", false
	}
	switch parsed.Scheme {
	case "", "file", "sqlite":
	default:
		return "", "", false
	}
	path := parsed.Path
	if parsed.Opaque != "" {
		path = parsed.Opaque
		if unescaped, err := url.PathUnescape(parsed.Opaque); err == nil {
			path = unescaped
		}
	}
	if path == "" {
		return "", "", false
	}
	if parsed.Scheme == "sqlite" {
		return path, "sqlite://" + config.ContainerTrackingDir, true
	}
	return path, "file://" + config.ContainerTrackingDir, true
}
