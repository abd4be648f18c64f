package tracking

import (
	"fmt"
	"net/url"
	"os"

	"github.com/melih/projectdock/internal/config"
)

// DatabricksCredentials implements ports.CredentialProvider for managed
// tracking backends. Only the current process's own Databricks variables
// are exposed to the container, never a whole credentials file.
type DatabricksCredentials struct{}

// NewDatabricksCredentials creates the provider.
func NewDatabricksCredentials() *DatabricksCredentials {
	return &DatabricksCredentials{}
}

// EnvVars returns the authentication variables a container needs for a
// managed tracking URI, and an empty map for every other backend.
func (DatabricksCredentials) EnvVars(trackingURI string) (map[string]string, error) {
	if !isDatabricksURI(trackingURI) {
		return map[string]string{}, nil
	}
	host := os.Getenv("DATABRICKS_HOST")
	if host == "" {
		return nil, fmt.Errorf("DATABRICKS_HOST must be set when tracking to %q", trackingURI)
	}
	vars := map[string]string{
		config.TrackingURIEnvVar: config.DatabricksURI,
		"DATABRICKS_HOST":        host,
	}
	for _, name := range []string{"DATABRICKS_USERNAME", "DATABRICKS_PASSWORD", "DATABRICKS_TOKEN", "DATABRICKS_INSECURE"} {
		if v := os.Getenv(name); v != "" {
			vars[name] = v
		}
	}
	return vars, nil
}

func isDatabricksURI(uri string) bool {
	if uri == config.DatabricksURI {
		return true
	}
	parsed, err := url.Parse(uri)
	return err == nil && parsed.Scheme == config.DatabricksURI
}
