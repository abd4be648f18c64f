package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDatabricksEnv(t *testing.T, host, username, password, token, insecure string) {
	t.Helper()
	t.Setenv("DATABRICKS_HOST", host)
	t.Setenv("DATABRICKS_USERNAME", username)
	t.Setenv("DATABRICKS_PASSWORD", password)
	t.Setenv("DATABRICKS_TOKEN", token)
	t.Setenv("DATABRICKS_INSECURE", insecure)
}

// TestDatabricksCredentialsTokenAuth verifies the variables passed into
// containers for a managed backend.
func TestDatabricksCredentialsTokenAuth(t *testing.T) {
	setDatabricksEnv(t, "https://dbc.example.com", "", "", "dapi-secret", "")

	vars, err := NewDatabricksCredentials().EnvVars("databricks")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"MLFLOW_TRACKING_URI": "databricks",
		"DATABRICKS_HOST":     "https://dbc.example.com",
		"DATABRICKS_TOKEN":    "dapi-secret",
	}, vars)
}

// TestDatabricksCredentialsProfileURI verifies profile-qualified URIs
// resolve the same way and still point containers at the managed backend.
func TestDatabricksCredentialsProfileURI(t *testing.T) {
	setDatabricksEnv(t, "https://dbc.example.com", "user", "pass", "", "true")

	vars, err := NewDatabricksCredentials().EnvVars("databricks://my-profile")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"MLFLOW_TRACKING_URI": "databricks",
		"DATABRICKS_HOST":     "https://dbc.example.com",
		"DATABRICKS_USERNAME": "user",
		"DATABRICKS_PASSWORD": "pass",
		"DATABRICKS_INSECURE": "true",
	}, vars)
}

// TestDatabricksCredentialsMissingHost verifies an unconfigured
// environment is an error rather than a silently unauthenticated
// container.
func TestDatabricksCredentialsMissingHost(t *testing.T) {
	setDatabricksEnv(t, "", "", "", "", "")

	_, err := NewDatabricksCredentials().EnvVars("databricks")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABRICKS_HOST")
}

// TestDatabricksCredentialsOtherBackends verifies non-managed URIs get an
// empty contribution.
func TestDatabricksCredentialsOtherBackends(t *testing.T) {
	setDatabricksEnv(t, "https://dbc.example.com", "", "", "dapi-secret", "")

	for _, uri := range []string{"https://tracking.example.com", "file:///tmp/mlruns", "sqlite:///tmp/db", ""} {
		vars, err := NewDatabricksCredentials().EnvVars(uri)
		require.NoError(t, err)
		assert.Empty(t, vars)
	}
}
