package tracking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRestTaggerSetTag verifies the request shape the tracking server
// receives, bearer token included.
func TestRestTaggerSetTag(t *testing.T) {
	t.Setenv(tokenEnvVar, "tracking-secret")

	var gotMethod, gotPath, gotContentType, gotAuth string
	var gotBody setTagRequest
	var decodeErr error
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		decodeErr = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tagger := NewRestTagger(srv.URL + "/")
	require.NoError(t, tagger.SetTag(context.Background(), "run-42", "mlflow.docker.image_uri", "demo:abc1234"))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/2.0/mlflow/runs/set-tag", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Bearer tracking-secret", gotAuth)
	require.NoError(t, decodeErr)
	assert.Equal(t, setTagRequest{RunID: "run-42", Key: "mlflow.docker.image_uri", Value: "demo:abc1234"}, gotBody)
}

// TestRestTaggerNoToken verifies no Authorization header is sent without
// a configured token.
func TestRestTaggerNoToken(t *testing.T) {
	t.Setenv(tokenEnvVar, "")

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, NewRestTagger(srv.URL).SetTag(context.Background(), "run-42", "key", "value"))
	assert.Empty(t, gotAuth)
}

// TestRestTaggerSetTagError verifies API failures surface with status and
// body.
func TestRestTaggerSetTagError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error_code":"RESOURCE_DOES_NOT_EXIST"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	err := NewRestTagger(srv.URL).SetTag(context.Background(), "ghost", "key", "value")
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, string(apiErr.Body), "RESOURCE_DOES_NOT_EXIST")
}

// TestRestTaggerUnreachableServer verifies transport failures are
// reported.
func TestRestTaggerUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := NewRestTagger(srv.URL).SetTag(context.Background(), "run-42", "key", "value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request failed")
}
