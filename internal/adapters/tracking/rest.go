package tracking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// tokenEnvVar supplies an optional bearer token for authenticated
// tracking servers.
const tokenEnvVar = "MLFLOW_TRACKING_TOKEN"

// RestTagger implements ports.RunTagger against a remote tracking
// server's REST API.
type RestTagger struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// APIError represents an error response from the tracking server.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tracking API error (%d): %s", e.StatusCode, string(e.Body))
}

// NewRestTagger creates a tagger for the tracking server at baseURL,
// picking up a bearer token from the environment when one is set.
func NewRestTagger(baseURL string) *RestTagger {
	return &RestTagger{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   os.Getenv(tokenEnvVar),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type setTagRequest struct {
	RunID string `json:"run_id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SetTag records one key/value tag on a run.
func (t *RestTagger) SetTag(ctx context.Context, runID, key, value string) error {
	payload, err := json.Marshal(setTagRequest{RunID: runID, Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("failed to marshal set-tag request: %w", err)
	}

	endpoint := t.baseURL + "/api/2.0/mlflow/runs/set-tag"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request [POST %s]: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed [POST %s]: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: body}
	}
	return nil
}
