package tracking

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStoreTagger implements ports.RunTagger against a file-backed
// tracking store, writing tags straight into its on-disk layout: the tag
// for a run lands at <root>/<experiment>/<run>/tags/<key> with the value
// as the file contents.
type FileStoreTagger struct {
	root string
}

// NewFileStoreTagger creates a tagger over the store rooted at root.
func NewFileStoreTagger(root string) *FileStoreTagger {
	return &FileStoreTagger{root: root}
}

// SetTag records one key/value tag on a run.
func (t *FileStoreTagger) SetTag(ctx context.Context, runID, key, value string) error {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("invalid tag key %q", key)
	}
	runDir, err := t.findRun(runID)
	if err != nil {
		return err
	}
	tagsDir := filepath.Join(runDir, "tags")
	if err := os.MkdirAll(tagsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create tags directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(tagsDir, key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write tag %s: %w", key, err)
	}
	return nil
}

// findRun locates the run's directory across all experiments in the
// store.
func (t *FileStoreTagger) findRun(runID string) (string, error) {
	if runID == "" || strings.ContainsAny(runID, `/\`) {
		return "", fmt.Errorf("invalid run id %q", runID)
	}
	experiments, err := os.ReadDir(t.root)
	if err != nil {
		return "", fmt.Errorf("failed to read tracking store %s: %w", t.root, err)
	}
	for _, exp := range experiments {
		if !exp.IsDir() {
			continue
		}
		runDir := filepath.Join(t.root, exp.Name(), runID)
		if info, err := os.Stat(runDir); err == nil && info.IsDir() {
			return runDir, nil
		}
	}
	return "", fmt.Errorf("run %s not found under %s", runID, t.root)
}
