// Package snapshot exports the dashboard state as a JSON document in GCS.
// A snapshot is a point-in-time copy of both collections plus the derived
// views computed from them, useful for backups and offline analysis.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/dvloznov/budgetmentor/internal/insights"
	"github.com/dvloznov/budgetmentor/internal/model"
)

// Snapshot is the exported document.
type Snapshot struct {
	ExportedAt   time.Time           `json:"exported_at"`
	Transactions []model.Transaction `json:"transactions"`
	Goals        []model.Goal        `json:"goals"`
	Metrics      insights.Metrics    `json:"metrics"`
	Insights     insights.Bundle     `json:"insights"`
}

// ObjectName builds the object path for a snapshot taken at t.
func ObjectName(t time.Time) string {
	return fmt.Sprintf("snapshots/%s/dashboard-%s.json", t.Format("2006/01/02"), t.Format("150405"))
}

// Upload writes the snapshot to the bucket and returns the gs:// URI.
// It assumes Application Default Credentials are configured.
func Upload(ctx context.Context, bucketName string, snap *Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("Upload: marshal snapshot: %w", err)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("Upload: create storage client: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	objectName := ObjectName(snap.ExportedAt)
	w := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("Upload: write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("Upload: finalize upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", bucketName, objectName), nil
}

// Fetch downloads and decodes a snapshot from the given gs:// URI.
func Fetch(ctx context.Context, gcsURI string) (*Snapshot, error) {
	bucketName, objectPath, err := splitURI(gcsURI)
	if err != nil {
		return nil, fmt.Errorf("Fetch: %w", err)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("Fetch: create storage client: %w", err)
	}
	defer client.Close()

	rc, err := client.Bucket(bucketName).Object(objectPath).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("Fetch: reading object %s/%s: %w", bucketName, objectPath, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("Fetch: reading bytes: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("Fetch: unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// splitURI splits "gs://bucket/path/to/object" into bucket and object path.
func splitURI(gcsURI string) (string, string, error) {
	if !strings.HasPrefix(gcsURI, "gs://") {
		return "", "", fmt.Errorf("invalid GCS URI: %s", gcsURI)
	}
	trimmed := strings.TrimPrefix(gcsURI, "gs://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid GCS URI (no object path): %s", gcsURI)
	}
	return parts[0], parts[1], nil
}
