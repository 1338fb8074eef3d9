package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BQ_DATASET", "")
	t.Setenv("API_BASE_URL", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.BQDataset != "budgetmentor" {
		t.Errorf("BQDataset = %q, want budgetmentor", cfg.BQDataset)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GCP_PROJECT", "my-project")
	t.Setenv("GCS_BUCKET", "my-bucket")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.GCPProject != "my-project" {
		t.Errorf("GCPProject = %q", cfg.GCPProject)
	}
	if cfg.GCSBucket != "my-bucket" {
		t.Errorf("GCSBucket = %q", cfg.GCSBucket)
	}
}
