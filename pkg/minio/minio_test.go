package minio

import (
	"strings"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	cfg, err := validateConfig(MinIOConfig{Endpoint: "localhost", AccessKey: "a", SecretKey: "s", Bucket: "sommelier-data"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Endpoint != "localhost:9000" {
		t.Errorf("expected default port to be appended, got %q", cfg.Endpoint)
	}
	if cfg.Region != DefaultRegion {
		t.Errorf("expected default region, got %q", cfg.Region)
	}

	if _, err := validateConfig(MinIOConfig{Endpoint: "localhost"}); !IsCode(err, ErrCodeInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestValidateBucketName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"sommelier-data", true},
		{"ab", false},
		{"Sommelier", false},
		{"bad--name", false},
		{"-bad", false},
	}
	for _, tt := range tests {
		err := validateBucketName(tt.name)
		if tt.valid && err != nil {
			t.Errorf("%q: unexpected error: %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%q: expected error", tt.name)
		}
	}
}

func TestValidateUploadRequest(t *testing.T) {
	ok := &UploadRequest{
		BucketName:  "sommelier-data",
		ObjectName:  "extracted/extracted_data.json",
		Reader:      strings.NewReader("{}"),
		Size:        2,
		ContentType: "application/json",
	}
	if err := validateUploadRequest(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := *ok
	bad.ObjectName = "/leading"
	if err := validateUploadRequest(&bad); !IsCode(err, ErrCodeInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}
