package config

import (
	"bytes"
	"encoding/json"
	"os"
)

// StoreCredentials is the credential document of the preference store.
type StoreCredentials struct {
	Addr      string `json:"addr"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	DB        int    `json:"db"`
	TLS       bool   `json:"tls"`
	KeyPrefix string `json:"key_prefix"`
}

// LoadStoreCredentials reads and parses the credential document at path.
// A missing, empty or malformed document is an ErrInvalidConfig.
func LoadStoreCredentials(path string) (StoreCredentials, error) {
	if path == "" {
		return StoreCredentials{}, invalid("store.credentials_path is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return StoreCredentials{}, invalid("store credentials file not found at: %s", path)
		}
		return StoreCredentials{}, invalid("read store credentials %s: %v", path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return StoreCredentials{}, invalid("store credentials file at %s is empty", path)
	}

	var creds StoreCredentials
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&creds); err != nil {
		return StoreCredentials{}, invalid("store credentials file at %s is malformed: %v", path, err)
	}
	if creds.Addr == "" {
		return StoreCredentials{}, invalid("store credentials file at %s: addr is required", path)
	}
	if creds.DB < 0 {
		return StoreCredentials{}, invalid("store credentials file at %s: db must not be negative", path)
	}
	return creds, nil
}
