// File: internal/services/store/config.go
package store

import (
	"encoding/json"
	"strings"
	"time"
)

// Google OAuth endpoints baked into every service-account bundle.
const (
	authURI             = "https://accounts.google.com/o/oauth2/auth"
	tokenURI            = "https://oauth2.googleapis.com/token"
	authProviderCertURL = "https://www.googleapis.com/oauth2/v1/certs"
)

// Config holds the Firebase service-account credential fields, sourced from
// environment configuration. PrivateKey arrives with escaped newlines.
type Config struct {
	ProjectID     string
	PrivateKeyID  string
	PrivateKey    string
	ClientEmail   string
	ClientID      string
	ClientCertURL string

	Timeout time.Duration
}

func (c *Config) Validate() error {
	if c.ProjectID == "" {
		return NewConfigError("FIREBASE_PROJECT_ID is required")
	}
	if c.PrivateKey == "" {
		return NewConfigError("FIREBASE_PRIVATE_KEY is required")
	}
	if c.ClientEmail == "" {
		return NewConfigError("FIREBASE_CLIENT_EMAIL is required")
	}
	if c.Timeout <= 0 {
		return NewConfigError("timeout must be positive")
	}
	return nil
}

// ServiceAccountJSON assembles the credential bundle the Admin SDK expects,
// unescaping the newline sequences the env var carries.
func (c *Config) ServiceAccountJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	creds := map[string]string{
		"type":                        "service_account",
		"project_id":                  c.ProjectID,
		"private_key_id":              c.PrivateKeyID,
		"private_key":                 strings.ReplaceAll(c.PrivateKey, `\n`, "\n"),
		"client_email":                c.ClientEmail,
		"client_id":                   c.ClientID,
		"auth_uri":                    authURI,
		"token_uri":                   tokenURI,
		"auth_provider_x509_cert_url": authProviderCertURL,
		"client_x509_cert_url":        c.ClientCertURL,
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return nil, NewOperationError("marshaling service account credentials", err)
	}
	return data, nil
}
