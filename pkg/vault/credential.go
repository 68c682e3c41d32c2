package vault

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"google.golang.org/protobuf/types/known/structpb"
)

// Credential is a provider credential held as a structured value map.
// Providers read the keys they recognize ("key", "project_id",
// "service_account_key") and fail fast on anything missing.
type Credential struct {
	value *structpb.Struct
}

// NewCredential builds a credential from a plain settings map.
func NewCredential(m map[string]interface{}) (*Credential, error) {
	value, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("illegal credential value: %w", err)
	}
	return &Credential{value: value}, nil
}

// GetValue returns the underlying structured value; nil-safe.
func (c *Credential) GetValue() *structpb.Struct {
	if c == nil {
		return nil
	}
	return c.value
}

// Decode maps the credential onto a typed struct via mapstructure tags.
func (c *Credential) Decode(out interface{}) error {
	return mapstructure.Decode(c.GetValue().AsMap(), out)
}

// GoogleCredential is the typed shape of a Google Cloud credential.
type GoogleCredential struct {
	Key               string `mapstructure:"key"`
	ProjectID         string `mapstructure:"project_id"`
	ServiceAccountKey string `mapstructure:"service_account_key"`
}

func apiKeyEnv(provider string) string {
	return "CAPTURE_" + strings.ToUpper(provider) + "_API_KEY"
}

// Resolve builds a credential for a provider from the available sources, in
// precedence order: the explicit settings map, then environment variables,
// then a service-account JSON key file on disk (Google only). An empty
// result is an error; providers never run without a credential source.
func Resolve(provider string, settings map[string]interface{}) (*Credential, error) {
	m := make(map[string]interface{}, len(settings))
	for k, v := range settings {
		m[k] = v
	}

	if _, ok := m["key"]; !ok {
		if key := os.Getenv(apiKeyEnv(provider)); key != "" {
			m["key"] = key
		}
	}

	if provider == "google" {
		if _, ok := m["project_id"]; !ok {
			if prj := os.Getenv("GOOGLE_PROJECT_ID"); prj != "" {
				m["project_id"] = prj
			}
		}
		if _, ok := m["service_account_key"]; !ok {
			if path := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); path != "" {
				content, err := os.ReadFile(path)
				if err != nil {
					return nil, fmt.Errorf("%s: unable to read service account file: %w", provider, err)
				}
				m["service_account_key"] = string(content)
			}
		}
	}

	if len(m) == 0 {
		return nil, fmt.Errorf("%s: no credential source available", provider)
	}
	return NewCredential(m)
}
