package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Profile holds generator-level defaults loaded once at process start: the
// template used when a request names none, and profile-level section
// visibility defaults that sit between the request's visibility map and the
// catalog's implicit "visible". Read-only after loading; never reloaded
// mid-request.
type Profile struct {
	DefaultTemplate   string          `json:"defaultTemplate,omitempty"`
	SectionVisibility map[string]bool `json:"sectionVisibility,omitempty"`
}

// LoadProfile reads a generator profile from a JSON file. An empty path
// returns an empty profile so the service runs with catalog defaults alone.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return &Profile{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &p, nil
}
