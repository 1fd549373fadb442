package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformed reports a manifest that exists but is not valid JSON.
// Read failures are wrapped separately so callers can tell the two apart
// with errors.Is.
var ErrMalformed = errors.New("malformed package.json")

// Load reads and parses a package.json file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a resolved project manifest path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", Filename, err)
	}
	return Parse(data)
}

// Parse parses package.json content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &m, nil
}
