// Package testutility holds helpers shared by tests across the module.
package testutility

import (
	"encoding/json"
	"os"
	"testing"
)

// LoadFixture returns the raw contents of the fixture file at path, failing
// the test if it cannot be read
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	file, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to open fixture: %s", err)
	}

	return file
}

// LoadJSONFixture returns the contents of the fixture file parsed as JSON
func LoadJSONFixture[V any](t *testing.T, path string) V {
	t.Helper()

	var elem V
	if err := json.Unmarshal(LoadFixture(t, path), &elem); err != nil {
		t.Fatalf("Failed to unmarshal val: %s", err)
	}

	return elem
}
