package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteScript writes an executable /bin/sh script named name into dir and
// returns its path.
func WriteScript(t testing.TB, dir, name, body string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script %s: %v", target, err)
	}
	return target
}
