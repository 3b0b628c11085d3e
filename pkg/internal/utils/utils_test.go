package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joeydtaylor/scopecore/pkg/internal/utils"
)

// TestGenerateUniqueHash ensures successive hashes differ and are hex encoded.
func TestGenerateUniqueHash(t *testing.T) {
	a := utils.GenerateUniqueHash()
	b := utils.GenerateUniqueHash()

	if len(a) != 64 {
		t.Errorf("Expected a 64 character sha256 hex string, got %d characters", len(a))
	}
	if a == b {
		t.Errorf("Expected unique hashes, got identical values: %s", a)
	}
}

// TestWriteFileAtomic verifies content lands at the target path and that no
// temporary files survive the write.
func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := utils.WriteFileAtomic(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading written file failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Expected file content %q, got %q", "hello", string(data))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the target file in %s, found %d entries", dir, len(entries))
	}
}

// TestWriteFileAtomicOverwrite verifies an existing file is replaced wholesale.
func TestWriteFileAtomicOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("old content that is longer"), 0644); err != nil {
		t.Fatalf("Seeding file failed: %v", err)
	}
	if err := utils.WriteFileAtomic(path, []byte("new"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading written file failed: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("Expected file content %q, got %q", "new", string(data))
	}
}
