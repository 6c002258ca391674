package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAtomic_OverwriteAndPreserve(t *testing.T) {
	dir := t.TempDir()
	final := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(final, []byte("original"), 0o644); err != nil {
		t.Fatalf("setup write original: %v", err)
	}

	if err := WriteAtomic(final, []byte("newcontent")); err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}
	got, err := os.ReadFile(final)
	if err != nil {
		t.Fatalf("read final: %v", err)
	}
	if string(got) != "newcontent" {
		t.Fatalf("content mismatch: %q", string(got))
	}
}

func TestWriteAtomic_FailPreserveOriginal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	dir := t.TempDir()
	final := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(final, []byte("original"), 0o644); err != nil {
		t.Fatalf("setup write original: %v", err)
	}

	// Remove write permission so CreateTemp fails.
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(dir, 0o755)
	})

	if err := WriteAtomic(final, []byte("should-not-write")); err == nil {
		t.Fatalf("expected WriteAtomic to fail on unwritable dir")
	}

	got, err := os.ReadFile(final)
	if err != nil {
		t.Fatalf("read final: %v", err)
	}
	if string(got) != "original" {
		t.Fatalf("original file was modified: %q", string(got))
	}
}
