package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cover.jpg", "cover.jpg"},
		{`a<b>c:d"e/f\g|h?i*j`, "abcdefghij"},
		{"name. ", "name"},
		{"...", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnsureDirAndWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	// Idempotent on an existing directory
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed on existing dir: %v", err)
	}

	path := filepath.Join(dir, "f.txt")
	if err := WriteFile(path, []byte("data")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("Expected 'data', got %q", data)
	}
}
