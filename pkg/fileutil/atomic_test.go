package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{
			name: "single log line",
			data: []byte("2024-01-02 03:04:05.000000000 +00:00 INFO hello\n"),
			perm: 0o644,
		},
		{
			name: "empty data",
			data: []byte{},
			perm: 0o644,
		},
		{
			name: "private permissions",
			data: []byte("secret\n"),
			perm: 0o600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test.log")

			if err := AtomicWriteFile(path, tt.data, tt.perm); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading file: %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stating file: %v", err)
			}
			if gotPerm := info.Mode().Perm(); gotPerm != tt.perm {
				t.Errorf("permissions = %o, want %o", gotPerm, tt.perm)
			}
		})
	}
}

func TestAtomicWriteFile_OverwriteExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.log")

	if err := os.WriteFile(path, []byte("first\n"), 0o600); err != nil {
		t.Fatalf("creating original file: %v", err)
	}

	if err := AtomicWriteFile(path, []byte("first\nsecond\n"), 0o600); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(got) != "first\nsecond\n" {
		t.Errorf("content = %q", got)
	}
}

func TestAtomicWriteFile_DirectoryNotExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent", "file.log")

	if err := AtomicWriteFile(path, []byte("data"), 0o600); err == nil {
		t.Error("AtomicWriteFile() expected error for nonexistent directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading directory: %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestAtomicWriteFile_NoTempFileLeftOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.log")

	if err := AtomicWriteFile(path, []byte("data\n"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading directory: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the target file", len(entries))
	}
}

func TestFileMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mode.log")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0o640); err != nil {
		t.Fatal(err)
	}

	if got := FileMode(path, 0o644); got != 0o640 {
		t.Errorf("FileMode() = %o, want 640", got)
	}
	if got := FileMode(filepath.Join(dir, "missing"), 0o644); got != 0o644 {
		t.Errorf("FileMode() on missing file = %o, want fallback 644", got)
	}
}

func TestAtomicWriteTOML(t *testing.T) {
	type doc struct {
		LogPath  string `toml:"log_path"`
		LogLevel string `toml:"log_level"`
	}

	path := filepath.Join(t.TempDir(), "Dzl.toml")
	if err := AtomicWriteTOML(path, doc{LogPath: "dzl.log", LogLevel: "warn"}, 0o644); err != nil {
		t.Fatalf("AtomicWriteTOML() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	content := string(got)

	for _, want := range []string{"log_path = ", "dzl.log", "log_level = ", "warn"} {
		if !strings.Contains(content, want) {
			t.Errorf("TOML output missing %q:\n%s", want, content)
		}
	}
	if !strings.HasSuffix(content, "\n") {
		t.Error("TOML output should have trailing newline")
	}
}

func TestAtomicWriteTOML_Unmarshalable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")

	if err := AtomicWriteTOML(path, make(chan int), 0o644); err == nil {
		t.Fatal("AtomicWriteTOML() expected error for channel value")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("file should not exist after marshal error")
	}
}
