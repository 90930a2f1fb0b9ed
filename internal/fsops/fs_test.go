package fsops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "SwiftGodotA.swift")
	if err := os.WriteFile(testFile, []byte("// generated"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", testFile, true},
		{"existing directory", tmpDir, true},
		{"missing file", filepath.Join(tmpDir, "SwiftGodotB.swift"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.Exists(tt.path)
			if err != nil {
				t.Fatalf("Exists returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	t.Run("creates parent directories", func(t *testing.T) {
		target := filepath.Join(tmpDir, "GeneratedSources", ".genplan-stamp.yaml")
		if err := fs.AtomicWrite(target, []byte("mode: incremental\n"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		data, err := fs.ReadFile(target)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(data) != "mode: incremental\n" {
			t.Errorf("content mismatch: got %q", data)
		}
	})

	t.Run("overwrites and leaves no temp files", func(t *testing.T) {
		target := filepath.Join(tmpDir, "stamp.yaml")
		if err := os.WriteFile(target, []byte("old"), 0644); err != nil {
			t.Fatalf("failed to create initial file: %v", err)
		}
		if err := fs.AtomicWrite(target, []byte("new"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(data) != "new" {
			t.Errorf("content not updated: got %q", data)
		}

		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".genplan-tmp-") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})
}

func TestRealFS_StatMissing(t *testing.T) {
	_, err := NewRealFS().Stat(filepath.Join(t.TempDir(), "missing"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestMemFS(t *testing.T) {
	fs := NewMemFS()
	mtime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	fs.WriteFile("/out/generated/Node.swift", []byte("class Node {}"), mtime)

	info, err := fs.Stat("/out/generated/Node.swift")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.ModTime().Equal(mtime) {
		t.Errorf("ModTime = %v, want %v", info.ModTime(), mtime)
	}
	if info.Size() != int64(len("class Node {}")) {
		t.Errorf("Size = %d", info.Size())
	}

	if ok, _ := fs.Exists("/out/generated/Missing.swift"); ok {
		t.Error("Exists should be false for missing file")
	}
	if _, err := fs.Stat("/out/generated/Missing.swift"); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	if err := fs.MkdirAll("/out/generated-builtin", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	info, err = fs.Stat("/out")
	if err != nil || !info.IsDir() {
		t.Errorf("expected /out to be a directory, got %v, %v", info, err)
	}

	data, err := fs.ReadFile("/out/generated/Node.swift")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	data[0] = 'X'
	again, _ := fs.ReadFile("/out/generated/Node.swift")
	if again[0] != 'c' {
		t.Error("ReadFile returned a shared buffer")
	}
}
