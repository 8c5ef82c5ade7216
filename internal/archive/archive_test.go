package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArchiveFile(t *testing.T) {
	tmpDir := t.TempDir()

	deck := filepath.Join(tmpDir, "vocabulary.apkg")
	if err := os.WriteFile(deck, []byte("old deck"), 0644); err != nil {
		t.Fatalf("Failed to create deck file: %v", err)
	}

	archived, err := ArchiveFile(deck)
	if err != nil {
		t.Fatalf("ArchiveFile failed: %v", err)
	}

	if _, err := os.Stat(deck); !os.IsNotExist(err) {
		t.Error("Deck file still exists after archiving")
	}

	if filepath.Dir(archived) != filepath.Join(tmpDir, Dir) {
		t.Errorf("Archived into %s, want %s", filepath.Dir(archived), filepath.Join(tmpDir, Dir))
	}

	name := filepath.Base(archived)
	if !strings.HasPrefix(name, "vocabulary-") {
		t.Errorf("Archived name doesn't start with 'vocabulary-': %s", name)
	}
	if filepath.Ext(name) != ".apkg" {
		t.Errorf("Archived name lost its extension: %s", name)
	}

	content, err := os.ReadFile(archived)
	if err != nil {
		t.Fatalf("Failed to read archived file: %v", err)
	}
	if string(content) != "old deck" {
		t.Errorf("Archived content = %q, want %q", content, "old deck")
	}
}

func TestArchiveFileMissing(t *testing.T) {
	archived, err := ArchiveFile(filepath.Join(t.TempDir(), "missing.csv"))
	if err != nil {
		t.Fatalf("ArchiveFile on missing file returned error: %v", err)
	}
	if archived != "" {
		t.Errorf("Expected empty path for missing file, got %s", archived)
	}
}

func TestArchiveFileTwice(t *testing.T) {
	tmpDir := t.TempDir()
	deck := filepath.Join(tmpDir, "deck.csv")

	var paths []string
	for i := 0; i < 2; i++ {
		if err := os.WriteFile(deck, []byte("deck"), 0644); err != nil {
			t.Fatalf("Failed to create deck file: %v", err)
		}
		archived, err := ArchiveFile(deck)
		if err != nil {
			t.Fatalf("ArchiveFile #%d failed: %v", i+1, err)
		}
		paths = append(paths, archived)
	}

	if paths[0] == paths[1] {
		t.Errorf("Both archives landed on %s", paths[0])
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, Dir))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 archived files, got %d", len(entries))
	}
}

func TestArchiveFileRejectsDirectory(t *testing.T) {
	if _, err := ArchiveFile(t.TempDir()); err == nil {
		t.Error("Expected error when archiving a directory")
	}
}
