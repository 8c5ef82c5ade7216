// Package archive moves previous export files out of the way before they
// are overwritten.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Dir is the name of the directory, next to the file, that receives old exports
const Dir = "archive"

// ArchiveFile moves path into an archive directory beside it, suffixing the
// base name with a timestamp. It returns the new location. A missing file is
// not an error; the returned path is then empty.
func ArchiveFile(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	archiveDir := filepath.Join(filepath.Dir(path), Dir)
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	archivePath := filepath.Join(archiveDir, archiveName(stem, ext, "20060102-150405"))
	if _, err := os.Stat(archivePath); err == nil {
		// Same second; fall back to microseconds
		archivePath = filepath.Join(archiveDir, archiveName(stem, ext, "20060102-150405.000000"))
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}

	return archivePath, nil
}

func archiveName(stem, ext, layout string) string {
	return fmt.Sprintf("%s-%s%s", stem, time.Now().Format(layout), ext)
}
