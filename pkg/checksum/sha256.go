// Package checksum writes SHA256 sidecar files for distributable artifacts.
package checksum

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Extension is appended to an artifact path to name its checksum file.
const Extension = ".sha256"

// ComputeSHA256 returns the lowercase hex SHA256 of the file at path.
func ComputeSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to compute SHA256: %w", err)
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// WriteSidecar hashes path and writes "<hash>  <basename>\n" to
// path+Extension, the format `shasum -a 256 -c` reads. It returns the
// sidecar path and the hash.
func WriteSidecar(path string) (string, string, error) {
	sum, err := ComputeSHA256(path)
	if err != nil {
		return "", "", err
	}

	sidecar := path + Extension
	line := fmt.Sprintf("%s  %s\n", sum, filepath.Base(path))
	if err := os.WriteFile(sidecar, []byte(line), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write checksum file: %w", err)
	}
	return sidecar, sum, nil
}
