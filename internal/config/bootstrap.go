package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// EnsureUserConfig copies the shipped default config into the data dir on
// first run so the user edits a private copy, never the packaged default.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	return ensureCopy(filepath.Join(dataDir, "config.yml"), defaultPath)
}

// EnsureCandidatesFile does the same for the candidate seed file.
func EnsureCandidatesFile(dataDir string, defaultPath string) (string, error) {
	return ensureCopy(filepath.Join(dataDir, "candidates.yml"), defaultPath)
}

func ensureCopy(userPath, defaultPath string) (string, error) {
	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := os.Open(defaultPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return userPath, nil
}
