package main

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// calculateFileHash returns the MD5 hash of a file
func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// fileChanged reports whether the file at path no longer matches the hash
// taken when it was loaded. A file that has since been removed counts as
// changed.
func fileChanged(path, fingerprint string) (bool, error) {
	if fingerprint == "" {
		return false, errors.New("no fingerprint was recorded at load")
	}

	hash, err := calculateFileHash(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return hash != fingerprint, nil
}
