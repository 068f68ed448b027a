// Package fileutils provides utility functions for handling files.
package fileutils

import (
	"log/slog"
	"os"
	"strings"
)

// ReadFileLogError returns the data in the file path, trimming whitespace, or "" on error.
func ReadFileLogError(path string, log *slog.Logger) string {
	f, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read file", "file", path, "error", err)
		return ""
	}

	return strings.TrimSpace(string(f))
}

// ReadFileOrEmpty returns the data in the file path, trimming whitespace, or "" on
// error without logging. Meant for files that are commonly absent.
func ReadFileOrEmpty(path string) string {
	f, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(f))
}
