package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EntriesFileExtensions lists the accepted entries file extensions
var EntriesFileExtensions = []string{".yaml", ".yml"}

// PathValidator provides centralized path validation and cleaning functionality
type PathValidator struct {
	extensions []string
}

// NewPathValidator creates a PathValidator accepting the given extensions.
// No extensions means any extension is accepted.
func NewPathValidator(extensions ...string) *PathValidator {
	return &PathValidator{extensions: extensions}
}

// ValidateAndClean validates and cleans a file path, ensuring it's safe,
// exists and is a regular file
func (pv *PathValidator) ValidateAndClean(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	// Clean the path to prevent path traversal
	cleanPath := filepath.Clean(filePath)

	// Allow .. only at the beginning (relative path)
	if strings.Contains(cleanPath, "..") && !strings.HasPrefix(cleanPath, "..") {
		return "", fmt.Errorf("path traversal not allowed in file path: %s", filePath)
	}

	if !pv.hasAllowedExtension(cleanPath) {
		return "", fmt.Errorf("unsupported file extension %q, expected one of %s",
			filepath.Ext(cleanPath), strings.Join(pv.extensions, ", "))
	}

	info, err := os.Stat(cleanPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", cleanPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", cleanPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return cleanPath, nil
}

func (pv *PathValidator) hasAllowedExtension(path string) bool {
	if len(pv.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range pv.extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
