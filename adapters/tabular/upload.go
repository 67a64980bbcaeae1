package tabular

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"facalloc/internal/errors"
)

// UploadConfig holds limits applied to roster uploads
type UploadConfig struct {
	MaxFileSize  int64    // Maximum file size in bytes
	TempDir      string   // Temporary directory for Excel processing
	AllowedTypes []string // Allowed MIME types
}

// DefaultUploadConfig returns sensible defaults
func DefaultUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxFileSize: 10 * 1024 * 1024, // 10MB
		TempDir:     os.TempDir(),
		AllowedTypes: []string{
			"text/csv",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		},
	}
}

// ValidateUpload checks filename, extension/MIME agreement and size before
// any parsing happens. Failures surface as INVALID_INPUT.
func ValidateUpload(filename, mimeType string, size int64, config *UploadConfig) error {
	if config == nil {
		config = DefaultUploadConfig()
	}
	if filename == "" {
		return errors.InvalidInput("no filename provided")
	}
	if size > config.MaxFileSize {
		return errors.InvalidInput(fmt.Sprintf(
			"file size %d bytes exceeds maximum allowed size %d bytes", size, config.MaxFileSize))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv", ".xlsx":
	default:
		return errors.InvalidInput(fmt.Sprintf("unsupported file extension: %s", ext))
	}

	// Browsers are inconsistent about CSV MIME types, so only reject a
	// MIME type that affirmatively disagrees with the extension.
	if mimeType != "" && !mimeAgreesWithExtension(mimeType, ext) {
		return errors.InvalidInput(fmt.Sprintf(
			"MIME type %s does not match file extension %s", mimeType, ext))
	}
	return nil
}

func mimeAgreesWithExtension(mimeType, ext string) bool {
	mimeType = strings.ToLower(mimeType)
	switch ext {
	case ".csv":
		return strings.Contains(mimeType, "csv") ||
			strings.Contains(mimeType, "text/plain") ||
			mimeType == "application/octet-stream"
	case ".xlsx":
		return strings.Contains(mimeType, "spreadsheet") ||
			strings.Contains(mimeType, "excel") ||
			mimeType == "application/octet-stream"
	}
	return false
}

// SaveToTemp copies an uploaded file into the temp dir so the Excel reader
// can open it by path. The caller owns the returned path and removes it.
func SaveToTemp(src multipart.File, filename, tempDir string) (string, error) {
	pattern := "roster_*" + strings.ToLower(filepath.Ext(filename))
	tempFile, err := os.CreateTemp(tempDir, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tempFile.Close()

	if _, err := io.Copy(tempFile, src); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to copy to temp file: %w", err)
	}
	return tempFile.Name(), nil
}
