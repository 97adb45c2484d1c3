package services

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ImageService turns image references into durable remote URLs before
// a catalog record is written. A reference that is already a URL (or
// blank) passes through unchanged; a local file path is uploaded and
// replaced by the URL the storage backend assigns.
type ImageService interface {
	EnsureRemoteRef(ctx context.Context, ref, folder string) (string, error)
}

// Uploader pushes raw image bytes into a storage backend and returns
// the durable URL they live under.
type Uploader interface {
	Upload(ctx context.Context, folder, filename string, content []byte, contentType string) (string, error)
}

// UploadService implements ImageService on top of an Uploader.
type UploadService struct {
	uploader Uploader
}

// NewUploadService wires an image service around the given uploader.
func NewUploadService(uploader Uploader) *UploadService {
	return &UploadService{uploader: uploader}
}

// EnsureRemoteRef uploads the file at ref when it is a local path and
// returns the resulting URL. Remote refs and blank refs come back
// untouched.
func (s *UploadService) EnsureRemoteRef(ctx context.Context, ref, folder string) (string, error) {
	if ref == "" || isRemoteRef(ref) {
		return ref, nil
	}

	content, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", ref, err)
	}

	url, err := s.uploader.Upload(ctx, folder, filepath.Base(ref), content, detectContentType(ref, content))
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return url, nil
}

// isRemoteRef reports whether ref already points at remote storage.
func isRemoteRef(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// detectContentType prefers the file extension and falls back to
// content sniffing.
func detectContentType(ref string, content []byte) string {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	}
	return http.DetectContentType(content)
}
