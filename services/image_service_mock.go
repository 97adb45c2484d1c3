package services

import (
	"context"
	"fmt"
	"sync"
)

// MockUploader is an in-memory Uploader for testing.
type MockUploader struct {
	mu       sync.RWMutex
	uploaded map[string][]byte // URL -> content
	err      error
}

// NewMockUploader creates an empty mock uploader.
func NewMockUploader() *MockUploader {
	return &MockUploader{uploaded: make(map[string][]byte)}
}

// FailWith makes every subsequent Upload return err.
func (m *MockUploader) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// Upload records the content and returns a deterministic fake URL.
func (m *MockUploader) Upload(_ context.Context, folder, filename string, content []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	url := fmt.Sprintf("https://cdn.test/%s/%s", folder, filename)
	m.uploaded[url] = content
	return url, nil
}

// Uploaded returns a copy of everything stored so far.
func (m *MockUploader) Uploaded() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte, len(m.uploaded))
	for k, v := range m.uploaded {
		out[k] = v
	}
	return out
}

// PassthroughImages is an ImageService that returns every reference
// unchanged. Tests that don't care about images use it.
type PassthroughImages struct{}

// EnsureRemoteRef returns ref as-is.
func (PassthroughImages) EnsureRemoteRef(_ context.Context, ref, _ string) (string, error) {
	return ref, nil
}
