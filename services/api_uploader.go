package services

import (
	"bytes"
	"context"

	"github.com/delsur-bakery/delsur-store/remote"
)

// APIUploader pushes images through the backend's own upload endpoint
// instead of talking to object storage directly. Deployments without
// S3 credentials use this.
type APIUploader struct {
	client *remote.Client
}

// NewAPIUploader wires an uploader around the remote client.
func NewAPIUploader(client *remote.Client) *APIUploader {
	return &APIUploader{client: client}
}

// Upload sends the content to the backend and returns the URL it
// stored the image under. Content type travels implicitly in the
// multipart filename.
func (u *APIUploader) Upload(ctx context.Context, folder, filename string, content []byte, _ string) (string, error) {
	response, err := u.client.UploadImage(ctx, filename, bytes.NewReader(content), folder)
	if err != nil {
		return "", err
	}
	return response.URL, nil
}
