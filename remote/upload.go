package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// UploadImage sends an image to the backend's upload endpoint and
// returns the durable URL the backend stored it under.
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader, folder string) (UploadResponse, error) {
	var response UploadResponse

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return response, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return response, fmt.Errorf("failed to read image content: %w", err)
	}
	if folder == "" {
		folder = "general"
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return response, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return response, fmt.Errorf("failed to build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images", &buf)
	if err != nil {
		return response, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return response, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return response, &APIError{StatusCode: resp.StatusCode, Message: parseErrorMessage(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("failed to decode response: %w", err)
	}
	if strings.TrimSpace(response.URL) == "" {
		return response, fmt.Errorf("upload response carried no URL")
	}
	return response, nil
}
