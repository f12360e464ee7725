package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// FormHost uploads images as an unsigned multipart form: a "file" part with
// the raw bytes and an "upload_preset" field identifying the preset. The
// service answers with a JSON body carrying the durable URL in "secure_url".
type FormHost struct {
	uploadURL string
	preset    string
	hc        *http.Client
}

// NewFormHost points at the service base URL (e.g.
// https://api.cloudinary.com/v1_1/<cloud>); the image/upload path is appended.
func NewFormHost(baseURL, preset string, timeout time.Duration) *FormHost {
	return &FormHost{
		uploadURL: strings.TrimRight(baseURL, "/") + "/image/upload",
		preset:    preset,
		hc:        &http.Client{Timeout: timeout},
	}
}

type formUploadResponse struct {
	SecureURL string `json:"secure_url"`
}

func (h *FormHost) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}
	if err := w.WriteField("upload_preset", h.preset); err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.uploadURL, &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := h.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upload failed: %s", resp.Status)
	}

	var out formUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if out.SecureURL == "" {
		return "", fmt.Errorf("upload response carries no url")
	}
	return out.SecureURL, nil
}
