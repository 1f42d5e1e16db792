package imghost

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/tasarim-galerisi/backend/internal/models"
)

// Client uploads image bytes to an external image host and returns a stable URL
type Client interface {
	Upload(ctx context.Context, image io.Reader) (string, error)
}

// ImgbbClient implements Client against the imgbb upload API
type ImgbbClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewImgbbClient creates a new ImgbbClient
func NewImgbbClient(endpoint, apiKey string) *ImgbbClient {
	return &ImgbbClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type imgbbResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
}

// Upload posts the image as a base64 multipart form field and returns the
// hosted URL. Failures wrap ErrUploadFailed so callers can offer a retry.
func (c *ImgbbClient) Upload(ctx context.Context, image io.Reader) (string, error) {
	raw, err := io.ReadAll(image)
	if err != nil {
		return "", fmt.Errorf("%w: read image: %v", models.ErrUploadFailed, err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: empty image", models.ErrUploadFailed)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("image", base64.StdEncoding.EncodeToString(raw)); err != nil {
		return "", fmt.Errorf("%w: encode form: %v", models.ErrUploadFailed, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: encode form: %v", models.ErrUploadFailed, err)
	}

	url := c.endpoint + "?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", models.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: image host returned status %d", models.ErrUploadFailed, resp.StatusCode)
	}

	var parsed imgbbResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", models.ErrUploadFailed, err)
	}
	if !parsed.Success || parsed.Data.URL == "" {
		return "", fmt.Errorf("%w: image host rejected the upload", models.ErrUploadFailed)
	}
	return parsed.Data.URL, nil
}
