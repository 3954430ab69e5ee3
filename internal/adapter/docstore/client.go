package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/solanera/ventaflow/internal/domain/model"
)

// TooManyRequestsError represents a rate limiting signal from the document store.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client exposes operations against the blob document store. The workflow
// only records the returned reference and never re-reads blob contents.
type Client interface {
	Store(ctx context.Context, fileName, mimeType string, content []byte) (model.FileReference, error)
}

// HTTPClient implements Client via the store's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the JSON payload returned by the document store.
type response struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
}

// NewHTTPClient creates an HTTP document store client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse docstore url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("docstore url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Store uploads the blob and returns the durable file reference.
func (c *HTTPClient) Store(ctx context.Context, fileName, mimeType string, content []byte) (model.FileReference, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/files")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(content))
	if err != nil {
		return model.FileReference{}, err
	}
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("X-File-Name", fileName)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.FileReference{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return model.FileReference{}, err
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			return model.FileReference{}, err
		}
		ref := model.FileReference{
			URL:      data.URL,
			FileName: data.FileName,
			FileSize: data.FileSize,
			MimeType: data.MimeType,
		}
		if ref.FileName == "" {
			ref.FileName = fileName
		}
		if ref.MimeType == "" {
			ref.MimeType = mimeType
		}
		if ref.FileSize == 0 {
			ref.FileSize = int64(len(content))
		}
		return ref, nil
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return model.FileReference{}, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("docstore request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return model.FileReference{}, fmt.Errorf("docstore error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
