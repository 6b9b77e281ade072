package classifier

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
)

// MaxImageBytes bounds the size of a downloaded image.
const MaxImageBytes = 20 << 20

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher downloads images with a single GET.
type HTTPFetcher struct {
	client   *http.Client
	maxBytes int64
}

func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{
		client:   client,
		maxBytes: MaxImageBytes,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &models.FetchError{URL: url, Reason: "invalid url", Err: err}
	}
	req.Header.Set("Accept", "image/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &models.FetchError{URL: url, Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &models.FetchError{URL: url, StatusCode: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !isImageContentType(ct) {
		return nil, &models.FetchError{URL: url, StatusCode: resp.StatusCode, Reason: fmt.Sprintf("unexpected content type %q", ct)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, &models.FetchError{URL: url, StatusCode: resp.StatusCode, Reason: "read body", Err: err}
	}
	if int64(len(body)) > f.maxBytes {
		return nil, &models.FetchError{URL: url, StatusCode: resp.StatusCode, Reason: fmt.Sprintf("image exceeds %d bytes", f.maxBytes)}
	}

	return body, nil
}

func isImageContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "image/") || mediaType == "application/octet-stream"
}
