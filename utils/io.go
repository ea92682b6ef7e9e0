package utils

import (
	"context"
	"fmt"
	"io"
	"missensecolor/models"
	"net/http"
	"os"
)

func NewHttpClient(cfg *models.Config) *http.Client {
	return &http.Client{Timeout: cfg.Http.Timeout}
}

// GetRequestBody performs a GET and returns the whole body.
// Non-2xx statuses are reported as errors.
func GetRequestBody(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("%d %s for url: %s", response.StatusCode, http.StatusText(response.StatusCode), url)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", url, err)
	}
	return body, nil
}

// WriteScript writes the joined command lines in one go.
func WriteScript(path string, script models.Script) error {
	return os.WriteFile(path, []byte(script.String()), 0644)
}
