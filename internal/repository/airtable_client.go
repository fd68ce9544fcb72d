package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/maheshrc27/content-pipeline/internal/transfer"
)

// StoreError is returned for any non-2xx answer from the record store. Message
// holds the store's own error text.
type StoreError struct {
	StatusCode int
	Message    string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("record store error (status %d): %s", e.StatusCode, e.Message)
}

type airtableClient struct {
	baseURL string
	baseID  string
	table   string
	token   string
	http    *http.Client
}

func (c *airtableClient) tableURL() string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.baseURL, "/"), c.baseID, url.PathEscape(c.table))
}

func (c *airtableClient) do(ctx context.Context, method, reqURL string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("error marshalling payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("record store request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		storeErr := &StoreError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		var parsed transfer.AirtableErrorResponse
		if json.Unmarshal(respBody, &parsed) == nil && parsed.Error.Type != "" {
			storeErr.Message = parsed.Error.String()
		}
		slog.Info(storeErr.Error())
		return storeErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}
	return nil
}
