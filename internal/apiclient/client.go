// Package apiclient is the HTTP client the bot and the admin panel use to
// talk to the backend. Every call is retried a fixed number of times with a
// fixed delay; exhausted retries surface as ErrUnreachable so callers can
// show a canned connectivity message.
package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	ConnectionAttempts = 3
	RetryDelay         = 300 * time.Millisecond
)

// ErrUnreachable marks an API call that failed on the transport level after
// all retries.
var ErrUnreachable = errors.New("backend API is unreachable")

// APIError is a non-success response from the backend with its parsed
// detail string.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
}

// Client calls the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the given base URL (including the path prefix).
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// do performs one request with the fixed retry policy. Transport failures
// are retried; HTTP-level errors are returned immediately as *APIError.
func (c *Client) do(method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	var lastErr error
	for attempt := 0; attempt < ConnectionAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(RetryDelay)
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequest(method, c.baseURL+path, reader)
		if err != nil {
			return err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		err = parseResponse(resp, out)
		log.Printf("API_REQUEST %s %s, status %d", method, path, resp.StatusCode)
		return err
	}

	log.Printf("API_REQUEST %s %s failed after %d attempts: %v", method, path, ConnectionAttempts, lastErr)
	return ErrUnreachable
}

// parseResponse decodes a success body into out or builds an APIError from
// the standard {"detail": ...} error body, with a generic fallback when the
// body is unparseable.
func parseResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}

	apiErr := &APIError{Status: resp.StatusCode, Detail: "error while processing the request"}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	}
	return apiErr
}

func (c *Client) get(path string, out any) error {
	return c.do(http.MethodGet, path, nil, out)
}

func (c *Client) post(path string, body, out any) error {
	return c.do(http.MethodPost, path, body, out)
}

func (c *Client) patch(path string, body, out any) error {
	return c.do(http.MethodPatch, path, body, out)
}

func (c *Client) delete(path string) error {
	return c.do(http.MethodDelete, path, nil, nil)
}
