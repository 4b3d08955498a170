// Package parsing provides the client for the external CV parsing service
// used by the upload entry point.
package parsing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/hireable/cv-generator/internal/adapter"
)

// ServiceError indicates the parsing service was unreachable or rejected the
// upload. StatusCode is zero when the service could not be reached at all.
type ServiceError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parser service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parser service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// Client calls the parsing service over HTTP.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a parsing service client for the given endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 120 * time.Second},
	}
}

// Parse uploads a raw CV file (and an optional job description) and returns
// the service's parsed record in its external shape. Mapping that shape to
// the candidate data model is the adapter's job, not this client's.
func (c *Client) Parse(ctx context.Context, filename string, file io.Reader, jobDescription io.Reader) (*adapter.ParsedCV, error) {
	if c.endpoint == "" {
		return nil, &ServiceError{Message: "no parser endpoint configured"}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("cv", filename)
	if err != nil {
		return nil, &ServiceError{Message: "failed to build upload", Cause: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, &ServiceError{Message: "failed to read CV file", Cause: err}
	}

	if jobDescription != nil {
		jd, err := mw.CreateFormFile("jobDescription", "job_description.txt")
		if err != nil {
			return nil, &ServiceError{Message: "failed to build upload", Cause: err}
		}
		if _, err := io.Copy(jd, jobDescription); err != nil {
			return nil, &ServiceError{Message: "failed to read job description", Cause: err}
		}
	}

	if err := mw.Close(); err != nil {
		return nil, &ServiceError{Message: "failed to build upload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, &ServiceError{Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ServiceError{Message: "parser service unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &ServiceError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("parser service returned %d: %s", resp.StatusCode, string(snippet)),
		}
	}

	var parsed adapter.ParsedCV
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &ServiceError{Message: "failed to decode parsed record", Cause: err}
	}
	return &parsed, nil
}
