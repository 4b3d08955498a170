package conversion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/hireable/cv-generator/internal/types"
)

// Converter converts document bytes between formats. The physical converter
// (remote service or local engine) is swappable behind this interface without
// touching pipeline logic.
type Converter interface {
	Convert(ctx context.Context, data []byte, from, to types.OutputFormat) ([]byte, error)
}

// Apply returns the artifact unchanged when its format already matches the
// requested one, and otherwise delegates to the converter. A failed or
// unavailable conversion aborts the request; the native artifact is never
// passed off under the requested format's label.
func Apply(ctx context.Context, conv Converter, artifact *types.Artifact, requested types.OutputFormat) (*types.Artifact, error) {
	if requested == "" || requested == artifact.Format {
		return artifact, nil
	}

	converted, err := conv.Convert(ctx, artifact.Bytes, artifact.Format, requested)
	if err != nil {
		return nil, err
	}

	return &types.Artifact{
		Bytes:       converted,
		ContentType: requested.ContentType(),
		Format:      requested,
		CreatedAt:   artifact.CreatedAt,
	}, nil
}

// HTTPConverter calls an external conversion service that accepts a multipart
// upload and responds with the converted document bytes.
type HTTPConverter struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPConverter creates a converter for the given service endpoint. The
// API key is optional; when set it is sent as the API-Key header.
func NewHTTPConverter(endpoint, apiKey string) *HTTPConverter {
	return &HTTPConverter{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Convert uploads the document and returns the converted bytes.
func (c *HTTPConverter) Convert(ctx context.Context, data []byte, from, to types.OutputFormat) ([]byte, error) {
	if c.endpoint == "" {
		return nil, &ConversionError{From: string(from), To: string(to), Message: "no conversion endpoint configured"}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "document."+from.Ext())
	if err != nil {
		return nil, &ConversionError{From: string(from), To: string(to), Message: "failed to build upload", Cause: err}
	}
	if _, err := part.Write(data); err != nil {
		return nil, &ConversionError{From: string(from), To: string(to), Message: "failed to build upload", Cause: err}
	}
	if err := mw.WriteField("to", to.Ext()); err != nil {
		return nil, &ConversionError{From: string(from), To: string(to), Message: "failed to build upload", Cause: err}
	}
	if err := mw.Close(); err != nil {
		return nil, &ConversionError{From: string(from), To: string(to), Message: "failed to build upload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, &ConversionError{From: string(from), To: string(to), Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ConversionError{From: string(from), To: string(to), Message: "conversion service unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &ConversionError{
			From:    string(from),
			To:      string(to),
			Message: fmt.Sprintf("conversion service returned %d: %s", resp.StatusCode, string(snippet)),
		}
	}

	converted, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConversionError{From: string(from), To: string(to), Message: "failed to read converted document", Cause: err}
	}
	if len(converted) == 0 {
		return nil, &ConversionError{From: string(from), To: string(to), Message: "conversion service returned an empty document"}
	}
	return converted, nil
}
