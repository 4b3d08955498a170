package server

import (
	"errors"
	"net/http"

	"github.com/hireable/cv-generator/internal/adapter"
	"github.com/hireable/cv-generator/internal/conversion"
	"github.com/hireable/cv-generator/internal/parsing"
	"github.com/hireable/cv-generator/internal/rendering"
	"github.com/hireable/cv-generator/internal/validation"
)

// HTTPStatus maps a pipeline error to the HTTP status code the caller sees.
// Caller mistakes map to 4xx, upstream collaborator failures to 502, and
// everything else to 500.
func HTTPStatus(err error) int {
	var (
		reqErr      *validation.RequestError
		notFound    *rendering.TemplateNotFoundError
		mappingErr  *adapter.MappingError
		convErr     *conversion.ConversionError
		parseErr    *parsing.ServiceError
		renderError *rendering.RenderError
	)
	switch {
	case errors.As(err, &reqErr), errors.As(err, &mappingErr):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &convErr), errors.As(err, &parseErr):
		return http.StatusBadGateway
	case errors.As(err, &renderError):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
