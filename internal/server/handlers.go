package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/hireable/cv-generator/internal/adapter"
	"github.com/hireable/cv-generator/internal/types"
	"github.com/hireable/cv-generator/internal/validation"
)

const (
	maxRequestBody = 10 << 20 // JSON payloads
	maxUploadSize  = 32 << 20 // multipart CV uploads
)

// generateResponse is the body returned by both generation endpoints. Data is
// only present on the upload path, where the caller has not seen the parsed
// record yet.
type generateResponse struct {
	Data *types.CandidateRecord `json:"data,omitempty"`
	URL  string                 `json:"url"`
}

// handleGenerate runs the pipeline for a fully-specified JSON request and
// returns the retrieval URL for the published document.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	req, err := validation.ParseAndValidate(body)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	handle, err := s.pipeline.Run(r.Context(), req)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, generateResponse{URL: handle.URL})
}

// handleGenerateUpload accepts a raw CV file, sends it to the parsing service,
// maps the parsed record into the candidate data model, and runs the same
// pipeline as handleGenerate. The response includes the parsed record so the
// caller can review or edit it for a follow-up /generate call.
func (s *Server) handleGenerateUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	cvFile, cvHeader, err := r.FormFile("cv")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing cv file")
		return
	}
	defer cvFile.Close()

	var jobDescription io.Reader
	if jd, _, err := r.FormFile("jobDescription"); err == nil {
		defer jd.Close()
		jobDescription = jd
	}

	req := &types.CustomizationRequest{}
	if raw := r.FormValue("options"); raw != "" {
		if err := json.Unmarshal([]byte(raw), req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid options JSON")
			return
		}
	}

	parsed, err := s.parser.Parse(r.Context(), cvHeader.Filename, cvFile, jobDescription)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	record, err := adapter.ToCandidateRecord(parsed)
	if err != nil {
		s.pipelineError(w, err)
		return
	}
	req.Data = record

	handle, err := s.pipeline.Run(r.Context(), req)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, generateResponse{Data: record, URL: handle.URL})
}

// pipelineError writes the error body for a failed generation. Validation
// failures carry the full violation list so the caller can fix every field in
// one round trip.
func (s *Server) pipelineError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	var reqErr *validation.RequestError
	if errors.As(err, &reqErr) {
		s.jsonResponse(w, status, map[string]any{
			"error":      "request validation failed",
			"violations": reqErr.Violations,
		})
		return
	}

	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Msg("generation failed")
	}
	s.errorResponse(w, status, err.Error())
}
