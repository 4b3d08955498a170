package validation

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/hireable/cv-generator/internal/sections"
	"github.com/hireable/cv-generator/internal/types"
	"github.com/hireable/cv-generator/schemas"
)

var validate = validator.New()

// candidateSchema is compiled once; the embedded schema is part of the build,
// so a compile failure is a programming error.
var candidateSchema = gojsonschema.NewStringLoader(schemas.CandidateRecord)

// ParseAndValidate decodes a raw request payload into a typed
// CustomizationRequest and checks every constraint, collecting all violations
// into a single *RequestError. It performs no network or storage I/O.
func ParseAndValidate(raw []byte) (*types.CustomizationRequest, error) {
	var req types.CustomizationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &RequestError{Violations: []Violation{{
			Field:   "(body)",
			Code:    CodeValidation,
			Message: fmt.Sprintf("invalid JSON: %v", err),
		}}}
	}

	if err := Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validate checks an already-decoded request. The request is not modified.
func Validate(req *types.CustomizationRequest) error {
	reqErr := &RequestError{}

	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				reqErr.add(fe.Field(), CodeValidation, fmt.Sprintf("failed %q constraint", fe.Tag()))
			}
		} else {
			reqErr.add("(request)", CodeValidation, err.Error())
		}
	}

	if req.Data != nil {
		checkCandidateData(req.Data, reqErr)
	}

	if req.OutputFormat != "" && !types.ValidFormat(req.OutputFormat) {
		reqErr.add("outputFormat", CodeUnsupportedFormat,
			fmt.Sprintf("unsupported output format %q (accepted: doc, docx, pdf)", req.OutputFormat))
	}

	// Unknown identifiers are rejected, not dropped: a typo in sectionOrder
	// must never silently omit a section from the document.
	for i, s := range req.SectionOrder {
		if !sections.Valid(s) {
			reqErr.add(fmt.Sprintf("sectionOrder[%d]", i), CodeUnknownSection,
				fmt.Sprintf("unknown section identifier %q", s))
		}
	}
	for s := range req.SectionVisibility {
		if !sections.Valid(s) {
			reqErr.add("sectionVisibility."+s, CodeUnknownSection,
				fmt.Sprintf("unknown section identifier %q", s))
		}
	}

	if len(reqErr.Violations) > 0 {
		return reqErr
	}
	return nil
}

// checkCandidateData validates the data document against the embedded
// candidate record schema, appending one violation per schema failure.
func checkCandidateData(data *types.CandidateRecord, reqErr *RequestError) {
	result, err := gojsonschema.Validate(candidateSchema, gojsonschema.NewGoLoader(data))
	if err != nil {
		reqErr.add("data", CodeValidation, fmt.Sprintf("schema validation failed: %v", err))
		return
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" || field == "(root)" {
			field = "data"
		} else {
			field = "data." + field
		}
		reqErr.add(field, CodeValidation, desc.Description())
	}
}
