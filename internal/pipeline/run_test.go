package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireable/cv-generator/internal/config"
	"github.com/hireable/cv-generator/internal/conversion"
	"github.com/hireable/cv-generator/internal/sections"
	"github.com/hireable/cv-generator/internal/types"
	"github.com/hireable/cv-generator/internal/validation"
)

type fakeRenderer struct {
	lastSpec *types.ComposedDocumentSpec
	err      error
}

func (f *fakeRenderer) Render(_ context.Context, spec *types.ComposedDocumentSpec) (*types.Artifact, error) {
	f.lastSpec = spec
	if f.err != nil {
		return nil, f.err
	}
	return &types.Artifact{
		Bytes:       []byte("docx-bytes"),
		ContentType: types.FormatDocx.ContentType(),
		Format:      types.FormatDocx,
		CreatedAt:   time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
	}, nil
}

type fakeConverter struct {
	called bool
	err    error
}

func (f *fakeConverter) Convert(_ context.Context, _ []byte, _, to types.OutputFormat) ([]byte, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return []byte("converted-" + string(to)), nil
}

type fakePublisher struct {
	published *types.Artifact
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, artifact *types.Artifact) (*types.RetrievalHandle, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.published = artifact
	return &types.RetrievalHandle{
		URL:       "https://storage.example/" + artifact.Filename + "?signed",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil
}

func newTestPipeline(r *fakeRenderer, c *fakeConverter, p *fakePublisher, profile *config.Profile) *Pipeline {
	return New(r, c, p, profile, "default.docx", nil, zerolog.Nop())
}

func baseRequest() *types.CustomizationRequest {
	return &types.CustomizationRequest{
		Data: &types.CandidateRecord{
			FirstName: "Jane",
			Surname:   "Doe",
			Email:     "jane@corp.example",
			Skills:    []string{"Go"},
		},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	renderer := &fakeRenderer{}
	converter := &fakeConverter{}
	publisher := &fakePublisher{}
	pipe := newTestPipeline(renderer, converter, publisher, nil)

	handle, err := pipe.Run(context.Background(), baseRequest())
	require.NoError(t, err)
	require.NotNil(t, handle)

	assert.Contains(t, handle.URL, "Jane Doe CV")
	assert.Contains(t, handle.URL, ".docx")
	assert.False(t, converter.called)

	require.NotNil(t, renderer.lastSpec)
	assert.Equal(t, "default.docx", renderer.lastSpec.TemplateID)
	assert.Equal(t, sections.DefaultOrder(), renderer.lastSpec.Sections)
}

func TestRun_ValidationFailureStopsEarly(t *testing.T) {
	renderer := &fakeRenderer{}
	pipe := newTestPipeline(renderer, &fakeConverter{}, &fakePublisher{}, nil)

	req := baseRequest()
	req.SectionOrder = []string{"references"}

	_, err := pipe.Run(context.Background(), req)
	require.Error(t, err)

	var reqErr *validation.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Nil(t, renderer.lastSpec)
}

func TestRun_AnonymizationApplied(t *testing.T) {
	renderer := &fakeRenderer{}
	publisher := &fakePublisher{}
	pipe := newTestPipeline(renderer, &fakeConverter{}, publisher, nil)

	req := baseRequest()
	req.IsAnonymized = true

	handle, err := pipe.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "J.", renderer.lastSpec.Candidate.FirstName)
	assert.Equal(t, "D.", renderer.lastSpec.Candidate.Surname)
	assert.Equal(t, "candidate@example.com", renderer.lastSpec.Candidate.Email)

	// The redacted name flows through to the published filename and URL.
	assert.Contains(t, publisher.published.Filename, "J. D. CV")
	assert.Contains(t, handle.URL, "J. D. CV")
}

func TestRun_ConversionRequested(t *testing.T) {
	renderer := &fakeRenderer{}
	converter := &fakeConverter{}
	publisher := &fakePublisher{}
	pipe := newTestPipeline(renderer, converter, publisher, nil)

	req := baseRequest()
	req.OutputFormat = types.FormatPDF

	_, err := pipe.Run(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, converter.called)
	require.NotNil(t, publisher.published)
	assert.Equal(t, types.FormatPDF, publisher.published.Format)
	assert.Equal(t, "application/pdf", publisher.published.ContentType)
	assert.Equal(t, []byte("converted-pdf"), publisher.published.Bytes)
	assert.Contains(t, publisher.published.Filename, ".pdf")
}

func TestRun_ConversionFailureAbortsBeforePublish(t *testing.T) {
	converter := &fakeConverter{err: &conversion.ConversionError{From: "docx", To: "pdf", Message: "engine down"}}
	publisher := &fakePublisher{}
	pipe := newTestPipeline(&fakeRenderer{}, converter, publisher, nil)

	req := baseRequest()
	req.OutputFormat = types.FormatPDF

	_, err := pipe.Run(context.Background(), req)
	require.Error(t, err)

	var convErr *conversion.ConversionError
	assert.ErrorAs(t, err, &convErr)
	assert.Nil(t, publisher.published)
}

func TestRun_SectionControlsFlowThrough(t *testing.T) {
	renderer := &fakeRenderer{}
	pipe := newTestPipeline(renderer, &fakeConverter{}, &fakePublisher{}, nil)

	req := baseRequest()
	req.SectionOrder = []string{"skills", "personal_info"}
	req.SectionVisibility = map[string]bool{"publications": false}

	_, err := pipe.Run(context.Background(), req)
	require.NoError(t, err)

	got := renderer.lastSpec.Sections
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, sections.Skills, got[0])
	assert.Equal(t, sections.PersonalInfo, got[1])
	assert.NotContains(t, got, sections.Publications)
}

func TestRun_ProfileDefaultsApply(t *testing.T) {
	renderer := &fakeRenderer{}
	profile := &config.Profile{
		DefaultTemplate:   "agency.docx",
		SectionVisibility: map[string]bool{"earlier_career": false},
	}
	pipe := newTestPipeline(renderer, &fakeConverter{}, &fakePublisher{}, profile)

	_, err := pipe.Run(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, "agency.docx", renderer.lastSpec.TemplateID)
	assert.NotContains(t, renderer.lastSpec.Sections, sections.EarlierCareer)
}

func TestRun_RequestOverridesProfile(t *testing.T) {
	renderer := &fakeRenderer{}
	profile := &config.Profile{
		DefaultTemplate:   "agency.docx",
		SectionVisibility: map[string]bool{"earlier_career": false},
	}
	pipe := newTestPipeline(renderer, &fakeConverter{}, &fakePublisher{}, profile)

	req := baseRequest()
	req.Template = "modern.docx"
	req.SectionVisibility = map[string]bool{"earlier_career": true}

	_, err := pipe.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "modern.docx", renderer.lastSpec.TemplateID)
	assert.Contains(t, renderer.lastSpec.Sections, sections.EarlierCareer)
}

func TestRun_BrandingAttached(t *testing.T) {
	renderer := &fakeRenderer{}
	pipe := newTestPipeline(renderer, &fakeConverter{}, &fakePublisher{}, nil)

	req := baseRequest()
	req.RecruiterProfile = &types.RecruiterProfile{AgencyName: "Hireable", FirstName: "Sam"}

	_, err := pipe.Run(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, renderer.lastSpec.Recruiter)
	assert.Equal(t, "Hireable", renderer.lastSpec.Recruiter.AgencyName)
	// The candidate record never absorbs branding fields.
	assert.Equal(t, "Jane", renderer.lastSpec.Candidate.FirstName)
}

func TestRun_InputRequestNotMutated(t *testing.T) {
	pipe := newTestPipeline(&fakeRenderer{}, &fakeConverter{}, &fakePublisher{}, nil)

	req := baseRequest()
	req.IsAnonymized = true
	original := *req.Data

	_, err := pipe.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, original, *req.Data)
}
