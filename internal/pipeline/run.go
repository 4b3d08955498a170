// Package pipeline provides the high-level orchestration for one CV
// generation request: validate, compose, redact, brand, render, convert,
// publish. Every entity it touches is request-scoped; the only durable side
// effect is artifact publication, which is also the last step.
package pipeline

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hireable/cv-generator/internal/branding"
	"github.com/hireable/cv-generator/internal/config"
	"github.com/hireable/cv-generator/internal/conversion"
	"github.com/hireable/cv-generator/internal/db"
	"github.com/hireable/cv-generator/internal/redact"
	"github.com/hireable/cv-generator/internal/rendering"
	"github.com/hireable/cv-generator/internal/sections"
	"github.com/hireable/cv-generator/internal/storage"
	"github.com/hireable/cv-generator/internal/types"
	"github.com/hireable/cv-generator/internal/validation"
)

// Renderer merges a composed spec into its template.
type Renderer interface {
	Render(ctx context.Context, spec *types.ComposedDocumentSpec) (*types.Artifact, error)
}

// Publisher persists an artifact and issues a retrieval handle.
type Publisher interface {
	Publish(ctx context.Context, artifact *types.Artifact) (*types.RetrievalHandle, error)
}

// Pipeline wires the collaborators for CV generation. The zero value is not
// usable; construct with New.
type Pipeline struct {
	renderer     Renderer
	converter    conversion.Converter
	publisher    Publisher
	profile      *config.Profile
	placeholders redact.Placeholders
	defaultTmpl  string
	history      *db.DB
	log          zerolog.Logger
}

// New creates a pipeline. history may be nil; profile may be empty but not
// nil fields-wise (use &config.Profile{}).
func New(renderer Renderer, converter conversion.Converter, publisher Publisher,
	profile *config.Profile, defaultTemplate string, history *db.DB, log zerolog.Logger) *Pipeline {
	if profile == nil {
		profile = &config.Profile{}
	}
	return &Pipeline{
		renderer:     renderer,
		converter:    converter,
		publisher:    publisher,
		profile:      profile,
		placeholders: redact.DefaultPlaceholders,
		defaultTmpl:  defaultTemplate,
		history:      history,
		log:          log,
	}
}

// Run processes one customization request end to end and returns the
// retrieval handle for the published artifact. Any failing step aborts the
// remaining steps; nothing upstream of publication leaves durable state.
func (p *Pipeline) Run(ctx context.Context, req *types.CustomizationRequest) (*types.RetrievalHandle, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	spec, err := p.composeSpec(ctx, req)
	if err != nil {
		return nil, err
	}

	genID, err := p.history.CreateGeneration(ctx,
		spec.Candidate.FirstName+" "+spec.Candidate.Surname,
		spec.TemplateID, string(spec.Format), req.IsAnonymized)
	if err != nil {
		// History is best effort; generation proceeds without it.
		p.log.Warn().Err(err).Msg("failed to record generation start")
	}

	handle, err := p.produce(ctx, spec)
	if err != nil {
		if hErr := p.history.FailGeneration(ctx, genID, err.Error()); hErr != nil {
			p.log.Warn().Err(hErr).Msg("failed to record generation failure")
		}
		return nil, err
	}

	if hErr := p.history.CompleteGeneration(ctx, genID, spec.ObjectName, handle.ExpiresAt); hErr != nil {
		p.log.Warn().Err(hErr).Msg("failed to record generation completion")
	}
	return handle, nil
}

// composedSpec pairs the immutable rendering plan with the object name the
// publisher will use, so the history record can reference it.
type composedSpec struct {
	types.ComposedDocumentSpec
	ObjectName string
}

// composeSpec resolves the request into the immutable rendering plan. The
// three transformations are independent pure functions and run concurrently;
// their inputs are never shared mutable state.
func (p *Pipeline) composeSpec(ctx context.Context, req *types.CustomizationRequest) (*composedSpec, error) {
	templateID := req.Template
	if templateID == "" {
		templateID = p.profile.DefaultTemplate
	}
	if templateID == "" {
		templateID = p.defaultTmpl
	}

	format := req.OutputFormat
	if format == "" {
		format = rendering.NativeFormat(templateID)
	}

	var (
		order     []sections.ID
		candidate types.CandidateRecord
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		order = sections.Compose(req.SectionOrder, req.SectionVisibility, p.profile.SectionVisibility)
		return nil
	})
	g.Go(func() error {
		candidate = redact.Apply(*req.Data, req.IsAnonymized, p.placeholders)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	spec := types.ComposedDocumentSpec{
		Sections:   order,
		Candidate:  candidate,
		TemplateID: templateID,
		Format:     format,
	}
	spec = branding.Overlay(spec, req.RecruiterProfile)

	return &composedSpec{ComposedDocumentSpec: spec}, nil
}

// produce runs the strictly sequential tail of the pipeline: render, convert
// when the requested format differs from the native one, then publish.
func (p *Pipeline) produce(ctx context.Context, spec *composedSpec) (*types.RetrievalHandle, error) {
	artifact, err := p.renderer.Render(ctx, &spec.ComposedDocumentSpec)
	if err != nil {
		return nil, err
	}

	artifact, err = conversion.Apply(ctx, p.converter, artifact, spec.Format)
	if err != nil {
		return nil, err
	}

	artifact.Filename = storage.Filename(spec.Candidate, artifact.Format, artifact.CreatedAt)
	spec.ObjectName = artifact.Filename

	handle, err := p.publisher.Publish(ctx, artifact)
	if err != nil {
		return nil, err
	}

	p.log.Info().
		Str("template", spec.TemplateID).
		Str("format", string(artifact.Format)).
		Str("object", artifact.Filename).
		Time("expires_at", handle.ExpiresAt).
		Msg("CV generated")
	return handle, nil
}
