package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hireable/cv-generator/internal/types"
)

// ArtifactStore is the narrow interface the publisher needs from object
// storage. *ObjectStore satisfies it.
type ArtifactStore interface {
	Put(ctx context.Context, objectName string, data []byte, contentType string) error
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// Publisher persists finished artifacts and issues retrieval handles.
// Publication is the pipeline's only durable side effect and its point of no
// return: a handle is issued only after the write is acknowledged.
type Publisher struct {
	store ArtifactStore
	ttl   time.Duration
}

// NewPublisher creates a publisher issuing handles valid for ttl.
func NewPublisher(store ArtifactStore, ttl time.Duration) *Publisher {
	return &Publisher{store: store, ttl: ttl}
}

// Publish stores the artifact under its filename and returns a time-limited
// retrieval handle. The write must be acknowledged before any URL is signed.
func (p *Publisher) Publish(ctx context.Context, artifact *types.Artifact) (*types.RetrievalHandle, error) {
	name := artifact.Filename
	if name == "" {
		// Collisions are avoided by the timestamped filename scheme; this
		// fallback only exists for callers that skipped naming.
		name = uuid.NewString() + "." + artifact.Format.Ext()
	}

	if err := p.store.Put(ctx, name, artifact.Bytes, artifact.ContentType); err != nil {
		return nil, err
	}

	url, err := p.store.PresignedURL(ctx, name, p.ttl)
	if err != nil {
		return nil, fmt.Errorf("artifact stored but signing its URL failed: %w", err)
	}

	return &types.RetrievalHandle{
		URL:       url,
		ExpiresAt: time.Now().UTC().Add(p.ttl),
	}, nil
}

// Filename builds the artifact object name from the candidate's (possibly
// redacted) name, the generation time, and the final output format, e.g.
// "Jane Doe CV 2025-01-02-15-04-05.pdf".
func Filename(candidate types.CandidateRecord, format types.OutputFormat, at time.Time) string {
	return fmt.Sprintf("%s %s CV %s.%s",
		candidate.FirstName, candidate.Surname,
		at.Format("2006-01-02-15-04-05"), format.Ext())
}
