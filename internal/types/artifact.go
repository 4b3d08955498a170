package types

import "time"

// Artifact is a rendered document: the bytes plus the metadata the publisher
// needs to store and label them.
type Artifact struct {
	Bytes       []byte
	ContentType string
	Filename    string
	Format      OutputFormat
	CreatedAt   time.Time
}

// RetrievalHandle is a time-limited reference to a published artifact. The
// storage collaborator enforces expiry; the handle is never reused across
// requests.
type RetrievalHandle struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"-"`
}
