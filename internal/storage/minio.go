// Package storage provides object storage access for templates and published
// artifacts, backed by any S3-compatible endpoint.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

// Options configures the object store client.
type Options struct {
	Endpoint       string
	AccessKeyID    string
	SecretKey      string
	UseSSL         bool
	TemplateBucket string
	ArtifactBucket string
}

// ObjectStore is the storage collaborator for the pipeline: it fetches
// templates by identifier and persists rendered artifacts, issuing
// time-limited presigned URLs for retrieval.
type ObjectStore struct {
	client         *minio.Client
	templateBucket string
	artifactBucket string
	log            zerolog.Logger
}

// New creates an object store client and verifies the artifact bucket exists,
// creating it when missing. The template bucket is expected to be provisioned
// out of band (it holds curated templates, not request output).
func New(ctx context.Context, opts Options, log zerolog.Logger) (*ObjectStore, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("storage endpoint is required")
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	s := &ObjectStore{
		client:         client,
		templateBucket: opts.TemplateBucket,
		artifactBucket: opts.ArtifactBucket,
		log:            log,
	}

	exists, err := client.BucketExists(ctx, opts.ArtifactBucket)
	if err != nil {
		return nil, fmt.Errorf("checking artifact bucket %s: %w", opts.ArtifactBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.ArtifactBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating artifact bucket %s: %w", opts.ArtifactBucket, err)
		}
		log.Info().Str("bucket", opts.ArtifactBucket).Msg("created artifact bucket")
	}

	return s, nil
}

// Fetch downloads a template by identifier. A missing template is reported as
// an error wrapping fs.ErrNotExist so callers can distinguish it from a
// storage outage.
func (s *ObjectStore) Fetch(ctx context.Context, templateID string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.templateBucket, templateID, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetching template %s: %w", templateID, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("template %s: %w", templateID, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("reading template %s: %w", templateID, err)
	}
	return data, nil
}

// Put persists artifact bytes under the given object name. It returns only
// after the write is acknowledged by the storage backend.
func (s *ObjectStore) Put(ctx context.Context, objectName string, data []byte, contentType string) error {
	info, err := s.client.PutObject(ctx, s.artifactBucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("storing artifact %s: %w", objectName, err)
	}
	s.log.Debug().
		Str("object", objectName).
		Int64("size", info.Size).
		Str("etag", info.ETag).
		Msg("artifact stored")
	return nil
}

// PresignedURL issues a time-limited GET URL for a stored artifact.
func (s *ObjectStore) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.artifactBucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presigning artifact %s: %w", objectName, err)
	}
	return u.String(), nil
}
