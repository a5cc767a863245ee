// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package blob implements the photo byte-storage boundary on top of an
S3-compatible object store.

# Architecture

The data core treats photo content as opaque: entities carry only a filename
reference, never bytes. This package is the single place where bytes cross the
process boundary — the upload handler streams the multipart body here and hands
the resulting key to the domain service.

Works against AWS S3, Cloudflare R2, and MinIO (via the BaseEndpoint override).
*/
package blob

import (
	stdctx "context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/taibuivan/pictura/internal/platform/config"
)

// presignTTL is how long a generated download URL stays valid.
const presignTTL = 15 * time.Minute

// Store wraps an S3 client scoped to the photo bucket.
type Store struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	logger        *slog.Logger
}

// NewStore builds an S3-backed [Store] from application configuration.
//
// # Parameters
//   - context: Context for credential resolution.
//   - cfg: Application configuration carrying bucket, region, and endpoint.
//   - logger: Structured logger for storage events.
func NewStore(context stdctx.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	loadOptions := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}

	// Static credentials are used for S3-compatible stores (R2, MinIO).
	// When absent, the default AWS credential chain applies.
	if cfg.S3AccessKey != "" {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("blob: failed to load storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		if cfg.S3Endpoint != "" {
			options.BaseEndpoint = aws.String(cfg.S3Endpoint)
			options.UsePathStyle = true
		}
	})

	logger.Info("blob store configured",
		slog.String("bucket", cfg.S3Bucket),
		slog.String("region", cfg.S3Region),
	)

	return &Store{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.S3Bucket,
		logger:        logger,
	}, nil
}

/*
Put streams an uploaded photo body into the bucket under the given key.

Parameters:
  - context: context.Context
  - key: string (The opaque filename reference stored by the data core)
  - body: io.Reader (Raw image bytes from the multipart upload)
  - contentType: string

Returns:
  - error: Upload failures
*/
func (store *Store) Put(context stdctx.Context, key string, body io.Reader, contentType string) error {
	_, err := store.client.PutObject(context, &s3.PutObjectInput{
		Bucket:      aws.String(store.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("blob: failed to store object %q: %w", key, err)
	}

	return nil
}

/*
PresignGet returns a time-limited download URL for a stored photo.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - string: Presigned HTTPS URL, valid for [presignTTL]
  - error: Signing failures
*/
func (store *Store) PresignGet(context stdctx.Context, key string) (string, error) {
	request, err := store.presignClient.PresignGetObject(context, &s3.GetObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("blob: failed to presign object %q: %w", key, err)
	}

	return request.URL, nil
}

/*
Delete removes a stored photo body. Used by maintenance tooling; the data core
never hard-deletes blobs on soft-delete, only purge tooling does.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - error: Deletion failures
*/
func (store *Store) Delete(context stdctx.Context, key string) error {
	_, err := store.client.DeleteObject(context, &s3.DeleteObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("blob: failed to delete object %q: %w", key, err)
	}

	return nil
}
