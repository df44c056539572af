package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore is the behavior the pipeline depends on. Object storage is
// authoritative for file bytes; local copies are disposable.
type ObjectStore interface {
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Put(ctx context.Context, path string, data []byte, contentType string) error
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	Stat(ctx context.Context, path string) (ObjectInfo, error)
}

// ObjectInfo carries the subset of object metadata the pipeline reads.
type ObjectInfo struct {
	Size         int64
	LastModified time.Time
	ContentType  string
}

// ErrObjectNotFound is returned when the requested path has no object.
var ErrObjectNotFound = errors.New("object not found")

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type MinioStore struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

func NewMinioStore(cfg Config, logger *slog.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}
	return &MinioStore{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %q: %w", s.bucket, err)
	}
	s.logger.Info("created storage bucket", "bucket", s.bucket)
	return nil
}

func (s *MinioStore) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", path, err)
	}
	// GetObject is lazy; a missing key only surfaces on first read.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if isNoSuchKey(err) {
			return nil, fmt.Errorf("get object %q: %w", path, ErrObjectNotFound)
		}
		return nil, fmt.Errorf("stat object %q: %w", path, err)
	}
	return obj, nil
}

func (s *MinioStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		path,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return fmt.Errorf("put object %q: %w", path, err)
	}
	return nil
}

func (s *MinioStore) Delete(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object %q: %w", path, err)
	}
	return nil
}

func (s *MinioStore) Exists(ctx context.Context, path string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat object %q: %w", path, err)
	}
	return true, nil
}

func (s *MinioStore) Stat(ctx context.Context, path string) (ObjectInfo, error) {
	info, err := s.client.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return ObjectInfo{}, fmt.Errorf("stat object %q: %w", path, ErrObjectNotFound)
		}
		return ObjectInfo{}, fmt.Errorf("stat object %q: %w", path, err)
	}
	return ObjectInfo{
		Size:         info.Size,
		LastModified: info.LastModified,
		ContentType:  info.ContentType,
	}, nil
}

func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}
