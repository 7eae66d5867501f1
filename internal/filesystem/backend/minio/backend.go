package minio

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/bornholm/nokdoc/internal/filesystem/backend/staging"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Backend publishes files as objects of a bucket. Files are staged locally
// and uploaded once the mount callback succeeds.
type Backend struct {
	basePath     string
	bucket       string
	createBucket bool
	client       *minio.Client
}

// Mount implements filesystem.Backend.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, fs afero.Fs) error) error {
	if err := b.ensureBucket(ctx); err != nil {
		return errors.WithStack(err)
	}

	if err := staging.Mount(ctx, b, fn); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Upload implements staging.Uploader.
func (b *Backend) Upload(ctx context.Context, obj staging.Object, r io.Reader) error {
	key := path.Join(b.basePath, obj.Name)

	_, err := b.client.PutObject(ctx, b.bucket, key, r, obj.Size, minio.PutObjectOptions{
		ContentType: obj.ContentType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (b *Backend) ensureBucket(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return errors.WithStack(err)
	}

	if exists {
		return nil
	}

	if !b.createBucket {
		return errors.Errorf("bucket '%s' does not exist", b.bucket)
	}

	if err := b.client.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New(client *minio.Client, bucket string, basePath string, createBucket bool) *Backend {
	return &Backend{
		bucket:       bucket,
		client:       client,
		createBucket: createBucket,
		basePath:     strings.Trim(basePath, "/"),
	}
}

var (
	_ filesystem.Backend = &Backend{}
	_ staging.Uploader   = &Backend{}
)
