package filestore

import (
	"context"
	"io"

	"github.com/kurin/blazer/b2"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

// B2Store saves files as objects of a Backblaze B2 bucket.
type B2Store struct {
	client *b2.Client
	bucket *b2.Bucket
}

var _ core.FileStore = (*B2Store)(nil)

func NewB2Store(ctx context.Context, conf core.B2Config) (*B2Store, error) {
	if conf.KeyID == "" || conf.AppKey == "" || conf.Bucket == "" {
		return nil, errors.New("missing B2 key ID, app key or bucket")
	}
	client, err := b2.NewClient(ctx, conf.KeyID, conf.AppKey)
	if err != nil {
		return nil, errors.Wrap(err, "creating b2 client")
	}
	bucket, err := client.Bucket(ctx, conf.Bucket)
	if err != nil {
		return nil, errors.Wrapf(err, "getting bucket %s", conf.Bucket)
	}
	return &B2Store{client: client, bucket: bucket}, nil
}

func (s *B2Store) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	w := s.bucket.Object(name).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", errors.Wrap(err, "writing object")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "closing object writer")
	}
	return name, nil
}
