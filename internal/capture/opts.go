package capture

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

type Option func(*S3)

func WithContext(ctx context.Context) Option {
	return func(c *S3) {
		c.ctx = ctx
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *S3) {
		c.logger = logger
	}
}

func WithConfig(cfg *aws.Config) Option {
	return func(c *S3) {
		c.config = cfg
	}
}

func WithClient(client ObjectPutter) Option {
	return func(c *S3) {
		c.client = client
	}
}

func WithBucket(bucket string) Option {
	return func(c *S3) {
		c.bucket = bucket
	}
}

func WithPrefix(prefix string) Option {
	return func(c *S3) {
		c.prefix = prefix
	}
}

// WithClock overrides the time source used for object keys.
func WithClock(now func() time.Time) Option {
	return func(c *S3) {
		c.now = now
	}
}
