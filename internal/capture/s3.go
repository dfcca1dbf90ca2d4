// Package capture archives inspected request payloads.
package capture

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/isometry/delay-responder/internal/helpers"
	"github.com/pkg/errors"
)

// ObjectPutter is the subset of the S3 client used by the capturer.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 stores payloads as individual objects in a bucket.
type S3 struct {
	ctx    context.Context
	logger *slog.Logger

	config *aws.Config
	client ObjectPutter
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3Capturer creates an S3 capturer. The default AWS configuration is loaded when neither a client nor a config is provided.
func NewS3Capturer(opts ...Option) (*S3, error) {
	_inst := &S3{now: time.Now}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.bucket == "" {
		return nil, errors.New("no S3 bucket configured")
	}
	if _inst.ctx == nil {
		_inst.ctx = context.Background()
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	if _inst.client == nil {
		if _inst.config == nil {
			cfg, err := config.LoadDefaultConfig(_inst.ctx)
			if err != nil {
				return nil, errors.Wrap(err, "failed to load AWS configuration")
			}
			_inst.config = &cfg
		}
		_inst.client = s3.NewFromConfig(*_inst.config)
	}
	return _inst, nil
}

// Key returns the object key a payload captured at t for variant is stored under.
func (c *S3) Key(variant string, t time.Time) string {
	return fmt.Sprintf("%s%s.%s.json", c.prefix, t.UTC().Format(time.RFC3339Nano), variant)
}

// Capture uploads payload to the configured bucket.
func (c *S3) Capture(ctx context.Context, variant string, payload []byte) error {
	if ctx == nil {
		ctx = c.ctx
	}
	key := c.Key(variant, c.now())
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return errors.Wrapf(err, "failed to put object to S3 (%s)", apiErr.ErrorCode())
		}
		return errors.Wrap(err, "failed to put object to S3")
	}
	c.logger.Debug("captured payload", slog.String("bucket", c.bucket), slog.String("key", key))
	return nil
}
