// Package s3vec provides the S3 Vectors transport used by the tool
// dispatcher. The real transport wraps the AWS SDK client; the stub
// transport answers with empty well-formed responses for offline use.
package s3vec

import (
	"context"
	"fmt"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3vectors"
	"github.com/charmbracelet/log"
)

// API is the subset of the S3 Vectors service surface the tools invoke.
// *s3vectors.Client satisfies it.
type API interface {
	CreateVectorBucket(ctx context.Context, in *s3vectors.CreateVectorBucketInput, optFns ...func(*s3vectors.Options)) (*s3vectors.CreateVectorBucketOutput, error)
	GetVectorBucket(ctx context.Context, in *s3vectors.GetVectorBucketInput, optFns ...func(*s3vectors.Options)) (*s3vectors.GetVectorBucketOutput, error)
	ListVectorBuckets(ctx context.Context, in *s3vectors.ListVectorBucketsInput, optFns ...func(*s3vectors.Options)) (*s3vectors.ListVectorBucketsOutput, error)
	CreateIndex(ctx context.Context, in *s3vectors.CreateIndexInput, optFns ...func(*s3vectors.Options)) (*s3vectors.CreateIndexOutput, error)
	GetIndex(ctx context.Context, in *s3vectors.GetIndexInput, optFns ...func(*s3vectors.Options)) (*s3vectors.GetIndexOutput, error)
	ListIndexes(ctx context.Context, in *s3vectors.ListIndexesInput, optFns ...func(*s3vectors.Options)) (*s3vectors.ListIndexesOutput, error)
	ListVectors(ctx context.Context, in *s3vectors.ListVectorsInput, optFns ...func(*s3vectors.Options)) (*s3vectors.ListVectorsOutput, error)
}

// Config carries the credentials and region used to build the AWS client.
type Config struct {
	Region          string
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
}

// LazyClient defers AWS client construction until the first call. Listing
// tools, answering pings, and serving stubbed deployments must not require
// a valid credential chain.
type LazyClient struct {
	cfg Config

	once   sync.Once
	client *s3vectors.Client
	err    error
}

// NewLazyClient returns a transport that builds the underlying AWS client
// on first use.
func NewLazyClient(cfg Config) *LazyClient {
	return &LazyClient{cfg: cfg}
}

func (l *LazyClient) api(ctx context.Context) (*s3vectors.Client, error) {
	l.once.Do(func() {
		opts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(l.cfg.Region),
		}
		if l.cfg.Profile != "" {
			opts = append(opts, awsconfig.WithSharedConfigProfile(l.cfg.Profile))
		}
		if l.cfg.AccessKeyID != "" && l.cfg.SecretAccessKey != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(l.cfg.AccessKeyID, l.cfg.SecretAccessKey, ""),
			))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			l.err = fmt.Errorf("loading AWS config: %w", err)
			return
		}

		log.Debug("Initialized S3 Vectors client", "region", l.cfg.Region, "profile", l.cfg.Profile)
		l.client = s3vectors.NewFromConfig(awsCfg)
	})
	return l.client, l.err
}

func (l *LazyClient) CreateVectorBucket(ctx context.Context, in *s3vectors.CreateVectorBucketInput, optFns ...func(*s3vectors.Options)) (*s3vectors.CreateVectorBucketOutput, error) {
	c, err := l.api(ctx)
	if err != nil {
		return nil, err
	}
	return c.CreateVectorBucket(ctx, in, optFns...)
}

func (l *LazyClient) GetVectorBucket(ctx context.Context, in *s3vectors.GetVectorBucketInput, optFns ...func(*s3vectors.Options)) (*s3vectors.GetVectorBucketOutput, error) {
	c, err := l.api(ctx)
	if err != nil {
		return nil, err
	}
	return c.GetVectorBucket(ctx, in, optFns...)
}

func (l *LazyClient) ListVectorBuckets(ctx context.Context, in *s3vectors.ListVectorBucketsInput, optFns ...func(*s3vectors.Options)) (*s3vectors.ListVectorBucketsOutput, error) {
	c, err := l.api(ctx)
	if err != nil {
		return nil, err
	}
	return c.ListVectorBuckets(ctx, in, optFns...)
}

func (l *LazyClient) CreateIndex(ctx context.Context, in *s3vectors.CreateIndexInput, optFns ...func(*s3vectors.Options)) (*s3vectors.CreateIndexOutput, error) {
	c, err := l.api(ctx)
	if err != nil {
		return nil, err
	}
	return c.CreateIndex(ctx, in, optFns...)
}

func (l *LazyClient) GetIndex(ctx context.Context, in *s3vectors.GetIndexInput, optFns ...func(*s3vectors.Options)) (*s3vectors.GetIndexOutput, error) {
	c, err := l.api(ctx)
	if err != nil {
		return nil, err
	}
	return c.GetIndex(ctx, in, optFns...)
}

func (l *LazyClient) ListIndexes(ctx context.Context, in *s3vectors.ListIndexesInput, optFns ...func(*s3vectors.Options)) (*s3vectors.ListIndexesOutput, error) {
	c, err := l.api(ctx)
	if err != nil {
		return nil, err
	}
	return c.ListIndexes(ctx, in, optFns...)
}

func (l *LazyClient) ListVectors(ctx context.Context, in *s3vectors.ListVectorsInput, optFns ...func(*s3vectors.Options)) (*s3vectors.ListVectorsOutput, error) {
	c, err := l.api(ctx)
	if err != nil {
		return nil, err
	}
	return c.ListVectors(ctx, in, optFns...)
}
