package tools

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3vectors"
	"github.com/aws/aws-sdk-go-v2/service/s3vectors/types"

	"github.com/kgribble/s3vmcp/internal/schema"
)

// CreateVectorBucket creates a vector bucket, defaulting to SSE-S3
// encryption when the request carries no encryption config.
func (s *Service) CreateVectorBucket(ctx context.Context, req *schema.CreateVectorBucketRequest) (any, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	enc := &types.EncryptionConfiguration{
		SseType: types.SseType(req.EncryptionConfig.SSEType),
	}
	if req.EncryptionConfig.KMSKeyARN != "" {
		enc.KmsKeyArn = aws.String(req.EncryptionConfig.KMSKeyARN)
	}

	return s.api.CreateVectorBucket(ctx, &s3vectors.CreateVectorBucketInput{
		VectorBucketName:        aws.String(req.BucketName),
		EncryptionConfiguration: enc,
	})
}

// GetVectorBucket retrieves bucket metadata by name, or by ARN when one is
// supplied.
func (s *Service) GetVectorBucket(ctx context.Context, req *schema.GetVectorBucketRequest) (any, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	in := &s3vectors.GetVectorBucketInput{}
	if req.BucketARN != "" {
		in.VectorBucketArn = aws.String(req.BucketARN)
	} else {
		in.VectorBucketName = aws.String(req.BucketName)
	}

	return s.api.GetVectorBucket(ctx, in)
}

// ListVectorBuckets lists vector buckets. Optional fields are forwarded
// only when set so the service defaults apply.
func (s *Service) ListVectorBuckets(ctx context.Context, req *schema.ListVectorBucketsRequest) (any, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	in := &s3vectors.ListVectorBucketsInput{}
	if req.MaxResults > 0 {
		in.MaxResults = aws.Int32(int32(req.MaxResults))
	}
	if req.NextToken != "" {
		in.NextToken = aws.String(req.NextToken)
	}
	if req.Prefix != "" {
		in.Prefix = aws.String(req.Prefix)
	}

	return s.api.ListVectorBuckets(ctx, in)
}
