package tools

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3vectors"
	"github.com/aws/aws-sdk-go-v2/service/s3vectors/types"

	"github.com/kgribble/s3vmcp/internal/schema"
)

// CreateIndex creates a vector index with the validated dimension, data
// type, distance metric, and metadata configuration.
func (s *Service) CreateIndex(ctx context.Context, req *schema.CreateIndexRequest) (any, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	in := &s3vectors.CreateIndexInput{
		IndexName:      aws.String(req.IndexName),
		Dimension:      aws.Int32(int32(req.Dimension)),
		DataType:       types.DataType(req.DataType),
		DistanceMetric: types.DistanceMetric(req.DistanceMetric),
		MetadataConfiguration: &types.MetadataConfiguration{
			NonFilterableMetadataKeys: req.MetadataConfig.NonFilterableMetadataKeys,
		},
	}
	if req.BucketARN != "" {
		in.VectorBucketArn = aws.String(req.BucketARN)
	} else {
		in.VectorBucketName = aws.String(req.BucketName)
	}

	return s.api.CreateIndex(ctx, in)
}

// GetIndex retrieves index metadata.
func (s *Service) GetIndex(ctx context.Context, req *schema.GetIndexRequest) (any, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.api.GetIndex(ctx, &s3vectors.GetIndexInput{
		VectorBucketName: aws.String(req.BucketName),
		IndexName:        aws.String(req.IndexName),
	})
}

// ListIndexes lists the indexes of a vector bucket.
func (s *Service) ListIndexes(ctx context.Context, req *schema.ListIndexesRequest) (any, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	in := &s3vectors.ListIndexesInput{}
	if req.BucketARN != "" {
		in.VectorBucketArn = aws.String(req.BucketARN)
	} else {
		in.VectorBucketName = aws.String(req.BucketName)
	}
	if req.MaxResults > 0 {
		in.MaxResults = aws.Int32(int32(req.MaxResults))
	}
	if req.NextToken != "" {
		in.NextToken = aws.String(req.NextToken)
	}
	if req.Prefix != "" {
		in.Prefix = aws.String(req.Prefix)
	}

	return s.api.ListIndexes(ctx, in)
}
