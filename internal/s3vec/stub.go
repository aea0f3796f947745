package s3vec

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3vectors"
	"github.com/aws/aws-sdk-go-v2/service/s3vectors/types"
)

// Stub answers every operation with an empty well-formed response. It backs
// the "stub" transport mode for demos and offline development, and doubles
// as the test transport.
type Stub struct{}

// NewStub returns a stub transport.
func NewStub() *Stub {
	return &Stub{}
}

func (s *Stub) CreateVectorBucket(ctx context.Context, in *s3vectors.CreateVectorBucketInput, optFns ...func(*s3vectors.Options)) (*s3vectors.CreateVectorBucketOutput, error) {
	return &s3vectors.CreateVectorBucketOutput{}, nil
}

func (s *Stub) GetVectorBucket(ctx context.Context, in *s3vectors.GetVectorBucketInput, optFns ...func(*s3vectors.Options)) (*s3vectors.GetVectorBucketOutput, error) {
	return &s3vectors.GetVectorBucketOutput{
		VectorBucket: &types.VectorBucket{
			VectorBucketName: in.VectorBucketName,
			VectorBucketArn:  in.VectorBucketArn,
		},
	}, nil
}

func (s *Stub) ListVectorBuckets(ctx context.Context, in *s3vectors.ListVectorBucketsInput, optFns ...func(*s3vectors.Options)) (*s3vectors.ListVectorBucketsOutput, error) {
	return &s3vectors.ListVectorBucketsOutput{
		VectorBuckets: []types.VectorBucketSummary{},
	}, nil
}

func (s *Stub) CreateIndex(ctx context.Context, in *s3vectors.CreateIndexInput, optFns ...func(*s3vectors.Options)) (*s3vectors.CreateIndexOutput, error) {
	return &s3vectors.CreateIndexOutput{}, nil
}

func (s *Stub) GetIndex(ctx context.Context, in *s3vectors.GetIndexInput, optFns ...func(*s3vectors.Options)) (*s3vectors.GetIndexOutput, error) {
	return &s3vectors.GetIndexOutput{
		Index: &types.Index{
			VectorBucketName: in.VectorBucketName,
			IndexName:        in.IndexName,
		},
	}, nil
}

func (s *Stub) ListIndexes(ctx context.Context, in *s3vectors.ListIndexesInput, optFns ...func(*s3vectors.Options)) (*s3vectors.ListIndexesOutput, error) {
	return &s3vectors.ListIndexesOutput{
		Indexes: []types.IndexSummary{},
	}, nil
}

func (s *Stub) ListVectors(ctx context.Context, in *s3vectors.ListVectorsInput, optFns ...func(*s3vectors.Options)) (*s3vectors.ListVectorsOutput, error) {
	return &s3vectors.ListVectorsOutput{
		Vectors: []types.ListOutputVector{},
	}, nil
}
