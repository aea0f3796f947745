package s3vec

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3vectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyClientSatisfiesAPI(t *testing.T) {
	var _ API = NewLazyClient(Config{Region: "us-east-1"})
	var _ API = NewStub()
}

func TestLazyClientConstructionIsDeferred(t *testing.T) {
	// Constructing the transport must not touch the credential chain.
	l := NewLazyClient(Config{Region: "us-east-1"})
	assert.Nil(t, l.client)
	assert.NoError(t, l.err)
}

func TestStubGetVectorBucketEchoesName(t *testing.T) {
	s := NewStub()

	out, err := s.GetVectorBucket(context.Background(), &s3vectors.GetVectorBucketInput{
		VectorBucketName: aws.String("my-bucket"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.VectorBucket)
	assert.Equal(t, "my-bucket", aws.ToString(out.VectorBucket.VectorBucketName))
}

func TestStubListOperationsReturnEmpty(t *testing.T) {
	s := NewStub()
	ctx := context.Background()

	buckets, err := s.ListVectorBuckets(ctx, &s3vectors.ListVectorBucketsInput{})
	require.NoError(t, err)
	assert.Empty(t, buckets.VectorBuckets)

	indexes, err := s.ListIndexes(ctx, &s3vectors.ListIndexesInput{
		VectorBucketName: aws.String("my-bucket"),
	})
	require.NoError(t, err)
	assert.Empty(t, indexes.Indexes)

	vectors, err := s.ListVectors(ctx, &s3vectors.ListVectorsInput{
		VectorBucketName: aws.String("my-bucket"),
		IndexName:        aws.String("my-index"),
	})
	require.NoError(t, err)
	assert.Empty(t, vectors.Vectors)
}

func TestStubGetIndexEchoesNames(t *testing.T) {
	s := NewStub()

	out, err := s.GetIndex(context.Background(), &s3vectors.GetIndexInput{
		VectorBucketName: aws.String("my-bucket"),
		IndexName:        aws.String("my-index"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Index)
	assert.Equal(t, "my-index", aws.ToString(out.Index.IndexName))
}
