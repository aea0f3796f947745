package tools

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3vectors"

	"github.com/kgribble/s3vmcp/internal/schema"
)

// ListVectors lists the vectors of an index. Parallel listing via
// segmentCount/segmentIndex is forwarded only when the pair is set.
func (s *Service) ListVectors(ctx context.Context, req *schema.ListVectorsRequest) (any, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	in := &s3vectors.ListVectorsInput{
		VectorBucketName: aws.String(req.BucketName),
		IndexName:        aws.String(req.IndexName),
	}
	if req.MaxResults > 0 {
		in.MaxResults = aws.Int32(int32(req.MaxResults))
	}
	if req.NextToken != "" {
		in.NextToken = aws.String(req.NextToken)
	}
	if req.SegmentCount > 0 {
		in.SegmentCount = aws.Int32(int32(req.SegmentCount))
		in.SegmentIndex = int32(*req.SegmentIndex)
	}
	if req.ReturnData {
		in.ReturnData = true
	}
	if req.ReturnMetadata {
		in.ReturnMetadata = true
	}

	return s.api.ListVectors(ctx, in)
}
