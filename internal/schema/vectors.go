package schema

// ListVectorsRequest is the input for list_vectors. The nextToken is an
// opaque continuation token and is never interpreted, only forwarded.
type ListVectorsRequest struct {
	BucketName     string `json:"bucketName"`
	IndexName      string `json:"indexName"`
	MaxResults     int    `json:"maxResults,omitempty"`
	NextToken      string `json:"nextToken,omitempty"`
	SegmentCount   int    `json:"segmentCount,omitempty"`
	SegmentIndex   *int   `json:"segmentIndex,omitempty"`
	ReturnData     bool   `json:"returnData,omitempty"`
	ReturnMetadata bool   `json:"returnMetadata,omitempty"`
}

// Validate checks names and the segmentCount/segmentIndex pairing rule:
// parallel listing requires both or neither.
func (r *ListVectorsRequest) Validate() error {
	if err := validBucketName("bucketName", r.BucketName); err != nil {
		return err
	}
	if err := validIndexName("indexName", r.IndexName); err != nil {
		return err
	}
	if r.MaxResults < 0 {
		return errf("maxResults", "must be positive, got %d", r.MaxResults)
	}
	if r.SegmentCount < 0 {
		return errf("segmentCount", "must be positive, got %d", r.SegmentCount)
	}
	if (r.SegmentCount > 0) != (r.SegmentIndex != nil) {
		return errf("segmentCount", "segmentCount and segmentIndex must be specified together")
	}
	if r.SegmentIndex != nil {
		if *r.SegmentIndex < 0 || *r.SegmentIndex >= r.SegmentCount {
			return errf("segmentIndex", "must be in [0, segmentCount), got %d of %d", *r.SegmentIndex, r.SegmentCount)
		}
	}
	return nil
}
