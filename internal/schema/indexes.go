package schema

import "encoding/json"

// MetadataConfig configures which metadata keys an index stores without
// making them filterable.
type MetadataConfig struct {
	NonFilterableMetadataKeys []string `json:"nonFilterableMetadataKeys,omitempty"`
}

// CreateIndexRequest is the input for create_index.
type CreateIndexRequest struct {
	BucketName     string          `json:"bucketName"`
	BucketARN      string          `json:"bucketArn,omitempty"`
	IndexName      string          `json:"indexName"`
	Dimension      int             `json:"dimension"`
	DataType       string          `json:"dataType,omitempty"`
	DistanceMetric string          `json:"distanceMetric,omitempty"`
	MetadataConfig *MetadataConfig `json:"metadataConfig,omitempty"`
}

// Validate checks names, the dimension range, and enum fields, and fills
// in the float32 / cosine / embed-CLI metadata-key defaults.
func (r *CreateIndexRequest) Validate() error {
	if err := validBucketName("bucketName", r.BucketName); err != nil {
		return err
	}
	if err := validBucketARN("bucketArn", r.BucketARN); err != nil {
		return err
	}
	if err := validIndexName("indexName", r.IndexName); err != nil {
		return err
	}
	if r.Dimension < MinDimension || r.Dimension > MaxDimension {
		return errf("dimension", "must be between %d and %d, got %d", MinDimension, MaxDimension, r.Dimension)
	}
	if r.DataType == "" {
		r.DataType = DataTypeFloat32
	}
	if r.DataType != DataTypeFloat32 {
		return errf("dataType", "must be %q, got %q", DataTypeFloat32, r.DataType)
	}
	if r.DistanceMetric == "" {
		r.DistanceMetric = DistanceMetricCosine
	}
	switch r.DistanceMetric {
	case DistanceMetricEuclidean, DistanceMetricCosine:
	default:
		return errf("distanceMetric", "must be %q or %q, got %q", DistanceMetricEuclidean, DistanceMetricCosine, r.DistanceMetric)
	}
	if r.MetadataConfig == nil {
		r.MetadataConfig = &MetadataConfig{NonFilterableMetadataKeys: DefaultNonFilterableMetadataKeys}
	}
	if raw, err := json.Marshal(r.MetadataConfig); err == nil && len(raw) > MaxMetadataConfigBytes {
		return errf("metadataConfig", "serialized size %d exceeds %d bytes", len(raw), MaxMetadataConfigBytes)
	}
	return nil
}

// GetIndexRequest is the input for get_index.
type GetIndexRequest struct {
	BucketName string `json:"bucketName"`
	IndexName  string `json:"indexName"`
}

func (r *GetIndexRequest) Validate() error {
	if err := validBucketName("bucketName", r.BucketName); err != nil {
		return err
	}
	return validIndexName("indexName", r.IndexName)
}

// ListIndexesRequest is the input for list_indexes.
type ListIndexesRequest struct {
	BucketName string `json:"bucketName"`
	BucketARN  string `json:"bucketArn,omitempty"`
	MaxResults int    `json:"maxResults,omitempty"`
	NextToken  string `json:"nextToken,omitempty"`
	Prefix     string `json:"prefix,omitempty"`
}

func (r *ListIndexesRequest) Validate() error {
	if err := validBucketName("bucketName", r.BucketName); err != nil {
		return err
	}
	if err := validBucketARN("bucketArn", r.BucketARN); err != nil {
		return err
	}
	if r.MaxResults < 0 {
		return errf("maxResults", "must be positive, got %d", r.MaxResults)
	}
	return nil
}
