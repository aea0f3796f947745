package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketNameValidation(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple", "my-bucket", true},
		{"minimum length", "abc", true},
		{"maximum length", strings.Repeat("a", 63), true},
		{"digits and hyphens", "bucket-01-data", true},
		{"too short", "ab", false},
		{"too long", strings.Repeat("a", 64), false},
		{"uppercase", "MyBucket", false},
		{"leading hyphen", "-bucket", false},
		{"trailing hyphen", "bucket-", false},
		{"dots not allowed", "my.bucket", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &GetVectorBucketRequest{BucketName: tt.value}
			err := req.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			}
		})
	}
}

func TestBucketARNValidation(t *testing.T) {
	tests := []struct {
		name  string
		arn   string
		valid bool
	}{
		{"omitted", "", true},
		{"well formed", "arn:aws:s3vector:us-east-1:123456789012:bucket/my-bucket", true},
		{"dots and underscores allowed", "arn:aws:s3vector:us-east-1:123456789012:bucket/My_bucket.1", true},
		{"wrong service", "arn:aws:s3:us-east-1:123456789012:bucket/my-bucket", false},
		{"short account id", "arn:aws:s3vector:us-east-1:1234:bucket/my-bucket", false},
		{"missing bucket segment", "arn:aws:s3vector:us-east-1:123456789012:my-bucket", false},
		{"bucket name too short", "arn:aws:s3vector:us-east-1:123456789012:bucket/ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &GetVectorBucketRequest{BucketName: "my-bucket", BucketARN: tt.arn}
			err := req.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIndexARNPattern(t *testing.T) {
	tests := []struct {
		name  string
		arn   string
		valid bool
	}{
		{"well formed", "arn:aws:s3vector:us-east-1:123456789012:bucket/my-bucket/index/my-index", true},
		{"dots in index name", "arn:aws:s3vector:eu-west-2:123456789012:bucket/data/index/docs.v2", true},
		{"index name too short", "arn:aws:s3vector:us-east-1:123456789012:bucket/my-bucket/index/ab", false},
		{"missing index segment", "arn:aws:s3vector:us-east-1:123456789012:bucket/my-bucket", false},
		{"trailing dot", "arn:aws:s3vector:us-east-1:123456789012:bucket/my-bucket/index/bad.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IndexARNPattern.MatchString(tt.arn))
		})
	}
}

func TestEncryptionConfigDefaults(t *testing.T) {
	t.Run("omitted config normalizes to AES256", func(t *testing.T) {
		req := &CreateVectorBucketRequest{BucketName: "my-bucket"}
		require.NoError(t, req.Validate())
		require.NotNil(t, req.EncryptionConfig)
		assert.Equal(t, SSETypeAES256, req.EncryptionConfig.SSEType)
		assert.Empty(t, req.EncryptionConfig.KMSKeyARN)
	})

	t.Run("empty config normalizes to AES256", func(t *testing.T) {
		req := &CreateVectorBucketRequest{
			BucketName:       "my-bucket",
			EncryptionConfig: &EncryptionConfig{},
		}
		require.NoError(t, req.Validate())
		assert.Equal(t, SSETypeAES256, req.EncryptionConfig.SSEType)
	})

	t.Run("unknown sseType rejected", func(t *testing.T) {
		req := &CreateVectorBucketRequest{
			BucketName:       "my-bucket",
			EncryptionConfig: &EncryptionConfig{SSEType: "aws:ssm"},
		}
		assert.Error(t, req.Validate())
	})
}

func TestEncryptionConfigKMS(t *testing.T) {
	t.Run("kms without key arn rejected", func(t *testing.T) {
		req := &CreateVectorBucketRequest{
			BucketName:       "my-bucket",
			EncryptionConfig: &EncryptionConfig{SSEType: SSETypeKMS},
		}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "kmsKeyArn")
	})

	t.Run("kms with malformed key arn rejected", func(t *testing.T) {
		req := &CreateVectorBucketRequest{
			BucketName: "my-bucket",
			EncryptionConfig: &EncryptionConfig{
				SSEType:   SSETypeKMS,
				KMSKeyARN: "arn:aws:kms:us-east-1:123456789012:key/not-a-uuid",
			},
		}
		assert.Error(t, req.Validate())
	})

	t.Run("kms with well formed key arn accepted", func(t *testing.T) {
		req := &CreateVectorBucketRequest{
			BucketName: "my-bucket",
			EncryptionConfig: &EncryptionConfig{
				SSEType:   SSETypeKMS,
				KMSKeyARN: "arn:aws:kms:us-east-1:123456789012:key/12345678-abcd-1234-abcd-123456789012",
			},
		}
		assert.NoError(t, req.Validate())
	})
}

func TestIndexNameBoundaries(t *testing.T) {
	valid := func(name string) error {
		req := &GetIndexRequest{BucketName: "my-bucket", IndexName: name}
		return req.Validate()
	}

	assert.Error(t, valid(strings.Repeat("a", 2)), "length 2 rejected")
	assert.NoError(t, valid(strings.Repeat("a", 3)), "length 3 accepted")
	assert.NoError(t, valid(strings.Repeat("a", 63)), "length 63 accepted")
	assert.Error(t, valid(strings.Repeat("a", 64)), "length 64 rejected")

	assert.NoError(t, valid("docs.v2"), "dots allowed inside")
	assert.Error(t, valid(".docs"), "leading dot rejected")
	assert.Error(t, valid("docs."), "trailing dot rejected")
	assert.Error(t, valid("Docs"), "uppercase rejected")
}

func TestCreateIndexDefaults(t *testing.T) {
	req := &CreateIndexRequest{
		BucketName: "my-bucket",
		IndexName:  "my-index",
		Dimension:  1024,
	}
	require.NoError(t, req.Validate())

	assert.Equal(t, DataTypeFloat32, req.DataType)
	assert.Equal(t, DistanceMetricCosine, req.DistanceMetric)
	require.NotNil(t, req.MetadataConfig)
	assert.Equal(t, DefaultNonFilterableMetadataKeys, req.MetadataConfig.NonFilterableMetadataKeys)
}

func TestCreateIndexDimensionBounds(t *testing.T) {
	for _, tt := range []struct {
		dimension int
		valid     bool
	}{
		{0, false},
		{1, true},
		{4096, true},
		{4097, false},
		{-1, false},
	} {
		req := &CreateIndexRequest{BucketName: "my-bucket", IndexName: "my-index", Dimension: tt.dimension}
		err := req.Validate()
		if tt.valid {
			assert.NoError(t, err, "dimension %d", tt.dimension)
		} else {
			assert.Error(t, err, "dimension %d", tt.dimension)
		}
	}
}

func TestCreateIndexDistanceMetric(t *testing.T) {
	for _, metric := range []string{DistanceMetricEuclidean, DistanceMetricCosine} {
		req := &CreateIndexRequest{BucketName: "my-bucket", IndexName: "my-index", Dimension: 8, DistanceMetric: metric}
		assert.NoError(t, req.Validate())
	}

	req := &CreateIndexRequest{BucketName: "my-bucket", IndexName: "my-index", Dimension: 8, DistanceMetric: "manhattan"}
	assert.Error(t, req.Validate())
}

func TestCreateIndexMetadataConfigSize(t *testing.T) {
	keys := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		keys = append(keys, strings.Repeat("k", 20))
	}
	req := &CreateIndexRequest{
		BucketName:     "my-bucket",
		IndexName:      "my-index",
		Dimension:      8,
		MetadataConfig: &MetadataConfig{NonFilterableMetadataKeys: keys},
	}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadataConfig")
}

func TestListVectorsSegments(t *testing.T) {
	base := func() *ListVectorsRequest {
		return &ListVectorsRequest{BucketName: "my-bucket", IndexName: "my-index"}
	}

	t.Run("neither segment field is fine", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("segmentCount without segmentIndex rejected", func(t *testing.T) {
		req := base()
		req.SegmentCount = 4
		assert.Error(t, req.Validate())
	})

	t.Run("segmentIndex without segmentCount rejected", func(t *testing.T) {
		req := base()
		idx := 0
		req.SegmentIndex = &idx
		assert.Error(t, req.Validate())
	})

	t.Run("segmentIndex zero with segmentCount accepted", func(t *testing.T) {
		req := base()
		idx := 0
		req.SegmentCount = 4
		req.SegmentIndex = &idx
		assert.NoError(t, req.Validate())
	})

	t.Run("segmentIndex out of range rejected", func(t *testing.T) {
		req := base()
		idx := 4
		req.SegmentCount = 4
		req.SegmentIndex = &idx
		assert.Error(t, req.Validate())
	})
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello world", SanitizeText("hello\x00 world\x1f"))
	assert.Equal(t, "plain", SanitizeText("plain"))
}
