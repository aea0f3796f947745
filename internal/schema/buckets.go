package schema

// EncryptionConfig selects server-side encryption for a vector bucket.
// When the caller omits it entirely, it normalizes to SSE-S3 (AES256).
type EncryptionConfig struct {
	SSEType   string `json:"sseType,omitempty"`
	KMSKeyARN string `json:"kmsKeyArn,omitempty"`
}

// Normalize fills in the AES256 default and validates the sseType /
// kmsKeyArn cross-field rule.
func (c *EncryptionConfig) Normalize() error {
	if c.SSEType == "" {
		c.SSEType = SSETypeAES256
	}
	switch c.SSEType {
	case SSETypeAES256, SSETypeKMS:
	default:
		return errf("encryptionConfig.sseType", "must be %q or %q, got %q", SSETypeAES256, SSETypeKMS, c.SSEType)
	}
	if c.SSEType == SSETypeKMS {
		if c.KMSKeyARN == "" {
			return errf("encryptionConfig.kmsKeyArn", "required when sseType is %q", SSETypeKMS)
		}
		if !KMSKeyARNPattern.MatchString(c.KMSKeyARN) {
			return errf("encryptionConfig.kmsKeyArn", "must match %s", KMSKeyARNPattern)
		}
	}
	return nil
}

// CreateVectorBucketRequest is the input for create_vector_bucket.
type CreateVectorBucketRequest struct {
	BucketName       string            `json:"bucketName"`
	EncryptionConfig *EncryptionConfig `json:"encryptionConfig,omitempty"`
}

// Validate checks the bucket name and normalizes the encryption config,
// defaulting it to AES256 when absent.
func (r *CreateVectorBucketRequest) Validate() error {
	if err := validBucketName("bucketName", r.BucketName); err != nil {
		return err
	}
	if r.EncryptionConfig == nil {
		r.EncryptionConfig = &EncryptionConfig{SSEType: SSETypeAES256}
	}
	return r.EncryptionConfig.Normalize()
}

// GetVectorBucketRequest is the input for get_vector_bucket.
type GetVectorBucketRequest struct {
	BucketName string `json:"bucketName"`
	BucketARN  string `json:"bucketArn,omitempty"`
}

func (r *GetVectorBucketRequest) Validate() error {
	if err := validBucketName("bucketName", r.BucketName); err != nil {
		return err
	}
	return validBucketARN("bucketArn", r.BucketARN)
}

// ListVectorBucketsRequest is the input for list_vector_buckets. All
// fields are optional and forwarded only when set.
type ListVectorBucketsRequest struct {
	MaxResults int    `json:"maxResults,omitempty"`
	NextToken  string `json:"nextToken,omitempty"`
	Prefix     string `json:"prefix,omitempty"`
}

func (r *ListVectorBucketsRequest) Validate() error {
	if r.MaxResults < 0 {
		return errf("maxResults", "must be positive, got %d", r.MaxResults)
	}
	return nil
}

func validBucketName(field, name string) error {
	if name == "" {
		return errf(field, "is required")
	}
	if !BucketNamePattern.MatchString(name) {
		return errf(field, "must be 3-63 lowercase letters, digits, or hyphens, starting and ending with a letter or digit")
	}
	return nil
}

func validBucketARN(field, arn string) error {
	if arn == "" {
		return nil
	}
	if !BucketARNPattern.MatchString(arn) {
		return errf(field, "must match %s", BucketARNPattern)
	}
	return nil
}

func validIndexName(field, name string) error {
	if name == "" {
		return errf(field, "is required")
	}
	if !IndexNamePattern.MatchString(name) {
		return errf(field, "must be lowercase letters, digits, hyphens, or dots, starting and ending with a letter or digit")
	}
	// Re-checked explicitly even though the pattern bounds it.
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		return errf(field, "must be between %d and %d characters long", MinNameLength, MaxNameLength)
	}
	return nil
}
