package schema

import "regexp"

// Name and ARN grammars for the S3 Vectors service.
//
// Vector bucket names are 3-63 characters, lowercase alphanumeric plus
// hyphens, and must start and end with a letter or digit. Index names use
// the same alphabet extended with dots.
var (
	BucketNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)
	BucketARNPattern  = regexp.MustCompile(`^arn:aws:s3vector:[a-z0-9-]+:\d{12}:bucket/[a-zA-Z0-9._-]{3,63}$`)
	IndexNamePattern  = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9.-]{1,61}[a-z0-9])?$`)
	IndexARNPattern   = regexp.MustCompile(`^arn:aws:s3vector:[a-z0-9-]+:\d{12}:bucket/[a-z0-9.-]{3,63}/index/[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)
	KMSKeyARNPattern  = regexp.MustCompile(`^arn:aws:kms:[a-z0-9-]+:\d{12}:key/[0-9a-fA-F-]{36}$`)
	RegionPattern     = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-_]*$`)

	// controlChars matches bytes that must never reach a subprocess
	// command line.
	controlChars = regexp.MustCompile(`[\x00-\x1f\x7f]`)
)

// Index name length bounds. The pattern above already bounds the length;
// the explicit check exists as well so a pattern edit cannot silently
// widen it.
const (
	MinNameLength = 3
	MaxNameLength = 63
)

// Vector dimension bounds for create_index.
const (
	MinDimension = 1
	MaxDimension = 4096
)

// MaxMetadataConfigBytes caps the serialized size of an index metadata
// configuration.
const MaxMetadataConfigBytes = 2048

// Server-side encryption types supported by vector buckets.
const (
	SSETypeAES256 = "AES256"
	SSETypeKMS    = "aws:kms"
)

// Distance metrics supported by vector indexes.
const (
	DistanceMetricEuclidean = "euclidean"
	DistanceMetricCosine    = "cosine"
)

// Modalities accepted by the embedding CLI.
const (
	ModalityText  = "text"
	ModalityImage = "image"
)

// Output formats accepted by the embedding CLI's query subcommand.
const (
	OutputJSON  = "json"
	OutputTable = "table"
)

// DataTypeFloat32 is the only vector data type the service stores today.
const DataTypeFloat32 = "float32"

// Bedrock embedding models supported by s3vectors-embed, by modality.
var (
	TextEmbeddingModels = []string{
		"amazon.titan-embed-text-v2:0",
		"amazon.titan-embed-text-v1",
		"cohere.embed-english-v3",
		"cohere.embed-multilingual-v3",
	}

	ImageEmbeddingModels = []string{
		"amazon.titan-embed-image-v1",
	}
)

// File extensions the embedding CLI accepts, by modality.
var (
	TextFileExtensions = map[string]bool{
		".txt": true, ".pdf": true, ".doc": true, ".docx": true, ".md": true,
	}

	ImageFileExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
		".bmp": true, ".tiff": true, ".webp": true,
	}
)

// DefaultNonFilterableMetadataKeys are the metadata keys the embedding CLI
// writes alongside every vector it stores.
var DefaultNonFilterableMetadataKeys = []string{
	"S3VECTORS-EMBED-SRC-CONTENT",
	"S3VECTORS-EMBED-SRC-LOCATION",
}

// DefaultTextModel is used when an embed operation does not name a model.
func DefaultTextModel() string { return TextEmbeddingModels[0] }

// IsTextModel reports whether id is a supported text embedding model.
func IsTextModel(id string) bool { return contains(TextEmbeddingModels, id) }

// IsImageModel reports whether id is a supported image embedding model.
func IsImageModel(id string) bool { return contains(ImageEmbeddingModels, id) }

// SanitizeText strips control characters from free-text input before it is
// handed to the embedding CLI.
func SanitizeText(s string) string {
	return controlChars.ReplaceAllString(s, "")
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
