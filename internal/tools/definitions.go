package tools

import (
	"github.com/kgribble/s3vmcp/internal/schema"
)

// Schema fragment helpers. gojsonschema compiles these maps directly.

func obj(props map[string]any, required ...string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func str(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func strEnum(desc string, values []string) map[string]any {
	return map[string]any{"type": "string", "description": desc, "enum": values}
}

func integer(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

func boolean(desc string) map[string]any {
	return map[string]any{"type": "boolean", "description": desc}
}

func strArray(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": desc,
		"items":       map[string]any{"type": "string"},
	}
}

var allModels = append(append([]string{}, schema.TextEmbeddingModels...), schema.ImageEmbeddingModels...)

// NewDefaultRegistry registers the full tool surface over the given
// service.
func NewDefaultRegistry(svc *Service) (*Registry, error) {
	r := NewRegistry()

	defs := []*Tool{
		{
			Name:        "create_vector_bucket",
			Description: "Create an S3 vector bucket. Defaults to SSE-S3 (AES256) encryption when no encryption config is given.",
			InputSchema: obj(map[string]any{
				"bucketName": str("Vector bucket name, 3-63 lowercase characters."),
				"encryptionConfig": obj(map[string]any{
					"sseType":   strEnum("Server-side encryption type.", []string{schema.SSETypeAES256, schema.SSETypeKMS}),
					"kmsKeyArn": str("KMS key ARN, required when sseType is aws:kms."),
				}),
			}, "bucketName"),
			Handler: typedHandler(svc.CreateVectorBucket),
		},
		{
			Name:        "get_vector_bucket",
			Description: "Get metadata for an S3 vector bucket by name or ARN.",
			InputSchema: obj(map[string]any{
				"bucketName": str("Vector bucket name."),
				"bucketArn":  str("Vector bucket ARN. Takes precedence over the name when set."),
			}, "bucketName"),
			Handler: typedHandler(svc.GetVectorBucket),
		},
		{
			Name:        "list_vector_buckets",
			Description: "List S3 vector buckets in the configured region.",
			InputSchema: obj(map[string]any{
				"maxResults": integer("Maximum number of buckets to return."),
				"nextToken":  str("Opaque continuation token from a previous call."),
				"prefix":     str("Only return buckets whose name starts with this prefix."),
			}),
			Handler: typedHandler(svc.ListVectorBuckets),
		},
		{
			Name:        "create_index",
			Description: "Create a vector index in a bucket. Dimension must be 1-4096; distance metric defaults to cosine.",
			InputSchema: obj(map[string]any{
				"bucketName":     str("Vector bucket name."),
				"bucketArn":      str("Vector bucket ARN. Takes precedence over the name when set."),
				"indexName":      str("Index name, 3-63 characters."),
				"dimension":      integer("Vector dimension, 1-4096."),
				"dataType":       strEnum("Vector element type.", []string{schema.DataTypeFloat32}),
				"distanceMetric": strEnum("Similarity metric.", []string{schema.DistanceMetricEuclidean, schema.DistanceMetricCosine}),
				"metadataConfig": obj(map[string]any{
					"nonFilterableMetadataKeys": strArray("Metadata keys stored but excluded from filtering."),
				}),
			}, "bucketName", "indexName", "dimension"),
			Handler: typedHandler(svc.CreateIndex),
		},
		{
			Name:        "get_index",
			Description: "Get metadata for a vector index.",
			InputSchema: obj(map[string]any{
				"bucketName": str("Vector bucket name."),
				"indexName":  str("Index name."),
			}, "bucketName", "indexName"),
			Handler: typedHandler(svc.GetIndex),
		},
		{
			Name:        "list_indexes",
			Description: "List the vector indexes of a bucket.",
			InputSchema: obj(map[string]any{
				"bucketName": str("Vector bucket name."),
				"bucketArn":  str("Vector bucket ARN. Takes precedence over the name when set."),
				"maxResults": integer("Maximum number of indexes to return."),
				"nextToken":  str("Opaque continuation token from a previous call."),
				"prefix":     str("Only return indexes whose name starts with this prefix."),
			}, "bucketName"),
			Handler: typedHandler(svc.ListIndexes),
		},
		{
			Name:        "list_vectors",
			Description: "List the vectors of an index. segmentCount and segmentIndex enable parallel listing and must be set together.",
			InputSchema: obj(map[string]any{
				"bucketName":     str("Vector bucket name."),
				"indexName":      str("Index name."),
				"maxResults":     integer("Maximum number of vectors to return."),
				"nextToken":      str("Opaque continuation token from a previous call."),
				"segmentCount":   integer("Total number of parallel listing segments."),
				"segmentIndex":   integer("Zero-based segment to list, in [0, segmentCount)."),
				"returnData":     boolean("Include vector data in the response."),
				"returnMetadata": boolean("Include vector metadata in the response."),
			}, "bucketName", "indexName"),
			Handler: typedHandler(svc.ListVectors),
		},
		{
			Name:        "embed_and_store_text",
			Description: "Embed a raw text value with a Bedrock text model and store the vector in an index.",
			InputSchema: obj(map[string]any{
				"bucketName": str("Vector bucket name."),
				"indexName":  str("Index name."),
				"textValue":  str("Text to embed."),
				"modelId":    strEnum("Bedrock text embedding model.", schema.TextEmbeddingModels),
			}, "bucketName", "indexName", "textValue"),
			Handler: typedHandler(svc.EmbedAndStoreText),
		},
		{
			Name:        "embed_and_store_file",
			Description: "Embed a local file (or files via shell wildcards) and store the vectors. The modality is resolved from the file extension.",
			InputSchema: obj(map[string]any{
				"bucketName": str("Vector bucket name."),
				"indexName":  str("Index name."),
				"file":       str("Path to the local file. Shell wildcards embed multiple files."),
				"modelId":    strEnum("Bedrock embedding model matching the file's modality.", allModels),
				"modality":   strEnum("Input modality. Must agree with the file extension when set.", []string{schema.ModalityText, schema.ModalityImage}),
			}, "bucketName", "indexName", "file"),
			Handler: typedHandler(svc.EmbedAndStoreFile),
		},
		{
			Name:        "embed_and_store_s3_objects",
			Description: "Embed S3 objects (or object sets via wildcards) and store the vectors. The modality must be given explicitly.",
			InputSchema: obj(map[string]any{
				"bucketName": str("Vector bucket name."),
				"indexName":  str("Index name."),
				"s3Path":     str("s3:// URI of the object or wildcard object set."),
				"modality":   strEnum("Input modality of the objects.", []string{schema.ModalityText, schema.ModalityImage}),
				"modelId":    strEnum("Bedrock embedding model matching the modality.", allModels),
			}, "bucketName", "indexName", "s3Path", "modality"),
			Handler: typedHandler(svc.EmbedAndStoreS3Objects),
		},
		{
			Name:        "embed_and_query",
			Description: "Embed a query input (text, local file, or s3:// URI) and run a similarity search against an index.",
			InputSchema: obj(map[string]any{
				"bucketName":     str("Vector bucket name."),
				"indexName":      str("Index name."),
				"queryInput":     str("Query text, local file path, or s3:// URI."),
				"modelId":        strEnum("Bedrock embedding model.", allModels),
				"topK":           integer("Number of nearest neighbors to return."),
				"filter":         map[string]any{"type": "object", "description": "Metadata filter expression."},
				"returnMetadata": boolean("Include stored metadata in results."),
				"returnDistance": boolean("Include similarity distances in results."),
				"output":         strEnum("Output format of the embedding tool.", []string{schema.OutputJSON, schema.OutputTable}),
			}, "bucketName", "indexName", "queryInput"),
			Handler: typedHandler(svc.EmbedAndQuery),
		},
	}

	for _, t := range defs {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}
