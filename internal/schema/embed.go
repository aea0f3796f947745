package schema

import (
	"path/filepath"
	"sort"
	"strings"
)

// EmbedAndStoreTextRequest embeds a raw text literal and stores the
// resulting vector.
type EmbedAndStoreTextRequest struct {
	BucketName string `json:"bucketName"`
	IndexName  string `json:"indexName"`
	TextValue  string `json:"textValue"`
	ModelID    string `json:"modelId,omitempty"`
}

func (r *EmbedAndStoreTextRequest) Validate() error {
	if err := validBucketName("bucketName", r.BucketName); err != nil {
		return err
	}
	if err := validIndexName("indexName", r.IndexName); err != nil {
		return err
	}
	if r.TextValue == "" {
		return errf("textValue", "is required")
	}
	if r.ModelID == "" {
		r.ModelID = DefaultTextModel()
	}
	if !IsTextModel(r.ModelID) {
		return errf("modelId", "%q is not a supported text embedding model; must be one of %v", r.ModelID, TextEmbeddingModels)
	}
	return nil
}

// EmbedAndStoreFileRequest embeds one local file, or several via shell
// wildcards, and stores the resulting vectors.
type EmbedAndStoreFileRequest struct {
	BucketName string `json:"bucketName"`
	IndexName  string `json:"indexName"`
	File       string `json:"file"`
	ModelID    string `json:"modelId,omitempty"`
	Modality   string `json:"modality,omitempty"`
}

// Validate resolves the modality from the file extension, checks that an
// explicitly supplied modality agrees with it, and checks the model
// against the model list for that modality.
func (r *EmbedAndStoreFileRequest) Validate() error {
	if err := validBucketName("bucketName", r.BucketName); err != nil {
		return err
	}
	if err := validIndexName("indexName", r.IndexName); err != nil {
		return err
	}
	if r.File == "" {
		return errf("file", "is required")
	}

	ext := strings.ToLower(filepath.Ext(r.File))
	var resolved string
	switch {
	case TextFileExtensions[ext]:
		resolved = ModalityText
	case ImageFileExtensions[ext]:
		resolved = ModalityImage
	default:
		return errf("file", "unsupported file extension %q; supported text types: %v, image types: %v",
			ext, sortedKeys(TextFileExtensions), sortedKeys(ImageFileExtensions))
	}

	if r.Modality != "" && r.Modality != resolved {
		return errf("modality", "%q does not match file extension %q", r.Modality, ext)
	}
	r.Modality = resolved

	if r.ModelID == "" {
		r.ModelID = DefaultTextModel()
	}
	return validModelForModality(r.ModelID, r.Modality)
}

// EmbedAndStoreS3ObjectsRequest embeds one S3 object, or several via
// wildcards, and stores the resulting vectors. The modality is explicit
// because an S3 prefix with wildcards has no single extension to resolve.
type EmbedAndStoreS3ObjectsRequest struct {
	BucketName string `json:"bucketName"`
	IndexName  string `json:"indexName"`
	S3Path     string `json:"s3Path"`
	Modality   string `json:"modality"`
	ModelID    string `json:"modelId,omitempty"`
}

func (r *EmbedAndStoreS3ObjectsRequest) Validate() error {
	if err := validBucketName("bucketName", r.BucketName); err != nil {
		return err
	}
	if err := validIndexName("indexName", r.IndexName); err != nil {
		return err
	}
	if r.S3Path == "" {
		return errf("s3Path", "is required")
	}
	if !strings.HasPrefix(r.S3Path, "s3://") {
		return errf("s3Path", "must be an s3:// URI, got %q", r.S3Path)
	}
	switch r.Modality {
	case ModalityText, ModalityImage:
	case "":
		return errf("modality", "is required")
	default:
		return errf("modality", "must be %q or %q, got %q", ModalityText, ModalityImage, r.Modality)
	}
	if r.ModelID == "" {
		r.ModelID = DefaultTextModel()
	}
	return validModelForModality(r.ModelID, r.Modality)
}

// EmbedAndQueryRequest embeds a query input (raw text, local file, or S3
// URI) and runs a similarity search. Optional fields are forwarded to the
// embedding CLI only when set.
type EmbedAndQueryRequest struct {
	BucketName     string         `json:"bucketName"`
	IndexName      string         `json:"indexName"`
	QueryInput     string         `json:"queryInput"`
	ModelID        string         `json:"modelId,omitempty"`
	TopK           int            `json:"topK,omitempty"`
	Filter         map[string]any `json:"filter,omitempty"`
	ReturnMetadata bool           `json:"returnMetadata,omitempty"`
	ReturnDistance bool           `json:"returnDistance,omitempty"`
	Output         string         `json:"output,omitempty"`
}

func (r *EmbedAndQueryRequest) Validate() error {
	if err := validBucketName("bucketName", r.BucketName); err != nil {
		return err
	}
	if err := validIndexName("indexName", r.IndexName); err != nil {
		return err
	}
	if r.QueryInput == "" {
		return errf("queryInput", "is required")
	}
	if r.ModelID == "" {
		r.ModelID = DefaultTextModel()
	}
	if !IsTextModel(r.ModelID) && !IsImageModel(r.ModelID) {
		return errf("modelId", "%q is not a supported embedding model", r.ModelID)
	}
	if r.TopK < 0 {
		return errf("topK", "must be positive, got %d", r.TopK)
	}
	switch r.Output {
	case "", OutputJSON, OutputTable:
	default:
		return errf("output", "must be %q or %q, got %q", OutputJSON, OutputTable, r.Output)
	}
	return nil
}

func validModelForModality(modelID, modality string) error {
	switch modality {
	case ModalityText:
		if !IsTextModel(modelID) {
			return errf("modelId", "%q is not valid for text input; must be one of %v", modelID, TextEmbeddingModels)
		}
	case ModalityImage:
		if !IsImageModel(modelID) {
			return errf("modelId", "%q is not valid for image input; must be one of %v", modelID, ImageEmbeddingModels)
		}
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
