package embedcli

import (
	"encoding/json"
	"strconv"

	"github.com/kgribble/s3vmcp/internal/schema"
)

// The builders below return a new slice per call. Requests are validated
// before they reach this package, so modality and model fields are already
// resolved.

// BuildPutTextArgs builds the argument list for embedding a text literal.
func BuildPutTextArgs(req *schema.EmbedAndStoreTextRequest) []string {
	return []string{
		"--vector-bucket-name", req.BucketName,
		"--index-name", req.IndexName,
		"--model-id", req.ModelID,
		"--text-value", req.TextValue,
	}
}

// BuildPutFileArgs builds the argument list for embedding a local file.
// The input flag is named after the modality: --text for documents,
// --image for images.
func BuildPutFileArgs(req *schema.EmbedAndStoreFileRequest) []string {
	return []string{
		"--vector-bucket-name", req.BucketName,
		"--index-name", req.IndexName,
		"--model-id", req.ModelID,
		"--" + req.Modality, req.File,
	}
}

// BuildPutS3ObjectsArgs builds the argument list for embedding S3 objects.
func BuildPutS3ObjectsArgs(req *schema.EmbedAndStoreS3ObjectsRequest) []string {
	return []string{
		"--vector-bucket-name", req.BucketName,
		"--index-name", req.IndexName,
		"--model-id", req.ModelID,
		"--" + req.Modality, req.S3Path,
	}
}

// BuildQueryArgs builds the argument list for a similarity query. Optional
// flags are appended in a fixed order and only when set, so the tool's own
// defaults apply otherwise.
func BuildQueryArgs(req *schema.EmbedAndQueryRequest) ([]string, error) {
	args := []string{
		"--vector-bucket-name", req.BucketName,
		"--index-name", req.IndexName,
		"--model-id", req.ModelID,
		"--query-input", req.QueryInput,
	}

	if req.TopK > 0 {
		args = append(args, "--k", strconv.Itoa(req.TopK))
	}
	if req.Filter != nil {
		filter, err := json.Marshal(req.Filter)
		if err != nil {
			return nil, err
		}
		args = append(args, "--filter", string(filter))
	}
	if req.ReturnMetadata {
		args = append(args, "--return-metadata")
	}
	if req.ReturnDistance {
		args = append(args, "--return-distance")
	}
	if req.Output != "" {
		args = append(args, "--output", req.Output)
	}

	return args, nil
}
