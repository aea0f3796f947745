package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kgribble/s3vmcp/internal/schema"
)

var (
	queryBucket         string
	queryIndex          string
	queryModel          string
	queryTopK           int
	queryFilter         string
	queryReturnMetadata bool
	queryReturnDistance bool
	queryOutput         string
)

// queryCmd embeds the query input and searches an index through the
// embedding CLI.
var queryCmd = &cobra.Command{
	Use:   "query <text, file path, or s3:// URI>",
	Short: "Embed a query and search a vector index",
	Long: `Embed a query input with a Bedrock model and run a similarity search.

The input may be raw text, a local file path, or an s3:// URI. Results are
produced by the s3vectors-embed tool; --output table prints its table
rendering as-is.

Examples:
  s3vmcp query --bucket my-bucket --index my-index "how do vector buckets work"
  s3vmcp query --bucket my-bucket --index my-index --top-k 10 --return-distance "pricing"
  s3vmcp query --bucket my-bucket --index my-index --filter '{"genre":"scifi"}' "space travel"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQueryCmd,
}

func runQueryCmd(cmd *cobra.Command, args []string) error {
	req := &schema.EmbedAndQueryRequest{
		BucketName:     queryBucket,
		IndexName:      queryIndex,
		QueryInput:     strings.Join(args, " "),
		ModelID:        queryModel,
		TopK:           queryTopK,
		ReturnMetadata: queryReturnMetadata,
		ReturnDistance: queryReturnDistance,
		Output:         queryOutput,
	}

	if queryFilter != "" {
		var filter map[string]any
		if err := json.Unmarshal([]byte(queryFilter), &filter); err != nil {
			return fmt.Errorf("invalid --filter, must be a JSON object: %w", err)
		}
		req.Filter = filter
	}

	result, err := buildService().EmbedAndQuery(cmd.Context(), req)
	if err != nil {
		return err
	}
	printResult("Query results", result)
	return nil
}

func init() {
	queryCmd.Flags().StringVar(&queryBucket, "bucket", "", "vector bucket name")
	queryCmd.Flags().StringVar(&queryIndex, "index", "", "index name")
	queryCmd.Flags().StringVar(&queryModel, "model", "", "Bedrock embedding model (default amazon.titan-embed-text-v2:0)")
	queryCmd.Flags().IntVar(&queryTopK, "top-k", 0, "number of nearest neighbors to return")
	queryCmd.Flags().StringVar(&queryFilter, "filter", "", "metadata filter as a JSON object")
	queryCmd.Flags().BoolVar(&queryReturnMetadata, "return-metadata", false, "include stored metadata in results")
	queryCmd.Flags().BoolVar(&queryReturnDistance, "return-distance", false, "include similarity distances in results")
	queryCmd.Flags().StringVar(&queryOutput, "output", "", "output format of the embedding tool (json or table)")
	_ = queryCmd.MarkFlagRequired("bucket")
	_ = queryCmd.MarkFlagRequired("index")
}
