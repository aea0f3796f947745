package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kgribble/s3vmcp/internal/schema"
)

var (
	indexBucket         string
	indexName           string
	indexDimension      int
	indexDistanceMetric string
	indexMetadataKeys   string
	indexListMaxResults int
	indexListPrefix     string
	indexListNextToken  string
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Manage vector indexes",
}

var indexesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the indexes of a vector bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := buildService().ListIndexes(cmd.Context(), &schema.ListIndexesRequest{
			BucketName: indexBucket,
			MaxResults: indexListMaxResults,
			Prefix:     indexListPrefix,
			NextToken:  indexListNextToken,
		})
		if err != nil {
			return err
		}
		printResult("Indexes in "+indexBucket, result)
		return nil
	},
}

var indexesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a vector index",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &schema.CreateIndexRequest{
			BucketName:     indexBucket,
			IndexName:      indexName,
			Dimension:      indexDimension,
			DistanceMetric: indexDistanceMetric,
		}
		if indexMetadataKeys != "" {
			req.MetadataConfig = &schema.MetadataConfig{
				NonFilterableMetadataKeys: strings.Split(indexMetadataKeys, ","),
			}
		}

		result, err := buildService().CreateIndex(cmd.Context(), req)
		if err != nil {
			return err
		}
		printResult("Created index "+indexName, result)
		return nil
	},
}

var indexesGetCmd = &cobra.Command{
	Use:   "get <index-name>",
	Short: "Get vector index metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := buildService().GetIndex(cmd.Context(), &schema.GetIndexRequest{
			BucketName: indexBucket,
			IndexName:  args[0],
		})
		if err != nil {
			return err
		}
		printResult("Index "+args[0], result)
		return nil
	},
}

func init() {
	indexesCmd.PersistentFlags().StringVar(&indexBucket, "bucket", "", "vector bucket name")
	_ = indexesCmd.MarkPersistentFlagRequired("bucket")

	indexesCreateCmd.Flags().StringVar(&indexName, "index", "", "index name")
	indexesCreateCmd.Flags().IntVar(&indexDimension, "dimension", 0, "vector dimension (1-4096)")
	indexesCreateCmd.Flags().StringVar(&indexDistanceMetric, "distance-metric", "", "distance metric (euclidean or cosine, default cosine)")
	indexesCreateCmd.Flags().StringVar(&indexMetadataKeys, "non-filterable-keys", "", "comma-separated metadata keys excluded from filtering")
	_ = indexesCreateCmd.MarkFlagRequired("index")
	_ = indexesCreateCmd.MarkFlagRequired("dimension")

	indexesListCmd.Flags().IntVar(&indexListMaxResults, "max-results", 0, "maximum number of indexes to return")
	indexesListCmd.Flags().StringVar(&indexListPrefix, "prefix", "", "only list indexes with this name prefix")
	indexesListCmd.Flags().StringVar(&indexListNextToken, "next-token", "", "continuation token from a previous call")

	indexesCmd.AddCommand(indexesListCmd)
	indexesCmd.AddCommand(indexesCreateCmd)
	indexesCmd.AddCommand(indexesGetCmd)
}
