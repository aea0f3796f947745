package cli

import (
	"github.com/spf13/cobra"

	"github.com/kgribble/s3vmcp/internal/schema"
)

var (
	vectorsBucket         string
	vectorsIndex          string
	vectorsMaxResults     int
	vectorsNextToken      string
	vectorsSegmentCount   int
	vectorsSegmentIndex   int
	vectorsReturnData     bool
	vectorsReturnMetadata bool
)

var vectorsCmd = &cobra.Command{
	Use:   "vectors",
	Short: "Inspect stored vectors",
}

var vectorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the vectors of an index",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &schema.ListVectorsRequest{
			BucketName:     vectorsBucket,
			IndexName:      vectorsIndex,
			MaxResults:     vectorsMaxResults,
			NextToken:      vectorsNextToken,
			ReturnData:     vectorsReturnData,
			ReturnMetadata: vectorsReturnMetadata,
		}
		if cmd.Flags().Changed("segment-count") {
			req.SegmentCount = vectorsSegmentCount
		}
		if cmd.Flags().Changed("segment-index") {
			req.SegmentIndex = &vectorsSegmentIndex
		}

		result, err := buildService().ListVectors(cmd.Context(), req)
		if err != nil {
			return err
		}
		printResult("Vectors in "+vectorsBucket+"/"+vectorsIndex, result)
		return nil
	},
}

func init() {
	vectorsListCmd.Flags().StringVar(&vectorsBucket, "bucket", "", "vector bucket name")
	vectorsListCmd.Flags().StringVar(&vectorsIndex, "index", "", "index name")
	vectorsListCmd.Flags().IntVar(&vectorsMaxResults, "max-results", 0, "maximum number of vectors to return")
	vectorsListCmd.Flags().StringVar(&vectorsNextToken, "next-token", "", "continuation token from a previous call")
	vectorsListCmd.Flags().IntVar(&vectorsSegmentCount, "segment-count", 0, "total number of parallel listing segments")
	vectorsListCmd.Flags().IntVar(&vectorsSegmentIndex, "segment-index", 0, "segment to list (requires --segment-count)")
	vectorsListCmd.Flags().BoolVar(&vectorsReturnData, "return-data", false, "include vector data")
	vectorsListCmd.Flags().BoolVar(&vectorsReturnMetadata, "return-metadata", false, "include vector metadata")
	_ = vectorsListCmd.MarkFlagRequired("bucket")
	_ = vectorsListCmd.MarkFlagRequired("index")

	vectorsCmd.AddCommand(vectorsListCmd)
}
