package cli

import (
	"github.com/spf13/cobra"

	"github.com/kgribble/s3vmcp/internal/schema"
)

var (
	bucketCreateSSEType   string
	bucketCreateKMSKeyARN string
	bucketGetARN          string
	bucketListMaxResults  int
	bucketListPrefix      string
	bucketListNextToken   string
)

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Manage S3 vector buckets",
}

var bucketsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vector buckets",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := buildService().ListVectorBuckets(cmd.Context(), &schema.ListVectorBucketsRequest{
			MaxResults: bucketListMaxResults,
			Prefix:     bucketListPrefix,
			NextToken:  bucketListNextToken,
		})
		if err != nil {
			return err
		}
		printResult("Vector buckets", result)
		return nil
	},
}

var bucketsCreateCmd = &cobra.Command{
	Use:   "create <bucket-name>",
	Short: "Create a vector bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &schema.CreateVectorBucketRequest{BucketName: args[0]}
		if bucketCreateSSEType != "" || bucketCreateKMSKeyARN != "" {
			req.EncryptionConfig = &schema.EncryptionConfig{
				SSEType:   bucketCreateSSEType,
				KMSKeyARN: bucketCreateKMSKeyARN,
			}
		}

		result, err := buildService().CreateVectorBucket(cmd.Context(), req)
		if err != nil {
			return err
		}
		printResult("Created vector bucket "+args[0], result)
		return nil
	},
}

var bucketsGetCmd = &cobra.Command{
	Use:   "get <bucket-name>",
	Short: "Get vector bucket metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := buildService().GetVectorBucket(cmd.Context(), &schema.GetVectorBucketRequest{
			BucketName: args[0],
			BucketARN:  bucketGetARN,
		})
		if err != nil {
			return err
		}
		printResult("Vector bucket "+args[0], result)
		return nil
	},
}

func init() {
	bucketsCreateCmd.Flags().StringVar(&bucketCreateSSEType, "sse-type", "", "server-side encryption type (AES256 or aws:kms)")
	bucketsCreateCmd.Flags().StringVar(&bucketCreateKMSKeyARN, "kms-key-arn", "", "KMS key ARN (required for aws:kms)")

	bucketsGetCmd.Flags().StringVar(&bucketGetARN, "arn", "", "vector bucket ARN")

	bucketsListCmd.Flags().IntVar(&bucketListMaxResults, "max-results", 0, "maximum number of buckets to return")
	bucketsListCmd.Flags().StringVar(&bucketListPrefix, "prefix", "", "only list buckets with this name prefix")
	bucketsListCmd.Flags().StringVar(&bucketListNextToken, "next-token", "", "continuation token from a previous call")

	bucketsCmd.AddCommand(bucketsListCmd)
	bucketsCmd.AddCommand(bucketsCreateCmd)
	bucketsCmd.AddCommand(bucketsGetCmd)
}
