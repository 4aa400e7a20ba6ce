package s3io

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ListObjects returns the key count and keys of the first listing page only.
func (cl *client) ListObjects(ctx context.Context, bucket string) (int64, []string, error) {

	resp, err := cl.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return 0, nil, classify("list objects", bucket, err)
	}

	keys := make([]string, 0, len(resp.Contents))
	for _, object := range resp.Contents {
		keys = append(keys, aws.ToString(object.Key))
	}

	return int64(aws.ToInt32(resp.KeyCount)), keys, nil
}

func (cl *client) ListBuckets(ctx context.Context) ([]string, error) {

	resp, err := cl.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, classify("list buckets", "", err)
	}

	names := make([]string, 0, len(resp.Buckets))
	for _, bucket := range resp.Buckets {
		names = append(names, aws.ToString(bucket.Name))
	}

	return names, nil
}
