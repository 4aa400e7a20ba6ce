package s3io

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func (cl *client) ProbeBucket(ctx context.Context, bucket string) error {

	_, err := cl.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return classify("head bucket", bucket, err)
	}

	return nil
}
