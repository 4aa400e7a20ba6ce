package s3io

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

func (cl *client) BucketRegion(ctx context.Context, bucket string) (string, error) {

	resp, err := cl.client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		// buckets in us-east-1 have no location constraint
		region := string(resp.LocationConstraint)
		if region == "" {
			region = "us-east-1"
		}
		return region, nil
	}

	// GetBucketLocation needs its own permission. The region is also
	// reported in the headers of a HeadBucket response.
	region, herr := manager.GetBucketRegion(ctx, cl.client, bucket)
	if herr != nil || region == "" {
		zerolog.Ctx(ctx).Debug().Str("bucket", bucket).Err(herr).Msg("region discovery from bucket headers failed")
		return "", classify("get bucket location", bucket, err)
	}

	return region, nil
}
