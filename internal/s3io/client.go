package s3io

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultRegion is used when neither the command line nor the aws
// configuration chain provides a region.
const DefaultRegion = "ap-northeast-1"

// Client is the object storage capability the bucket checks run against.
// Listings return a single page; nothing is paginated.
type Client interface {
	ProbeBucket(ctx context.Context, bucket string) error
	BucketRegion(ctx context.Context, bucket string) (string, error)
	ListObjects(ctx context.Context, bucket string) (int64, []string, error)
	ListBuckets(ctx context.Context) ([]string, error)
}

type client struct {
	client *s3.Client
}

// NewClient creates a client using the aws sdk default configuration chain.
// An empty profile or region leaves the choice to the chain.
func NewClient(ctx context.Context, profile, region string) (Client, error) {

	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	// load the profile
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	return newClientFromConfig(cfg), nil
}

func newClientFromConfig(cfg aws.Config, optFns ...func(*s3.Options)) Client {
	cl := client{
		client: s3.NewFromConfig(cfg, optFns...),
	}

	return &cl
}
