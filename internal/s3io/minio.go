package s3io

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// maxListKeys matches the size of a single S3 listing page.
const maxListKeys = 1000

type minioClient struct {
	client *minio.Client
}

// NewMinioClient creates a client for an S3 compatible server, such as
// minio, reachable at endpoint (host:port). No region is configured so
// that bucket locations are always asked of the server.
func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (Client, error) {

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	cl := minioClient{
		client: mc,
	}

	return &cl, nil
}

func (cl *minioClient) ProbeBucket(ctx context.Context, bucket string) error {

	exists, err := cl.client.BucketExists(ctx, bucket)
	if err != nil {
		return classify("check bucket", bucket, err)
	}
	if !exists {
		return &ErrNoSuchBucket{
			bucket: bucket,
		}
	}

	return nil
}

func (cl *minioClient) BucketRegion(ctx context.Context, bucket string) (string, error) {

	region, err := cl.client.GetBucketLocation(ctx, bucket)
	if err != nil {
		return "", classify("get bucket location", bucket, err)
	}

	return region, nil
}

func (cl *minioClient) ListObjects(ctx context.Context, bucket string) (int64, []string, error) {

	// stop the listing goroutine once we have a page worth of keys
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var keys []string
	for object := range cl.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return 0, nil, classify("list objects", bucket, object.Err)
		}

		keys = append(keys, object.Key)
		if len(keys) >= maxListKeys {
			break
		}
	}

	return int64(len(keys)), keys, nil
}

func (cl *minioClient) ListBuckets(ctx context.Context) ([]string, error) {

	buckets, err := cl.client.ListBuckets(ctx)
	if err != nil {
		return nil, classify("list buckets", "", err)
	}

	names := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		names = append(names, bucket.Name)
	}

	return names, nil
}
