// Package probe decides whether a bucket is accessible, falling back to
// the account wide bucket list when the direct check fails.
package probe

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/studio1767/s3bucket/internal/s3io"
)

// MaxSampleKeys bounds the number of object keys kept for display.
const MaxSampleKeys = 5

// State is the outcome of resolving a bucket.
type State int

const (
	Accessible State = iota
	InaccessibleButListed
	NotFound
)

func (s State) String() string {
	switch s {
	case Accessible:
		return "accessible"
	case InaccessibleButListed:
		return "inaccessible-but-listed"
	case NotFound:
		return "not-found"
	}
	return "unknown"
}

// RegionInfo is the result of the region lookup. An empty Name with a nil
// Err means the storage service did not report a region.
type RegionInfo struct {
	Name string
	Err  error
}

// ObjectInfo is the result of the object listing. SampleKeys holds at most
// MaxSampleKeys keys, in listing order.
type ObjectInfo struct {
	Count      int64
	SampleKeys []string
	Err        error
}

// Result describes a resolved bucket. Region and Objects are only
// populated when the bucket is Accessible; ProbeErr and Buckets only on
// the fallback path.
type Result struct {
	Bucket string
	State  State

	Region  RegionInfo
	Objects ObjectInfo

	ProbeErr error
	Buckets  []string
}

// Resolve checks the bucket directly and, if that fails, searches the list
// of all buckets visible to the client. Only a failure to list the buckets
// is returned as an error.
func Resolve(ctx context.Context, client s3io.Client, bucket string) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("bucket", bucket).Logger()

	result := Result{
		Bucket: bucket,
	}

	err := client.ProbeBucket(ctx, bucket)
	if err == nil {
		logger.Debug().Msg("bucket probe succeeded")

		result.State = Accessible
		result.Region = lookupRegion(ctx, client, bucket)
		result.Objects = sampleObjects(ctx, client, bucket)

		return &result, nil
	}

	logger.Debug().Err(err).Msg("bucket probe failed, searching bucket list")
	result.ProbeErr = err

	buckets, err := client.ListBuckets(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("bucket list failed")
		return nil, &ErrEnumerationFailed{
			bucket:   bucket,
			probeErr: result.ProbeErr,
			err:      err,
		}
	}
	result.Buckets = buckets

	if slices.Contains(buckets, bucket) {
		result.State = InaccessibleButListed
	} else {
		result.State = NotFound
	}
	logger.Debug().Stringer("state", result.State).Int("buckets", len(buckets)).Msg("bucket list searched")

	return &result, nil
}

func lookupRegion(ctx context.Context, client s3io.Client, bucket string) RegionInfo {
	region, err := client.BucketRegion(ctx, bucket)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Str("bucket", bucket).Err(err).Msg("region lookup failed")
		return RegionInfo{Err: err}
	}

	return RegionInfo{Name: region}
}

func sampleObjects(ctx context.Context, client s3io.Client, bucket string) ObjectInfo {
	count, keys, err := client.ListObjects(ctx, bucket)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Str("bucket", bucket).Err(err).Msg("object listing failed")
		return ObjectInfo{Err: err}
	}

	if len(keys) > MaxSampleKeys {
		keys = keys[:MaxSampleKeys]
	}

	return ObjectInfo{
		Count:      count,
		SampleKeys: slices.Clone(keys),
	}
}
