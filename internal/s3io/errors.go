package s3io

import (
	"errors"
	"fmt"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/minio/minio-go/v7"
)

type ErrNoSuchBucket struct {
	bucket string
	err    error
}

func (e *ErrNoSuchBucket) Error() string {
	if e.err == nil {
		return fmt.Sprintf("no such bucket: %s", e.bucket)
	}
	return fmt.Sprintf("no such bucket: %s: %s", e.bucket, e.err)
}

func (e *ErrNoSuchBucket) Unwrap() error {
	return e.err
}

type ErrAccessDenied struct {
	operation string
	bucket    string
	err       error
}

func (e *ErrAccessDenied) Error() string {
	if e.bucket == "" {
		return fmt.Sprintf("unable to %s: access denied: %s", e.operation, e.err)
	}
	return fmt.Sprintf("unable to %s for %s: access denied: %s", e.operation, e.bucket, e.err)
}

func (e *ErrAccessDenied) Unwrap() error {
	return e.err
}

// classify maps the http status of an sdk error onto the typed errors
// above. Anything else is returned unchanged.
func classify(operation, bucket string, err error) error {
	switch statusCode(err) {
	case http.StatusNotFound:
		if bucket != "" {
			return &ErrNoSuchBucket{
				bucket: bucket,
				err:    err,
			}
		}
	case http.StatusForbidden:
		return &ErrAccessDenied{
			operation: operation,
			bucket:    bucket,
			err:       err,
		}
	}

	return err
}

func statusCode(err error) int {
	var responseError *awshttp.ResponseError
	if errors.As(err, &responseError) {
		return responseError.ResponseError.HTTPStatusCode()
	}

	var minioError minio.ErrorResponse
	if errors.As(err, &minioError) {
		return minioError.StatusCode
	}

	return 0
}
