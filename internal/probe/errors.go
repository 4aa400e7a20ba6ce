package probe

import (
	"fmt"
)

// ErrEnumerationFailed is returned when the direct check failed and the
// bucket list could not be fetched either, so no outcome can be decided.
type ErrEnumerationFailed struct {
	bucket   string
	probeErr error
	err      error
}

func (e *ErrEnumerationFailed) Error() string {
	return fmt.Sprintf("unable to resolve bucket %s: bucket check failed: %s: failed to list buckets: %s", e.bucket, e.probeErr, e.err)
}

// Bucket returns the name of the bucket being resolved.
func (e *ErrEnumerationFailed) Bucket() string {
	return e.bucket
}

// ProbeErr returns the error from the direct bucket check that led to the
// bucket list being fetched.
func (e *ErrEnumerationFailed) ProbeErr() error {
	return e.probeErr
}

func (e *ErrEnumerationFailed) Unwrap() error {
	return e.err
}
