package report

import (
	"errors"
	"fmt"
	"io"

	humanize "github.com/dustin/go-humanize"

	"github.com/studio1767/s3bucket/internal/probe"
)

// WriteText prints a human readable report of the result.
func WriteText(w io.Writer, result *probe.Result) error {
	p := printer{w: w}

	switch result.State {
	case probe.Accessible:
		p.printf("Bucket '%s' exists\n", result.Bucket)
		p.region(result.Region)
		p.objects(result.Objects)

	default:
		p.probeFailed(result.Bucket, result.ProbeErr)
		if result.State == probe.InaccessibleButListed {
			p.printf("Bucket '%s' is in the bucket list but may not be accessible: check permissions\n", result.Bucket)
		} else {
			p.printf("Bucket '%s' was not found in the bucket list\n", result.Bucket)
		}
		p.buckets(result.Buckets)
	}

	return p.err
}

// WriteEnumerationFailure prints what is known when the bucket check
// failed and the bucket list could not be fetched.
func WriteEnumerationFailure(w io.Writer, failed *probe.ErrEnumerationFailed) error {
	p := printer{w: w}

	p.probeFailed(failed.Bucket(), failed.ProbeErr())
	p.printf("- unable to list buckets: %s\n", errors.Unwrap(failed))

	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) probeFailed(bucket string, err error) {
	p.printf("Bucket '%s' does not exist or is not accessible\n", bucket)
	if err != nil {
		p.printf("- error: %s\n", err)
	}

	p.printf("\nSearching the bucket list...\n")
}

func (p *printer) region(region probe.RegionInfo) {
	switch {
	case region.Err != nil:
		p.printf("region: unknown (lookup failed: %s)\n", region.Err)
	case region.Name == "":
		p.printf("region: unknown\n")
	default:
		p.printf("region: %s\n", region.Name)
	}
}

func (p *printer) objects(objects probe.ObjectInfo) {
	if objects.Err != nil {
		p.printf("objects: unknown (listing failed: %s)\n", objects.Err)
		return
	}

	p.printf("objects: %s\n", humanize.Comma(objects.Count))
	if objects.Count == 0 || len(objects.SampleKeys) == 0 {
		return
	}

	p.printf("\nSample objects (max %d):\n", probe.MaxSampleKeys)
	for i, key := range objects.SampleKeys {
		p.printf("%d. %s\n", i+1, key)
	}
}

func (p *printer) buckets(names []string) {
	p.printf("\nAvailable buckets:\n")
	if len(names) == 0 {
		p.printf("  no buckets found\n")
		return
	}
	for _, name := range names {
		p.printf("  - %s\n", name)
	}
}
