package s3io_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
)

const s3Namespace = "http://s3.amazonaws.com/doc/2006-03-01/"

type fakeBucket struct {
	name string

	// location constraint, empty for us-east-1
	region string
	// region sent in the x-amz-bucket-region header of HEAD responses
	headRegion string

	denyHead     bool
	denyLocation bool

	keys []string
}

// fakeS3 answers just enough of the S3 protocol for the bucket checks,
// with path style addressing.
type fakeS3 struct {
	buckets []*fakeBucket

	listRequests atomic.Int32
}

func numberedKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%04d", i)
	}
	return keys
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		buckets: []*fakeBucket{
			{name: "present-bucket", region: "eu-west-2", headRegion: "eu-west-2", keys: []string{"a", "b", "c"}},
			{name: "classic-bucket", headRegion: "us-east-1"},
			{name: "locked-bucket", headRegion: "sa-east-1", denyLocation: true},
			{name: "denied-bucket", denyHead: true, denyLocation: true},
			{name: "large-bucket", region: "eu-west-1", keys: numberedKeys(1500)},
		},
	}
}

// newFakeServer starts a server for a fresh fakeS3, closed with the test.
func newFakeServer(t *testing.T) (*httptest.Server, *fakeS3) {
	fake := newFakeS3()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	return srv, fake
}

func (f *fakeS3) bucket(name string) *fakeBucket {
	for _, bucket := range f.buckets {
		if bucket.name == name {
			return bucket
		}
	}
	return nil
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(r.URL.Path, "/")
	query := r.URL.Query()

	if name == "" {
		if r.Method != http.MethodGet {
			writeError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
			return
		}
		f.listBuckets(w)
		return
	}

	bucket := f.bucket(name)
	if bucket == nil {
		writeError(w, r, http.StatusNotFound, "NoSuchBucket")
		return
	}

	switch {
	case r.Method == http.MethodHead:
		if bucket.headRegion != "" {
			w.Header().Set("X-Amz-Bucket-Region", bucket.headRegion)
		}
		if bucket.denyHead {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusOK)

	case r.Method == http.MethodGet && query.Has("location"):
		if bucket.denyLocation {
			writeError(w, r, http.StatusForbidden, "AccessDenied")
			return
		}
		writeXML(w, fmt.Sprintf(`<LocationConstraint xmlns="%s">%s</LocationConstraint>`, s3Namespace, bucket.region))

	case r.Method == http.MethodGet && query.Get("list-type") == "2":
		f.listRequests.Add(1)
		start, _ := strconv.Atoi(query.Get("continuation-token"))
		f.listObjects(w, bucket, start)

	default:
		writeError(w, r, http.StatusBadRequest, "InvalidRequest")
	}
}

func (f *fakeS3) listBuckets(w http.ResponseWriter) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<ListAllMyBucketsResult xmlns="%s"><Owner><ID>owner</ID><DisplayName>owner</DisplayName></Owner><Buckets>`, s3Namespace)
	for _, bucket := range f.buckets {
		fmt.Fprintf(&sb, `<Bucket><Name>%s</Name><CreationDate>2024-01-02T03:04:05.000Z</CreationDate></Bucket>`, bucket.name)
	}
	sb.WriteString(`</Buckets></ListAllMyBucketsResult>`)

	writeXML(w, sb.String())
}

// listObjects serves pages of at most 1000 keys; the continuation token
// is the index of the first key of the next page.
func (f *fakeS3) listObjects(w http.ResponseWriter, bucket *fakeBucket, start int) {
	start = min(start, len(bucket.keys))
	end := min(start+1000, len(bucket.keys))
	page := bucket.keys[start:end]
	truncated := end < len(bucket.keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<ListBucketResult xmlns="%s"><Name>%s</Name><Prefix></Prefix><KeyCount>%d</KeyCount><MaxKeys>1000</MaxKeys><IsTruncated>%t</IsTruncated>`,
		s3Namespace, bucket.name, len(page), truncated)
	if truncated {
		fmt.Fprintf(&sb, `<NextContinuationToken>%d</NextContinuationToken>`, end)
	}
	for _, key := range page {
		fmt.Fprintf(&sb, `<Contents><Key>%s</Key><LastModified>2024-01-02T03:04:05.000Z</LastModified><ETag>"etag"</ETag><Size>1</Size><StorageClass>STANDARD</StorageClass></Contents>`, key)
	}
	sb.WriteString(`</ListBucketResult>`)

	writeXML(w, sb.String())
}

func writeXML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"+body)
}

// writeError sends an S3 error document; HEAD responses carry no body.
func writeError(w http.ResponseWriter, r *http.Request, status int, code string) {
	if r.Method == http.MethodHead {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>%s</Code><Message>%s</Message><RequestId>fake</RequestId></Error>`, code, http.StatusText(status))
}
