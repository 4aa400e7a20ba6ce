package report

import (
	"io"

	yaml "gopkg.in/yaml.v3"

	"github.com/studio1767/s3bucket/internal/probe"
)

type document struct {
	Bucket string `yaml:"bucket"`
	Status string `yaml:"status"`

	Region      string   `yaml:"region,omitempty"`
	RegionError string   `yaml:"region_error,omitempty"`
	ObjectCount *int64   `yaml:"object_count,omitempty"`
	SampleKeys  []string `yaml:"sample_keys,omitempty"`
	ListError   string   `yaml:"list_error,omitempty"`

	ProbeError string   `yaml:"probe_error,omitempty"`
	Buckets    []string `yaml:"buckets,omitempty"`
}

// WriteYAML prints the result as a yaml document.
func WriteYAML(w io.Writer, result *probe.Result) error {
	doc := document{
		Bucket: result.Bucket,
		Status: result.State.String(),
	}

	if result.State == probe.Accessible {
		doc.Region = result.Region.Name
		doc.RegionError = errString(result.Region.Err)
		if result.Objects.Err == nil {
			count := result.Objects.Count
			doc.ObjectCount = &count
			doc.SampleKeys = result.Objects.SampleKeys
		}
		doc.ListError = errString(result.Objects.Err)
	} else {
		doc.ProbeError = errString(result.ProbeErr)
		doc.Buckets = result.Buckets
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return err
	}

	return encoder.Close()
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
