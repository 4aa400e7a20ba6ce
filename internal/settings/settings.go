package settings

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// DefaultBucket is checked when no bucket is named anywhere else.
const DefaultBucket = "sample"

type ErrPermissionsTooOpen struct {
	msg string
}

func (e *ErrPermissionsTooOpen) Error() string {
	return e.msg
}

type Settings struct {
	Profile string
	Region  string
	Bucket  string

	// an endpoint selects an S3 compatible server instead of aws
	Endpoint  string
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// Load reads the settings file. The name 'default' is resolved to
// '~/.s3bucket/config.yml'. A missing file is not an error.
func Load(settings_file string) (*Settings, error) {
	settings := Settings{
		Bucket: DefaultBucket,
		UseSSL: true,
	}

	// set the default path
	if settings_file == "default" {
		u, err := user.Current()
		if err != nil {
			return nil, err
		}
		settings_file = filepath.Join(u.HomeDir, ".s3bucket", "config.yml")
	}

	// load the file
	info, err := os.Stat(settings_file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &settings, nil
		}
		return nil, err
	}

	data, err := os.ReadFile(settings_file)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", settings_file, err)
	}

	// check the file permissions if it holds a secret
	perms := info.Mode().Perm()
	if settings.SecretKey != "" && perms&0077 != 0 {
		return nil, &ErrPermissionsTooOpen{
			msg: fmt.Sprintf("Permissions on settings file are too open: %#o", perms),
		}
	}

	if settings.Bucket == "" {
		settings.Bucket = DefaultBucket
	}

	return &settings, nil
}
