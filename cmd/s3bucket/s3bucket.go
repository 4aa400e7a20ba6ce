package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/studio1767/s3bucket/internal/probe"
	"github.com/studio1767/s3bucket/internal/report"
	"github.com/studio1767/s3bucket/internal/s3io"
	"github.com/studio1767/s3bucket/internal/settings"
)

func main() {
	// process the command line
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-v] [-y] [-p aws-profile] [-r region] [-e endpoint] [-f settings-file] [<bucket>]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	verbose := flag.Bool("v", false, "verbose logging")
	as_yaml := flag.Bool("y", false, "print the result as yaml")
	profile := flag.String("p", "", "aws profile for credentials and configuration")
	region := flag.String("r", "", fmt.Sprintf("aws region to use (default from the aws configuration, else %s)", s3io.DefaultRegion))
	endpoint := flag.String("e", "", "host:port of an S3 compatible server to use instead of aws")
	settings_file := flag.String("f", "default", "yaml settings file")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: incorrect arguments provided\n")
		flag.Usage()
		os.Exit(1)
	}

	// diagnostics go to stderr, the report to stdout
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	// load the settings and apply the overrides
	cfg, err := settings.Load(*settings_file)
	if err != nil {
		log.Fatal(err)
	}
	if *profile != "" {
		cfg.Profile = *profile
	}
	if *region != "" {
		cfg.Region = *region
	}
	if *endpoint != "" {
		cfg.Endpoint = *endpoint
	}

	bucket := cfg.Bucket
	if flag.NArg() == 1 {
		bucket = flag.Arg(0)
	}

	// create the client
	client, err := newClient(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	// run the check; only a failed bucket list is a process failure
	err = check(ctx, client, bucket, *as_yaml, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func check(ctx context.Context, client s3io.Client, bucket string, as_yaml bool, out io.Writer) error {

	if !as_yaml {
		fmt.Fprintf(out, "Checking whether bucket '%s' exists...\n", bucket)
	}

	result, err := probe.Resolve(ctx, client, bucket)
	if err != nil {
		var failed *probe.ErrEnumerationFailed
		if errors.As(err, &failed) && !as_yaml {
			if werr := report.WriteEnumerationFailure(out, failed); werr != nil {
				return werr
			}
		}
		return err
	}

	if as_yaml {
		return report.WriteYAML(out, result)
	}
	return report.WriteText(out, result)
}

func newClient(ctx context.Context, cfg *settings.Settings) (s3io.Client, error) {
	if cfg.Endpoint == "" {
		return s3io.NewClient(ctx, cfg.Profile, cfg.Region)
	}

	// the server reports bucket locations itself, so no region is passed on
	zerolog.Ctx(ctx).Debug().Str("endpoint", cfg.Endpoint).Msg("using S3 compatible endpoint")
	if cfg.Region != "" {
		zerolog.Ctx(ctx).Warn().Str("region", cfg.Region).Msg("region is ignored for S3 compatible endpoints")
	}

	return s3io.NewMinioClient(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.UseSSL)
}
