package config

import (
	"flag"
	"os"
	"time"

	"github.com/warnwave/warnwave-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string        backend base URL
//	-u string        image host base URL
//	-p string        image host upload preset
//	-k string        image host kind: form | s3
//	-bucket string   S3 bucket (kind s3)
//	-region string   S3 region (kind s3)
//	-t int           request timeout in seconds
//	-d string        session database filename
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-u", "-p", "-k", "-bucket", "-region", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendBaseURL, "b", cfg.BackendBaseURL, "backend base URL")
	fs.StringVar(&cfg.ImageHostBaseURL, "u", cfg.ImageHostBaseURL, "image host base URL")
	fs.StringVar(&cfg.ImageHostPreset, "p", cfg.ImageHostPreset, "image host upload preset")
	fs.StringVar(&cfg.ImageHostKind, "k", cfg.ImageHostKind, "image host kind: form | s3")
	fs.StringVar(&cfg.S3Bucket, "bucket", cfg.S3Bucket, "S3 bucket for avatar uploads")
	fs.StringVar(&cfg.S3Region, "region", cfg.S3Region, "S3 region for avatar uploads")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDBFile, "d", cfg.SessionDBFile, "session database filename")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
