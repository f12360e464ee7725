// Package config assembles the runtime settings of the warnwave client.
// Values come from three sources, later ones overriding earlier ones:
// built-in defaults, an optional JSON file (-c/-config), command-line flags.
package config

import "time"

// Image-host kinds selectable via ImageHostKind.
const (
	ImageHostForm = "form"
	ImageHostS3   = "s3"
)

// Config holds runtime settings for the warnwave CLI.
//
// Fields:
//   - BackendBaseURL: base URL of the warnwave backend API.
//   - ImageHostBaseURL: base URL of the form image-hosting service.
//   - ImageHostPreset: unsigned upload preset sent with each form upload.
//   - ImageHostKind: "form" (preset upload) or "s3" (direct bucket upload).
//   - S3Bucket, S3Region: target bucket when ImageHostKind is "s3".
//   - RequestTimeout: upper bound for every network call.
//   - SessionDBFile: filename of the local session database.
type Config struct {
	BackendBaseURL   string
	ImageHostBaseURL string
	ImageHostPreset  string
	ImageHostKind    string
	S3Bucket         string
	S3Region         string
	RequestTimeout   time.Duration
	SessionDBFile    string
}

// LoadDefaults populates c with the demo deployment's coordinates.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "http://localhost:5000"
	c.ImageHostBaseURL = "https://api.cloudinary.com/v1_1/demo"
	c.ImageHostPreset = "unsigned_preset"
	c.ImageHostKind = ImageHostForm
	c.S3Region = "us-east-1"
	c.RequestTimeout = 15 * time.Second
	c.SessionDBFile = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
