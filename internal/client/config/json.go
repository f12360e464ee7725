package config

import (
	"encoding/json"
	"os"

	"github.com/warnwave/warnwave-cli/internal/flagx"
	"github.com/warnwave/warnwave-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as a string like "15s"
// or as integer nanoseconds. Empty fields leave the current value untouched.
type JsonConfig struct {
	BackendBaseURL   string         `json:"backend_base_url"`
	ImageHostBaseURL string         `json:"image_host_base_url"`
	ImageHostPreset  string         `json:"image_host_preset"`
	ImageHostKind    string         `json:"image_host_kind"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	SessionDBFile    string         `json:"session_db_file"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when no
// path is given the function is a no-op. Read or unmarshal errors panic
// (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != "" {
		cfg.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.ImageHostBaseURL != "" {
		cfg.ImageHostBaseURL = jc.ImageHostBaseURL
	}
	if jc.ImageHostPreset != "" {
		cfg.ImageHostPreset = jc.ImageHostPreset
	}
	if jc.ImageHostKind != "" {
		cfg.ImageHostKind = jc.ImageHostKind
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDBFile != "" {
		cfg.SessionDBFile = jc.SessionDBFile
	}
}
