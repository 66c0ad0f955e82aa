// Package config loads the optional YAML defaults file that supplies
// fallback values for the convert command's --threads,
// --compression-codec, and --compression-level flags, the way the
// teacher's internal/cli.Config/loadConfig pair loads its own defaults
// file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults holds fallback values for flags the CLI lets override. A
// zero value for any field means "no default", so an unset
// --compression-level still falls through to internal/parquetrow's own
// default.
type Defaults struct {
	Threads           int    `yaml:"threads"`
	CompressionCodec  string `yaml:"compression_codec"`
	CompressionLevel  int    `yaml:"compression_level"`
	MetricsAddr       string `yaml:"metrics_addr"`
}

// Load reads and parses path into Defaults. A missing file is not an
// error — it returns a zero Defaults, so --config is genuinely
// optional.
func Load(path string) (Defaults, error) {
	if path == "" {
		return Defaults{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults{}, nil
		}
		return Defaults{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("parse config YAML %q: %w", path, err)
	}
	return d, nil
}
