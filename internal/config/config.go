// Package config holds scanner tunables, loadable from an optional YAML
// file. Every field has a sane default so the zero-config path works.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration parses YAML scalars like "30s" or "1m" via time.ParseDuration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

type Config struct {
	// ScanTimeout bounds one primary subprocess; on expiry the process
	// is killed and the scan fails.
	ScanTimeout Duration `yaml:"scan_timeout"`

	// EnrichTimeout bounds the enrichment lookups; on expiry records
	// simply keep blank enrichment fields.
	EnrichTimeout Duration `yaml:"enrich_timeout"`

	// MaxPort is the default upper bound on retained local ports.
	MaxPort int `yaml:"max_port"`

	// ProgressEvery emits a progress notification every N parsed lines.
	ProgressEvery int `yaml:"progress_every"`

	// ProgressHeadroom pads the running count to form the (grow-only)
	// estimated total while the true total is still unknown.
	ProgressHeadroom int `yaml:"progress_headroom"`
}

func Default() Config {
	return Config{
		ScanTimeout:      Duration(30 * time.Second),
		EnrichTimeout:    Duration(10 * time.Second),
		MaxPort:          65535,
		ProgressEvery:    25,
		ProgressHeadroom: 50,
	}
}

// Load reads path over the defaults. A missing file is not an error; a
// present but unreadable or malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MaxPort <= 0 || cfg.MaxPort > 65535 {
		return cfg, fmt.Errorf("max_port out of range: %d", cfg.MaxPort)
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = Default().ProgressEvery
	}
	if cfg.ProgressHeadroom < 0 {
		cfg.ProgressHeadroom = Default().ProgressHeadroom
	}
	return cfg, nil
}
