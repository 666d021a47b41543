package collect

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of a collector configuration file.
// Intervals use Go duration syntax ("60s", "100ms").
type fileConfig struct {
	SamplingInterval string `yaml:"sampling_interval"`
	LagProbeInterval string `yaml:"lag_probe_interval"`
	GCPollInterval   string `yaml:"gc_poll_interval"`
}

// LoadConfig reads a Config from a YAML file. Absent fields keep their
// defaults. The Logger and Hooks fields cannot be configured from a file
// and are left unset.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("collect: read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("collect: parse config: %w", err)
	}

	var cfg Config
	fields := []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"sampling_interval", fc.SamplingInterval, &cfg.SamplingInterval},
		{"lag_probe_interval", fc.LagProbeInterval, &cfg.LagProbeInterval},
		{"gc_poll_interval", fc.GCPollInterval, &cfg.GCPollInterval},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		d, err := time.ParseDuration(f.value)
		if err != nil {
			return Config{}, fmt.Errorf("collect: parse config %s: %w", f.name, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("collect: parse config %s: %w", f.name, ErrInvalidInterval)
		}
		*f.dst = d
	}
	return cfg, nil
}
