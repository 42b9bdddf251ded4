package config

import (
	"os"

	"github.com/jsphweid/midirect/constants"
	"github.com/jsphweid/midirect/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type IntervalFormat string

const (
	IntervalDegree IntervalFormat = "degree"
	IntervalName   IntervalFormat = "name"
)

type ComposersConfig struct {
	Table    string `yaml:"table"`
	Endpoint string `yaml:"endpoint"`
	Region   string `yaml:"region"`
}

type ServeConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Config struct {
	Layout         model.Layout    `yaml:"layout"`
	LogLevel       string          `yaml:"log_level"`
	AsapRoot       string          `yaml:"asap_root"`
	IntervalFormat IntervalFormat  `yaml:"interval_format"`
	Composers      ComposersConfig `yaml:"composers"`
	Serve          ServeConfig     `yaml:"serve"`
}

func Default() *Config {
	return &Config{
		Layout:         model.Wide,
		LogLevel:       "info",
		IntervalFormat: IntervalDegree,
		Serve: ServeConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// environment overrides. An empty path or a missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parsing config %s", path)
			}
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := constants.GetLayout(); v != "" {
		c.Layout = model.Layout(v)
	}
	if v := constants.GetLogLevel(); v != "" {
		c.LogLevel = v
	}
	if v := constants.GetAsapRoot(); v != "" {
		c.AsapRoot = v
	}
	if v := constants.GetIntervalFormat(); v != "" {
		c.IntervalFormat = IntervalFormat(v)
	}
	if v := constants.GetComposerTable(); v != "" {
		c.Composers.Table = v
	}
	if v := constants.GetDynamoEndpoint(); v != "" {
		c.Composers.Endpoint = v
	}
	if v := constants.GetRegion(); v != "" {
		c.Composers.Region = v
	}
	if v := constants.GetAddr(); v != "" {
		c.Serve.Addr = v
	}
}

func (c *Config) Validate() error {
	switch c.Layout {
	case model.Wide, model.Narrow:
	default:
		return errors.Errorf("unknown layout %q, expected %q or %q", c.Layout, model.Wide, model.Narrow)
	}
	switch c.IntervalFormat {
	case IntervalDegree, IntervalName:
	default:
		return errors.Errorf("unknown interval format %q", c.IntervalFormat)
	}
	return nil
}
