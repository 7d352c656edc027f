// Package config loads and saves fuzzball parameters as YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrsinham/fuzzforge/internal/fuzzball"
	"github.com/mrsinham/fuzzforge/internal/util"
)

// Config represents a parameter file for YAML serialization.
type Config struct {
	Fuzzball FuzzballYAML `yaml:"fuzzball"`
	Preview  PreviewYAML  `yaml:"preview,omitempty"`
}

// FuzzballYAML holds generation parameters. Pointers distinguish an absent
// key from an explicit zero.
type FuzzballYAML struct {
	Diameter   int    `yaml:"diameter"`
	BaseColor  string `yaml:"base_color,omitempty"`
	AlphaStart *int   `yaml:"alpha_start,omitempty"`
	AlphaEnd   *int   `yaml:"alpha_end,omitempty"`
}

// PreviewYAML holds preview window settings.
type PreviewYAML struct {
	Zoom int `yaml:"zoom,omitempty"`
}

// Settings is the resolved content of a configuration file.
type Settings struct {
	Params fuzzball.Params
	Zoom   int
}

// LoadFromYAML reads and validates a configuration file. Missing optional
// keys take the fuzzball defaults.
func LoadFromYAML(path string) (Settings, error) {
	cfg, err := decode(path)
	if err != nil {
		return Settings{}, err
	}
	return cfg.ToSettings()
}

// Load reads a configuration file without validating the parameters, so
// callers can complete or override them first. Colours must still parse.
func Load(path string) (Settings, error) {
	cfg, err := decode(path)
	if err != nil {
		return Settings{}, err
	}
	return cfg.settings()
}

func decode(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToYAML writes settings to path.
func SaveToYAML(s Settings, path string) error {
	data, err := yaml.Marshal(FromSettings(s))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ToSettings converts the YAML form, applying defaults and validating the
// parameters.
func (c Config) ToSettings() (Settings, error) {
	st, err := c.settings()
	if err != nil {
		return Settings{}, err
	}
	if err := st.Params.Validate(); err != nil {
		return Settings{}, err
	}
	if st.Zoom < 0 {
		return Settings{}, fmt.Errorf("preview zoom must not be negative, got %d", st.Zoom)
	}
	return st, nil
}

// settings applies defaults without range checks.
func (c Config) settings() (Settings, error) {
	p := fuzzball.DefaultParams(c.Fuzzball.Diameter)

	if c.Fuzzball.BaseColor != "" {
		rgb, err := util.ParseColor(c.Fuzzball.BaseColor)
		if err != nil {
			return Settings{}, fmt.Errorf("base_color: %w", err)
		}
		p.BaseColor = rgb
	}
	if c.Fuzzball.AlphaStart != nil {
		p.AlphaStart = *c.Fuzzball.AlphaStart
	}
	if c.Fuzzball.AlphaEnd != nil {
		p.AlphaEnd = *c.Fuzzball.AlphaEnd
	}

	return Settings{Params: p, Zoom: c.Preview.Zoom}, nil
}

// FromSettings converts settings to the YAML form.
func FromSettings(s Settings) Config {
	start, end := s.Params.AlphaStart, s.Params.AlphaEnd
	return Config{
		Fuzzball: FuzzballYAML{
			Diameter:   s.Params.Diameter,
			BaseColor:  util.FormatColor(s.Params.BaseColor),
			AlphaStart: &start,
			AlphaEnd:   &end,
		},
		Preview: PreviewYAML{Zoom: s.Zoom},
	}
}
