package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. TTMERGE_LOG__LEVEL=debug.
const EnvPrefix = "TTMERGE_"

// DefaultInputs are merged when neither arguments nor config name any input.
var DefaultInputs = []string{"class.json", "new-courses.json"}

type Config struct {
	Inputs    []string      `json:"inputs"`
	Output    string        `json:"output"`
	Converter string        `json:"converter"`
	Courses   []string      `json:"courses"`
	ICS       ICSConfig     `json:"ics"`
	Log       LoggingConfig `json:"log"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if len(c.Inputs) == 0 {
		c.Inputs = append([]string(nil), DefaultInputs...)
	}
	if c.Output == "" {
		c.Output = "merged.json"
	}
	if c.Converter == "" {
		c.Converter = "pjson"
	}
	c.ICS.SetDefaults()
	c.Log.SetDefaults()
}

// Validate checks the sections that can be checked without running anything.
func (c Config) Validate() error {
	if err := c.ICS.Validate(); err != nil {
		return fmt.Errorf("ics: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if _, err := NewMatcher(c.Courses); err != nil {
		return fmt.Errorf("courses: %w", err)
	}
	return nil
}

// Load reads the optional config file at path, applies TTMERGE_ environment
// overrides and defaults, and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides. List values are space separated.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.TrimPrefix(strings.ToLower(key), strings.ToLower(EnvPrefix))
		key = strings.ReplaceAll(key, "__", ".")
		if key == "inputs" || key == "courses" {
			return key, strings.Fields(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
