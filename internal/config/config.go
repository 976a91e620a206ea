package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up from the working directory upward.
const FileName = ".guidebook.yaml"

const (
	DefaultWidth = 80
	DefaultStyle = "auto"
)

type Config struct {
	Content []string `yaml:"content"`
	Width   int      `yaml:"width"`
	Style   string   `yaml:"style"`

	// Dir is the directory holding the config file. Relative content
	// paths resolve against it.
	Dir string `yaml:"-"`
}

// Default returns the config used when no file is present.
func Default() *Config {
	return &Config{Width: DefaultWidth, Style: DefaultStyle}
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	cfg.Dir = filepath.Dir(abs)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find walks up from start looking for FileName. It returns "" when no
// config file exists between start and the filesystem root.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve loads the config at path, or the nearest FileName above the
// working directory when path is empty, falling back to Default.
func Resolve(path string) (*Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = Find(wd); err != nil {
			return nil, err
		}
		if path == "" {
			return Default(), nil
		}
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// ContentPaths returns the configured content paths resolved against Dir.
func (c *Config) ContentPaths() []string {
	out := make([]string, 0, len(c.Content))
	for _, p := range c.Content {
		if !filepath.IsAbs(p) && c.Dir != "" {
			p = filepath.Join(c.Dir, p)
		}
		out = append(out, p)
	}
	return out
}
