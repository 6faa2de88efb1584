package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jpschroeder/golisp"
)

// EnvVar names the config file when no path is given on the command line.
const EnvVar = "GOLISP_CONFIG"

type Config struct {
	Prompt      string   `yaml:"prompt"`
	HistoryFile string   `yaml:"history_file"`
	MaxDepth    int      `yaml:"max_depth"`
	Preload     []string `yaml:"preload"`
}

func Default() Config {
	return Config{
		Prompt:      "user=> ",
		HistoryFile: ".golisp_history",
		MaxDepth:    golisp.DefaultMaxDepth,
	}
}

// Load reads a YAML config file on top of the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MaxDepth < 0 {
		return cfg, fmt.Errorf("parse config %s: max_depth must not be negative", path)
	}
	return cfg, nil
}

// Path picks the config file: the explicit flag value, then $GOLISP_CONFIG.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}

// Apply preloads every configured program into in, in order.
func (c Config) Apply(in *golisp.Interpreter) error {
	for i, src := range c.Preload {
		if _, err := in.Evaluate(src); err != nil {
			return fmt.Errorf("preload %d: %w", i, err)
		}
	}
	return nil
}
