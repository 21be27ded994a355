package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/0xRadioAc7iv/go-coursedb/internal/logger"
)

type Config struct {
	DataFile string `yaml:"data_file"`

	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
}

const DEFAULT_DATA_FILE = "courses.dat"
const DEFAULT_LOG_LEVEL = "info"

func DefaultConfig() *Config {
	cfg := &Config{DataFile: DEFAULT_DATA_FILE}
	cfg.Log.Level = DEFAULT_LOG_LEVEL
	cfg.Log.Pretty = true
	return cfg
}

// LoadConfig returns the defaults overlaid with the YAML file at path.
// An empty path skips the file. The result is not validated so that
// command-line flags can still override it; call Validate afterwards.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data file path is required")
	}

	if _, ok := logger.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}

// LoggerConfig converts the log section into logger settings.
func (c *Config) LoggerConfig() logger.Config {
	lvl, _ := logger.ParseLevel(c.Log.Level)
	return logger.Config{Level: lvl, Pretty: c.Log.Pretty}
}
