package relay

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the persisted application configuration.
type Config struct {
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxHistory     int    `toml:"max_history"`
	HistoryPath    string `toml:"history_path"`
}

// DefaultConfig returns sensible defaults for a fresh install.
func DefaultConfig() Config {
	return Config{
		TimeoutSeconds: 30,
		MaxHistory:     50,
		HistoryPath:    "history.toml",
	}
}

// LoadConfig reads a TOML config from path. A missing file yields the
// defaults without error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to path as TOML.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
