package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/audioconv/audioconv/internal/audio"

	"go.yaml.in/yaml/v3"
)

type Config struct {
	LogLevel slog.Level   `yaml:"log_level"`
	Format   audio.Format `yaml:"format"`
	FFmpeg   string       `yaml:"ffmpeg"`
	FFprobe  string       `yaml:"ffprobe"`
}

func Default() *Config {
	return &Config{
		LogLevel: slog.LevelInfo,
		Format:   audio.Opus,
		FFmpeg:   "ffmpeg",
		FFprobe:  "ffprobe",
	}
}

// Parse decodes r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	c := Default()
	err := decoder.Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.FFmpeg == "" {
		return keyEmptyError("ffmpeg")
	}
	if c.FFprobe == "" {
		return keyEmptyError("ffprobe")
	}
	return nil
}

func keyEmptyError(key string) error {
	return fmt.Errorf("key '%s' is missing or value is empty", key)
}
