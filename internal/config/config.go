// Package config loads the small amount of runtime configuration the demos use.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ScratchFile is the file name used by the file round-trip clone.
const ScratchFile = "a.txt"

type Config struct {
	LogLevel   string
	ScratchDir string
}

// InvalidLogLevelError is returned for a log level zerolog does not know.
type InvalidLogLevelError struct{ Level string }

func (e InvalidLogLevelError) Error() string {
	return "config: invalid log level " + strconv.Quote(e.Level)
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{LogLevel: "info", ScratchDir: "."}
}

// FromEnv reads the configuration without validating it:
//
//   - CREATIONAL_LOG_LEVEL (default "info")
//   - CREATIONAL_SCRATCH_DIR (default ".")
func FromEnv() Config {
	def := Default()
	return Config{
		LogLevel:   getenv("CREATIONAL_LOG_LEVEL", def.LogLevel),
		ScratchDir: getenv("CREATIONAL_SCRATCH_DIR", def.ScratchDir),
	}
}

// LoadFromEnv is FromEnv plus Validate.
func LoadFromEnv() (Config, error) {
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the log level is one zerolog understands.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.NoLevel, InvalidLogLevelError{Level: c.LogLevel}
	}
	return lvl, nil
}

// ScratchPath is the file the round-trip clone writes to.
func (c Config) ScratchPath() string {
	dir := c.ScratchDir
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	return filepath.Join(dir, ScratchFile)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
