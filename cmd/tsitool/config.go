package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/hupe1980/tsigo"
)

// Output controls how rescaled and converted meshes are written.
type Output struct {
	// Compression is the default target for `convert` when --to is not
	// given: "none", "gz", "zst" or "lz4".
	Compression string `toml:"compression"`
	// CompressionLevel tunes every compressed write (gzip 1-9, zstd 1-22,
	// lz4 0-9). Zero keeps each codec's default.
	CompressionLevel int `toml:"compression_level"`
}

// Logging controls diagnostics on stderr.
type Logging struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// Config holds the tsitool settings.
type Config struct {
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

func defaultConfig() Config {
	return Config{
		Output: Output{
			Compression: "none",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// defaultConfigPath returns ~/.config/tsitool/config.toml.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tsitool", "config.toml"), nil
}

// loadConfig reads the TOML file at path, or the default location when path
// is empty. A missing file is not an error: the defaults apply.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return cfg, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if _, err := parseCompression(cfg.Output.Compression); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// parseCompression maps the spellings accepted on flags and in the config
// onto a codec.
func parseCompression(s string) (tsigo.Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return tsigo.CompressionNone, nil
	case "gz", "gzip":
		return tsigo.CompressionGzip, nil
	case "zst", "zstd":
		return tsigo.CompressionZstd, nil
	case "lz4":
		return tsigo.CompressionLZ4, nil
	default:
		return tsigo.CompressionNone, fmt.Errorf("unknown compression %q (want none, gz, zst or lz4)", s)
	}
}
