package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ciphertoy/internal/logging"
	"ciphertoy/internal/rank"
	"ciphertoy/internal/services/bruteforce"
)

const (
	configDirName  = ".ciphertoy"
	configFileName = "config.yaml"
	// DefaultResults is the file the full brute-force ranking is written to.
	DefaultResults = "bruteForceResults.txt"
)

// Config holds runtime options for building the app. Zero Workers selects
// GOMAXPROCS; zero BruteforceLimit tries the whole dictionary.
type Config struct {
	Wordlist        string `yaml:"wordlist"`         // scoring word list; empty = embedded list
	Dictionary      string `yaml:"dictionary"`       // candidate keys, optionally .zst or .xz
	BruteforceLimit int    `yaml:"bruteforce_limit"` // dictionary prefix to try
	Workers         int    `yaml:"workers"`
	ChunkSize       int    `yaml:"chunk_size"`
	Top             int    `yaml:"top"`
	Results         string `yaml:"results"` // empty disables the results file
	LogLevel        string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		BruteforceLimit: bruteforce.DefaultLimit,
		ChunkSize:       bruteforce.DefaultChunkSize,
		Top:             rank.DefaultTop,
		Results:         DefaultResults,
		LogLevel:        logging.DefaultLevel,
	}
}

// DefaultPath returns $HOME/.ciphertoy/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Load reads the YAML file at path over Default. With an empty path the
// default location is used and a missing file yields the defaults; an
// explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no run could use.
func (c Config) Validate() error {
	switch {
	case c.BruteforceLimit < 0:
		return fmt.Errorf("bruteforce_limit must not be negative, got %d", c.BruteforceLimit)
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	case c.ChunkSize < 0:
		return fmt.Errorf("chunk_size must not be negative, got %d", c.ChunkSize)
	case c.Top < 0:
		return fmt.Errorf("top must not be negative, got %d", c.Top)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// RequestLimit converts BruteforceLimit to bruteforce.Request.Limit.
func (c Config) RequestLimit() int {
	if c.BruteforceLimit == 0 {
		return -1
	}
	return c.BruteforceLimit
}
