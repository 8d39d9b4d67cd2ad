// Package config resolves zpersona settings from defaults, an optional
// YAML file in the data directory, an optional .env file and environment
// variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/zarlcorp/zpersona/internal/refdata"
	"gopkg.in/yaml.v3"
)

const (
	appName = "zpersona"

	// FileName is the config file looked up inside the data directory.
	FileName = "config.yaml"

	// DatabaseName is the working database created inside the data directory.
	DatabaseName = "names.db"
)

// Environment variables read by Load.
const (
	EnvDataDir  = "ZPERSONA_DATA_DIR"
	EnvDatabase = "ZPERSONA_DB"
	EnvTemplate = "ZPERSONA_TEMPLATE"
	EnvGender   = "ZPERSONA_GENDER"
	EnvSeed     = "ZPERSONA_SEED"
)

// Config holds resolved settings.
type Config struct {
	DataDir  string `yaml:"data_dir"`
	Database string `yaml:"database"`
	// Template is copied to Database on first use. Empty builds the
	// database from the compiled-in seed data.
	Template string `yaml:"template"`
	// Gender is the default name filter: "", "M" or "F".
	Gender refdata.Gender `yaml:"gender"`
	// Seed makes output reproducible when non-zero.
	Seed uint64 `yaml:"seed"`

	// Source is the config file that was read, if any.
	Source string `yaml:"-"`
}

// DataDir returns the default data directory for zpersona.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, ".local", "share", appName)
}

// Load resolves the configuration. envFile names a dotenv file to load into
// the environment first; a missing file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{DataDir: DataDir()}
	if d := os.Getenv(EnvDataDir); d != "" {
		cfg.DataDir = d
	}

	path := filepath.Join(cfg.DataDir, FileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = FromYAML(data, cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Source = path
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if cfg.Database == "" {
		cfg.Database = filepath.Join(cfg.DataDir, DatabaseName)
	}

	return cfg, nil
}

// FromYAML overlays the YAML document in data onto base.
func FromYAML(data []byte, base Config) (Config, error) {
	cfg := base
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	g, err := refdata.ParseGender(string(cfg.Gender))
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Gender = g
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDatabase); v != "" {
		c.Database = v
	}
	if v := os.Getenv(EnvTemplate); v != "" {
		c.Template = v
	}
	if v, ok := os.LookupEnv(EnvGender); ok {
		g, err := refdata.ParseGender(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvGender, err)
		}
		c.Gender = g
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	return nil
}

// Store returns the reference store settings.
func (c Config) Store() refdata.Config {
	return refdata.Config{
		Path:         c.Database,
		TemplatePath: c.Template,
	}
}
