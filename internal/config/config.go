package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "PROSECORPUS_CONFIG"
	manifestEnv   = "PROSECORPUS_MANIFEST"
	cacheDirEnv   = "PROSECORPUS_CACHE_DIR"
	logLevelEnv   = "PROSECORPUS_LOG_LEVEL"

	// maxWordsPolicyCap is the drillability ceiling: units above this are
	// too long for a single reading session regardless of tuning.
	maxWordsPolicyCap = 8000
)

// Config holds high-level settings required across the application.
type Config struct {
	Manifest string        `yaml:"manifest"`
	Cache    CacheConfig   `yaml:"cache"`
	Output   OutputConfig  `yaml:"output"`
	Units    UnitConfig    `yaml:"units"`
	Logging  LoggingConfig `yaml:"logging"`
}

// CacheConfig locates the fetched-text cache.
type CacheConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig controls where tier files land and how they are named.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// UnitConfig carries the chunking and acceptance tuning parameters.
type UnitConfig struct {
	TargetWords     int    `yaml:"targetWords"`
	MaxWords        int    `yaml:"maxWords"`
	MinWords        int    `yaml:"minWords"`
	MinSectionWords int    `yaml:"minSectionWords"`
	MinUnitWords    int    `yaml:"minUnitWords"`
	ShuffleSeed     *int64 `yaml:"shuffleSeed"`
}

// LoggingConfig controls console log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides. An empty path falls back to the PROSECORPUS_CONFIG variable.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// Validate checks the tuning parameters before a run starts.
func (c Config) Validate() error {
	u := c.Units
	if u.TargetWords <= 0 || u.MaxWords <= 0 || u.MinWords <= 0 ||
		u.MinSectionWords <= 0 || u.MinUnitWords <= 0 {
		return fmt.Errorf("all unit word parameters must be positive")
	}
	if u.MaxWords > maxWordsPolicyCap {
		return fmt.Errorf("maxWords cannot exceed %d", maxWordsPolicyCap)
	}
	if u.TargetWords > u.MaxWords {
		return fmt.Errorf("targetWords (%d) cannot exceed maxWords (%d)", u.TargetWords, u.MaxWords)
	}
	if c.Manifest == "" {
		return fmt.Errorf("manifest path is required")
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(manifestEnv); v != "" {
		c.Manifest = v
	}
	if v := os.Getenv(cacheDirEnv); v != "" {
		c.Cache.Dir = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Manifest != "" {
		base.Manifest = override.Manifest
	}

	if override.Cache.Dir != "" {
		base.Cache.Dir = override.Cache.Dir
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}
	if override.Output.Prefix != "" {
		base.Output.Prefix = override.Output.Prefix
	}

	if override.Units.TargetWords > 0 {
		base.Units.TargetWords = override.Units.TargetWords
	}
	if override.Units.MaxWords > 0 {
		base.Units.MaxWords = override.Units.MaxWords
	}
	if override.Units.MinWords > 0 {
		base.Units.MinWords = override.Units.MinWords
	}
	if override.Units.MinSectionWords > 0 {
		base.Units.MinSectionWords = override.Units.MinSectionWords
	}
	if override.Units.MinUnitWords > 0 {
		base.Units.MinUnitWords = override.Units.MinUnitWords
	}
	if override.Units.ShuffleSeed != nil {
		base.Units.ShuffleSeed = override.Units.ShuffleSeed
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Manifest: "prose-seed-manifest.json",
		Cache:    CacheConfig{Dir: ".prose-cache"},
		Output:   OutputConfig{Dir: ".", Prefix: "corpus-prose"},
		Units: UnitConfig{
			TargetWords:     6000,
			MaxWords:        8000,
			MinWords:        1200,
			MinSectionWords: 250,
			MinUnitWords:    800,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
