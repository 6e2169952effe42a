package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	FormatAuto     = "auto"
	FormatTable    = "table"
	FormatTerminal = "terminal"
	FormatJSON     = "json"
	FormatNone     = "none"
)

// Constants for default values.
const (
	DefaultFormat    = FormatAuto
	DefaultThemeName = "default"
	FileName         = ".vsut.yaml"
)

// Config is the resolved report configuration.
type Config struct {
	Format  string `yaml:"format"`
	Theme   string `yaml:"theme"`
	NoColor bool   `yaml:"no_color"`
	Debug   bool   `yaml:"debug"`

	// Source is the config file that was read, empty when none was found.
	Source string `yaml:"-"`
}

// Default returns the hardcoded defaults.
func Default() *Config {
	return &Config{
		Format: DefaultFormat,
		Theme:  DefaultThemeName,
	}
}

// Load reads the config file if one exists and applies environment
// overrides. An unreadable or malformed file is reported on stderr and
// ignored.
func Load() *Config {
	cfg := Default()
	initialDebug := os.Getenv("VSUT_DEBUG") != ""

	if path := getConfigPath(); path != "" {
		if err := mergeFile(cfg, path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v. Using defaults.\n", err)
		} else {
			cfg.Source = path
		}
	} else if initialDebug {
		fmt.Fprintln(os.Stderr, "[DEBUG config.Load] No .vsut.yaml config file found, using defaults.")
	}

	applyEnv(cfg)

	if !validFormat(cfg.Format) {
		if cfg.Debug {
			fmt.Fprintf(os.Stderr, "[DEBUG config.Load] Unknown format %q. Falling back to %q.\n", cfg.Format, DefaultFormat)
		}
		cfg.Format = DefaultFormat
	}
	if cfg.Debug {
		fmt.Fprintf(os.Stderr, "[DEBUG config.Load] format=%s theme=%s no_color=%t source=%q\n",
			cfg.Format, cfg.Theme, cfg.NoColor, cfg.Source)
	}
	return cfg
}

// mergeFile overlays the non-zero values of the YAML file at path onto cfg.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("unmarshalling config file %s: %w", path, err)
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.Theme != "" {
		cfg.Theme = fileCfg.Theme
	}
	cfg.NoColor = fileCfg.NoColor
	cfg.Debug = fileCfg.Debug
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("VSUT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("VSUT_THEME"); v != "" {
		cfg.Theme = v
	}

	noColor := os.Getenv("VSUT_NO_COLOR")
	if noColor == "" {
		noColor = os.Getenv("NO_COLOR")
	}
	if noColor != "" {
		if b, err := strconv.ParseBool(noColor); err == nil {
			cfg.NoColor = b
		}
	}
	if os.Getenv("VSUT_DEBUG") != "" {
		cfg.Debug = true
	}
}

func validFormat(f string) bool {
	switch f {
	case FormatAuto, FormatTable, FormatTerminal, FormatJSON, FormatNone:
		return true
	}
	return false
}

// getConfigPath returns the local .vsut.yaml if present, else the one under
// the user config dir, else "".
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		if os.Getenv("VSUT_DEBUG") != "" {
			fmt.Fprintf(os.Stderr, "[DEBUG getConfigPath] UserConfigDir unusable. Error: %v, Path: '%s'\n", err, configHome)
		}
		return ""
	}
	xdgPath := filepath.Join(configHome, "vsut", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
