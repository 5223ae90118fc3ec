package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	General  GeneralConfig  `toml:"general"`
	Defaults DefaultsConfig `toml:"defaults"`
	Storage  StorageConfig  `toml:"storage"`
	Exchange ExchangeConfig `toml:"exchange"`
	Logging  LoggingConfig  `toml:"logging"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

type GeneralConfig struct {
	Language string `toml:"language"`
	Timezone string `toml:"timezone"`
	DataDir  string `toml:"data_dir"`
}

// DefaultsConfig pre-fills a new calculation.
type DefaultsConfig struct {
	Model       string  `toml:"model"`
	InputPrice  float64 `toml:"input_price"`
	OutputPrice float64 `toml:"output_price"`
	CachedPrice float64 `toml:"cached_price"`
	Quantity    int     `toml:"quantity"`
	Markup      float64 `toml:"markup"`
	CreditValue float64 `toml:"credit_value"`
}

type StorageConfig struct {
	Backend string `toml:"backend"` // file, sqlite or memory
	Path    string `toml:"path"`    // empty: derived from data_dir
}

type ExchangeConfig struct {
	URL          string   `toml:"url"`
	Pair         string   `toml:"pair"`
	FallbackRate float64  `toml:"fallback_rate"`
	MinInterval  Duration `toml:"min_refresh_interval"`
	AutoRefresh  bool     `toml:"auto_refresh"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"` // TUI log destination; empty: data_dir/tokencalc.log
}

type MetricsConfig struct {
	Textfile string `toml:"textfile"` // empty disables the textfile export
}

// Duration decodes TOML strings like "30s" or "5m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Language: "en",
			Timezone: "UTC",
			DataDir:  defaultDataDir(),
		},
		Defaults: DefaultsConfig{
			InputPrice:  3.0,
			OutputPrice: 15.0,
			CachedPrice: 0.3,
			Quantity:    1,
			Markup:      0,
			CreditValue: 1,
		},
		Storage: StorageConfig{
			Backend: "file",
		},
		Exchange: ExchangeConfig{
			URL:          "https://economia.awesomeapi.com.br/json/last/",
			Pair:         "USD-BRL",
			FallbackRate: 5.5,
			MinInterval:  Duration{30 * time.Second},
			AutoRefresh:  true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "tokencalc")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tokencalc-data"
	}
	return filepath.Join(home, ".local", "share", "tokencalc")
}

func DefaultPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// StoragePath resolves where the configured backend keeps its data.
func (c Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Backend == "sqlite" {
		return filepath.Join(c.General.DataDir, "tokencalc.db")
	}
	return c.General.DataDir
}

// LogPath resolves the TUI log file.
func (c Config) LogPath() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return filepath.Join(c.General.DataDir, "tokencalc.log")
}

// Location returns the configured timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.General.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	switch c.General.Language {
	case "en", "pt":
	default:
		errs = append(errs, fmt.Errorf("general.language: unsupported %q", c.General.Language))
	}
	if _, err := time.LoadLocation(c.General.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("general.timezone: %w", err))
	}
	switch c.Storage.Backend {
	case "file", "sqlite", "memory":
	default:
		errs = append(errs, fmt.Errorf("storage.backend: unsupported %q", c.Storage.Backend))
	}
	if c.Defaults.Quantity < 1 {
		errs = append(errs, errors.New("defaults.quantity: must be at least 1"))
	}
	if c.Defaults.CreditValue < 0 {
		errs = append(errs, errors.New("defaults.credit_value: must not be negative"))
	}
	if c.Exchange.FallbackRate <= 0 {
		errs = append(errs, errors.New("exchange.fallback_rate: must be positive"))
	}
	if c.Exchange.MinInterval.Duration < 0 {
		errs = append(errs, errors.New("exchange.min_refresh_interval: must not be negative"))
	}
	return errors.Join(errs...)
}

func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
