package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Sources SourcesConfig `mapstructure:"sources"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Player  PlayerConfig  `mapstructure:"player"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourcesConfig holds per-source endpoints and fan-out behavior
type SourcesConfig struct {
	// Order sets merge precedence; earlier sources win dedup ties
	Order []string `mapstructure:"order"`
	// TimeoutSeconds bounds each source request independently
	TimeoutSeconds int          `mapstructure:"timeout_seconds"`
	Netease        SourceConfig `mapstructure:"netease"`
	QQMusic        SourceConfig `mapstructure:"qqmusic"`
	Kuwo           SourceConfig `mapstructure:"kuwo"`
}

// SourceConfig holds one source's endpoint settings
type SourceConfig struct {
	URL     string `mapstructure:"url"`     // API base URL
	Bitrate int    `mapstructure:"bitrate"` // preferred bitrate hint in kbps
	Limit   int    `mapstructure:"limit"`   // max results per search
}

// CacheConfig holds search result cache settings
type CacheConfig struct {
	Dir         string `mapstructure:"dir"`          // empty = default path, "-" = memory only
	MaxEntries  int    `mapstructure:"max_entries"`  // capacity bound for LRU eviction
	ExpireHours int    `mapstructure:"expire_hours"` // TTL hard cutoff
}

// PlayerConfig holds external audio player configuration
type PlayerConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Sources: SourcesConfig{
			Order:          []string{"netease", "qqmusic", "kuwo"},
			TimeoutSeconds: 8,
			Netease:        SourceConfig{URL: "https://music.163.com/api", Bitrate: 320, Limit: 30},
			QQMusic:        SourceConfig{URL: "https://c.y.qq.com/soso", Bitrate: 320, Limit: 30},
			Kuwo:           SourceConfig{URL: "https://www.kuwo.cn/api", Bitrate: 320, Limit: 30},
		},
		Cache: CacheConfig{
			Dir:         defaultCachePath(),
			MaxEntries:  15,
			ExpireHours: 2,
		},
		Player: PlayerConfig{
			Command: "mpv",
			Args:    []string{},
		},
		UI: UIConfig{
			Theme: "default",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// Timeout returns the per-source request timeout as a duration
func (c *SourcesConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 8 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "music", "music.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "music", "music.log")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "music")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "music")
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "music", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "music", "cache")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("MUSIC")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveTheme persists just the selected UI theme
func SaveTheme(theme string) error {
	viper.Set("ui.theme", theme)

	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
