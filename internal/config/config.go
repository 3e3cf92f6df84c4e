package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MalithGihan/assetd/internal/store"
)

const DefaultAppID = "com.elato.elato-local"

type Config struct {
	Port string `env:"PORT" envDefault:"8081"`

	AppID       string `env:"ELATO_APP_ID"`
	TauriBundle string `env:"TAURI_BUNDLE_IDENTIFIER"`
	DataDir     string `env:"ELATO_DATA_DIR"`
	VoicesDir   string `env:"ELATO_VOICES_DIR"`
	ImagesDir   string `env:"ELATO_IMAGES_DIR"`

	VoiceBaseURL    string        `env:"ELATO_VOICE_BASE_URL" envDefault:"https://pub-6b92949063b142d59fc3478c56ec196c.r2.dev"`
	DownloadTimeout time.Duration `env:"ELATO_DOWNLOAD_TIMEOUT" envDefault:"0s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

var _ store.Roots = (*Config)(nil)

// Load parses the environment and fills in the data directories.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.resolveDirs(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) VoicesRoot() string { return c.VoicesDir }
func (c *Config) ImagesRoot() string { return c.ImagesDir }

func (c *Config) appID() string {
	switch {
	case c.AppID != "":
		return c.AppID
	case c.TauriBundle != "":
		return c.TauriBundle
	}
	return DefaultAppID
}

func (c *Config) resolveDirs() error {
	if c.DataDir == "" {
		base, err := platformDataDir(runtime.GOOS)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		c.DataDir = filepath.Join(base, c.appID())
	}
	abs, err := filepath.Abs(c.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	c.DataDir = abs
	if c.VoicesDir == "" {
		c.VoicesDir = filepath.Join(c.DataDir, "voices")
	}
	if c.ImagesDir == "" {
		c.ImagesDir = filepath.Join(c.DataDir, "images")
	}
	return nil
}

// platformDataDir is the per-user application data base directory.
func platformDataDir(goos string) (string, error) {
	if goos == "windows" {
		if v := os.Getenv("APPDATA"); v != "" {
			return v, nil
		}
		return os.UserHomeDir()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if goos == "darwin" {
		return filepath.Join(home, "Library", "Application Support"), nil
	}
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v, nil
	}
	return filepath.Join(home, ".local", "share"), nil
}
