package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment names accepted in RUNLOOP_ENV or the config file.
const (
	EnvProd = "prod"
	EnvDev  = "dev"
)

// API and SSH endpoints per environment.
const (
	ProdBaseURL      = "https://api.runloop.ai"
	DevBaseURL       = "https://api.runloop.pro"
	ProdSSHProxyAddr = "ssh.runloop.ai:443"
	DevSSHProxyAddr  = "ssh.runloop.pro:443"
)

// Defaults for the interactive browser.
const (
	DefaultPageSize     = 20
	DefaultPollInterval = 5 * time.Second
)

// FileConfig is the optional on-disk configuration, loaded from
// ~/.config/rlctl/config.toml. Environment variables take precedence.
type FileConfig struct {
	Env          string `toml:"env"`
	PageSize     int    `toml:"page_size"`
	PollInterval string `toml:"poll_interval"`
}

// Config holds the resolved client configuration.
type Config struct {
	APIKey       string
	Env          string
	PageSize     int
	PollInterval time.Duration
}

// Load resolves configuration from the config file (if present) and the
// environment. RUNLOOP_API_KEY is required by callers that talk to the
// API; Load itself does not enforce it so that offline commands work.
func Load() (*Config, error) {
	cfg := &Config{
		Env:          EnvProd,
		PageSize:     DefaultPageSize,
		PollInterval: DefaultPollInterval,
	}

	path, err := ConfigFilePath()
	if err == nil {
		if fc, err := loadFile(path); err != nil {
			return nil, err
		} else if fc != nil {
			if err := cfg.applyFile(fc); err != nil {
				return nil, err
			}
		}
	}

	if env := os.Getenv("RUNLOOP_ENV"); env != "" {
		cfg.Env = normalizeEnv(env)
	}
	cfg.APIKey = os.Getenv("RUNLOOP_API_KEY")

	return cfg, nil
}

func loadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &fc, nil
}

func (c *Config) applyFile(fc *FileConfig) error {
	if fc.Env != "" {
		c.Env = normalizeEnv(fc.Env)
	}
	if fc.PageSize != 0 {
		if fc.PageSize < 1 {
			return fmt.Errorf("page_size must be positive (got %d)", fc.PageSize)
		}
		c.PageSize = fc.PageSize
	}
	if fc.PollInterval != "" {
		d, err := time.ParseDuration(fc.PollInterval)
		if err != nil {
			return fmt.Errorf("invalid poll_interval %q: %w", fc.PollInterval, err)
		}
		if d < 0 {
			return fmt.Errorf("poll_interval must not be negative (got %s)", d)
		}
		c.PollInterval = d
	}
	return nil
}

func normalizeEnv(env string) string {
	if strings.EqualFold(env, EnvDev) {
		return EnvDev
	}
	return EnvProd
}

// IsDev reports whether the dev environment is selected.
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

// BaseURL returns the API base URL for the selected environment.
func (c *Config) BaseURL() string {
	if c.IsDev() {
		return DevBaseURL
	}
	return ProdBaseURL
}

// SSHProxyAddr returns the host:port of the TLS SSH proxy for the
// selected environment.
func (c *Config) SSHProxyAddr() string {
	if c.IsDev() {
		return DevSSHProxyAddr
	}
	return ProdSSHProxyAddr
}

// ConfigFilePath returns the path of the optional TOML config file.
func ConfigFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rlctl", "config.toml"), nil
}

// SSHKeysDir returns the directory where devbox SSH keys are stored.
func SSHKeysDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".runloop", "ssh_keys"), nil
}

// CacheDir returns the rlctl cache directory.
func CacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rlctl"), nil
}
