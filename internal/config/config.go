// Package config loads and saves newsdesk's settings.
//
// Settings come from ~/.config/newsdesk/config.yaml (or an explicit path),
// overridden by NEWSDESK_* environment variables, on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	pkgerrors "github.com/zhubert/newsdesk/internal/errors"
)

const (
	// DefaultServerURL is where the news assistant backend listens by default.
	DefaultServerURL = "http://localhost:5111"
	// DefaultTheme matches the first registered UI theme.
	DefaultTheme = "dark-purple"
	// DefaultSearchLimit is the initial number of search results requested.
	DefaultSearchLimit = 10

	envPrefix = "NEWSDESK"
)

// DefaultSearchLimits are the choices offered by the search options form.
var DefaultSearchLimits = []int{5, 10, 20, 50}

// DefaultSuggestions are the preset chat prompts.
var DefaultSuggestions = []string{
	"What are the top AI stories this week?",
	"Summarize the latest research breakthroughs",
	"What's new with large language models?",
	"Any news about AI regulation?",
}

// SearchConfig holds search defaults
type SearchConfig struct {
	DefaultLimit int   `mapstructure:"default_limit" yaml:"default_limit"`
	Limits       []int `mapstructure:"limits" yaml:"limits"`
}

// Config holds the application configuration
type Config struct {
	ServerURL      string        `mapstructure:"server_url" yaml:"server_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"` // 0 = wait forever
	Theme          string        `mapstructure:"theme" yaml:"theme"`
	Notifications  bool          `mapstructure:"notifications" yaml:"notifications"` // Desktop alert when news fails to load
	Search         SearchConfig  `mapstructure:"search" yaml:"search"`
	Suggestions    []string      `mapstructure:"suggestions" yaml:"suggestions"`

	mu       sync.RWMutex
	filePath string
}

// Dir returns the path to the config directory
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "newsdesk"), nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns a config populated with built-in defaults.
func Default() *Config {
	return &Config{
		ServerURL: DefaultServerURL,
		Theme:     DefaultTheme,
		Search: SearchConfig{
			DefaultLimit: DefaultSearchLimit,
			Limits:       append([]int(nil), DefaultSearchLimits...),
		},
		Suggestions: append([]string(nil), DefaultSuggestions...),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_url", DefaultServerURL)
	v.SetDefault("request_timeout", time.Duration(0))
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("notifications", false)
	v.SetDefault("search.default_limit", DefaultSearchLimit)
	v.SetDefault("search.limits", DefaultSearchLimits)
	v.SetDefault("suggestions", DefaultSuggestions)
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error: defaults and environment apply.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, pkgerrors.ConfigLoadFailed("~/.config/newsdesk", err)
		}
		path = p
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, pkgerrors.ConfigLoadFailed(path, err)
		}
	}

	cfg := &Config{filePath: path}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, pkgerrors.ConfigLoadFailed(path, err)
	}
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ensureInitialized fills list settings that were set to empty in the file.
func (c *Config) ensureInitialized() {
	if len(c.Search.Limits) == 0 {
		c.Search.Limits = append([]int(nil), DefaultSearchLimits...)
	}
	if len(c.Suggestions) == 0 {
		c.Suggestions = append([]string(nil), DefaultSuggestions...)
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if strings.TrimSpace(c.ServerURL) == "" {
		return pkgerrors.ConfigInvalid("server_url is required")
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return pkgerrors.ConfigInvalid(fmt.Sprintf("server_url %q must be an http(s) URL", c.ServerURL))
	}
	if c.RequestTimeout < 0 {
		return pkgerrors.ConfigInvalid("request_timeout cannot be negative")
	}
	if c.Search.DefaultLimit <= 0 {
		return pkgerrors.ConfigInvalid("search.default_limit must be greater than zero")
	}
	for _, l := range c.Search.Limits {
		if l <= 0 {
			return pkgerrors.ConfigInvalid(fmt.Sprintf("search.limits contains non-positive value %d", l))
		}
	}
	return nil
}

// Save writes the configuration to its file as YAML.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return pkgerrors.ConfigSaveFailed("~/.config/newsdesk", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return pkgerrors.ConfigSaveFailed(path, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return pkgerrors.ConfigSaveFailed(path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return pkgerrors.ConfigSaveFailed(path, err)
	}
	return nil
}

// WriteDefault writes a default config file to path. It refuses to replace an
// existing file unless force is set.
func WriteDefault(path string, force bool) (*Config, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return nil, pkgerrors.ConfigSaveFailed(path, os.ErrExist)
		}
	}
	cfg := Default()
	cfg.filePath = path
	if err := cfg.Save(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the file this config was loaded from or will be saved to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetServerURL returns the backend base URL without a trailing slash.
func (c *Config) GetServerURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return strings.TrimRight(c.ServerURL, "/")
}

// SetServerURL overrides the backend base URL (used by --server and demo).
func (c *Config) SetServerURL(u string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ServerURL = u
}

// GetRequestTimeout returns the per-request timeout; 0 disables it.
func (c *Config) GetRequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.RequestTimeout
}

// GetTheme returns the UI theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the UI theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notifications
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Notifications = enabled
}

// GetSearchLimits returns a copy of the selectable result limits.
func (c *Config) GetSearchLimits() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]int(nil), c.Search.Limits...)
}

// GetDefaultSearchLimit returns the initial search limit.
func (c *Config) GetDefaultSearchLimit() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Search.DefaultLimit
}

// GetSuggestions returns a copy of the preset chat prompts.
func (c *Config) GetSuggestions() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.Suggestions...)
}
