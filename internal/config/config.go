// ABOUTME: Configuration management for the news provider, seed topic, and navigation presets
// ABOUTME: Loads and saves a JSON file under the XDG config directory with env fallback for the API key

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config stores headlines configuration.
type Config struct {
	// APIKey is the provider credential. Falls back to $NEWSAPI_KEY when empty.
	APIKey string `json:"api_key,omitempty"`

	// Provider selects the search backend: "newsapi" (default) or "rss".
	Provider string `json:"provider,omitempty"`

	// Endpoint is the NewsAPI search endpoint.
	Endpoint string `json:"endpoint,omitempty"`

	// RSSEndpoint is the RSS search endpoint used by the "rss" provider.
	// The topic is added as the q parameter.
	RSSEndpoint string `json:"rss_endpoint,omitempty"`

	// SeedTopic is queried on start and on Home.
	SeedTopic string `json:"seed_topic,omitempty"`

	// TimeZone is the IANA zone publish dates are displayed in.
	TimeZone string `json:"time_zone,omitempty"`

	// Nav lists the navigation tabs. Empty means DefaultNav.
	Nav []NavItem `json:"nav,omitempty"`

	// LogFile is where the terminal viewer writes logs.
	// Supports ~ expansion. Defaults to $XDG_STATE_HOME/headlines/headlines.log.
	LogFile string `json:"log_file,omitempty"`

	path string
}

// GetAPIKey returns the configured key, falling back to the environment
func (c *Config) GetAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(APIKeyEnv)
}

// GetProvider returns the configured provider, defaulting to "newsapi".
func (c *Config) GetProvider() string {
	if c.Provider == "" {
		return ProviderNewsAPI
	}
	return strings.ToLower(c.Provider)
}

// GetEndpoint returns the NewsAPI endpoint
func (c *Config) GetEndpoint() string {
	if c.Endpoint == "" {
		return DefaultEndpoint
	}
	return c.Endpoint
}

// GetRSSEndpoint returns the RSS search endpoint
func (c *Config) GetRSSEndpoint() string {
	if c.RSSEndpoint == "" {
		return DefaultRSSEndpoint
	}
	return c.RSSEndpoint
}

// GetSeedTopic returns the seed topic, defaulting to DefaultSeedTopic.
func (c *Config) GetSeedTopic() string {
	if strings.TrimSpace(c.SeedTopic) == "" {
		return DefaultSeedTopic
	}
	return strings.TrimSpace(c.SeedTopic)
}

// GetTimeZone returns the display time zone name
func (c *Config) GetTimeZone() string {
	if c.TimeZone == "" {
		return DefaultTimeZone
	}
	return c.TimeZone
}

// GetNav returns the navigation presets, skipping entries without a query.
func (c *Config) GetNav() []NavItem {
	if len(c.Nav) == 0 {
		return DefaultNav()
	}
	items := make([]NavItem, 0, len(c.Nav))
	for _, item := range c.Nav {
		if strings.TrimSpace(item.Query) == "" {
			continue
		}
		if item.Label == "" {
			item.Label = item.Query
		}
		items = append(items, item)
	}
	return items
}

// GetLogFile returns the log file path with ~ expanded
func (c *Config) GetLogFile() string {
	if c.LogFile == "" {
		return filepath.Join(defaultStateDir(), "headlines.log")
	}
	return ExpandPath(c.LogFile)
}

// Validate checks the fields that would make every search fail.
func (c *Config) Validate() error {
	switch c.GetProvider() {
	case ProviderNewsAPI:
		if c.GetAPIKey() == "" {
			return fmt.Errorf("no API key configured: run 'headlines setup', pass --api-key, or set %s", APIKeyEnv)
		}
	case ProviderRSS:
	default:
		return fmt.Errorf("unknown provider: %q", c.Provider)
	}
	return nil
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	if c.path == "" {
		return GetConfigPath()
	}
	return c.path
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "headlines", "config.json")
}

// Load reads config from the default path.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads config from path. A missing file yields an empty config.
func LoadFrom(path string) (*Config, error) {
	path = ExpandPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{path: path}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.path = path
	return &cfg, nil
}

// Save writes config to the path it was loaded from.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(c.Path(), data)
}

// writeFileAtomic writes data to a temp file next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// defaultStateDir returns the standard XDG state directory for headlines.
func defaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, _ := os.UserHomeDir()
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "headlines")
}
