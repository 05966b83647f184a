package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Config struct {
	//===============
	// Storage
	//===============
	// Root directory holding the cache snapshot, the daily logs and the
	// usage ledger.
	dataDir string

	//===============
	// Upstream
	//===============
	// Base URL of the weather API, without a trailing slash.
	baseURL string
	// Measurement units requested from the upstream ("standard",
	// "metric" or "imperial"). Recommendations assume Celsius, so the
	// default is metric.
	units string
	// Language code for localized condition descriptions.
	lang string
	// Maximum time for a single upstream request. The interactive loop
	// blocks while a request is in flight, so this is the upper bound
	// on how long the user waits.
	timeout time.Duration
}

type configDTO struct {
	DataDir string     `json:"dataDir,omitempty"`
	BaseURL string     `json:"baseUrl,omitempty"`
	Units   string     `json:"units,omitempty"`
	Lang    string     `json:"lang,omitempty"`
	Timeout timeoutDTO `json:"timeout,omitempty"`
}

// timeoutDTO accepts a duration string ("10s", "1m30s") or a bare
// number of seconds. A raw time.Duration field would read a JSON
// number as nanoseconds, which nobody writes by hand.
type timeoutDTO time.Duration

func (d *timeoutDTO) UnmarshalJSON(raw []byte) error {
	if string(raw) == "null" {
		return nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		parsed, parseErr := time.ParseDuration(asString)
		if parseErr != nil {
			return fmt.Errorf("timeout: %v", parseErr)
		}
		*d = timeoutDTO(parsed)
		return nil
	}

	var seconds float64
	if err := json.Unmarshal(raw, &seconds); err != nil {
		return fmt.Errorf("timeout: expected a duration string or a number of seconds")
	}
	*d = timeoutDTO(seconds * float64(time.Second))
	return nil
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	cfg, err := WithDefault().Build()
	if err != nil {
		return Config{}, err
	}

	if dto.DataDir != "" {
		cfg.dataDir = dto.DataDir
	}
	if dto.BaseURL != "" {
		cfg.baseURL = dto.BaseURL
	}
	if dto.Units != "" {
		cfg.units = dto.Units
	}
	if dto.Lang != "" {
		cfg.lang = dto.Lang
	}
	if dto.Timeout != 0 {
		cfg.timeout = time.Duration(dto.Timeout)
	}

	return cfg.Build()
}

func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}

	cfgDTO := configDTO{}
	if err := json.Unmarshal(configContent, &cfgDTO); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	return newConfigFromDTO(cfgDTO)
}

// WithDefault creates a new Config with default values for all fields.
func WithDefault() *Config {
	defaultConfig := Config{
		dataDir: "data",
		baseURL: "https://api.openweathermap.org/data/2.5",
		units:   "metric",
		lang:    "en",
		timeout: 10 * time.Second,
	}
	return &defaultConfig
}

func (c *Config) WithDataDir(dir string) *Config {
	c.dataDir = dir
	return c
}

func (c *Config) WithBaseURL(baseURL string) *Config {
	c.baseURL = baseURL
	return c
}

func (c *Config) WithUnits(units string) *Config {
	c.units = units
	return c
}

func (c *Config) WithLang(lang string) *Config {
	c.lang = lang
	return c
}

func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.timeout = timeout
	return c
}

func (c *Config) Build() (Config, error) {
	if c.dataDir == "" {
		return Config{}, fmt.Errorf("%w: dataDir cannot be empty", ErrInvalidConfig)
	}
	if c.baseURL == "" {
		return Config{}, fmt.Errorf("%w: baseUrl cannot be empty", ErrInvalidConfig)
	}
	switch c.units {
	case "standard", "metric", "imperial":
	default:
		return Config{}, fmt.Errorf("%w: unknown units %q", ErrInvalidConfig, c.units)
	}
	if c.lang == "" {
		return Config{}, fmt.Errorf("%w: lang cannot be empty", ErrInvalidConfig)
	}
	if c.timeout <= 0 {
		return Config{}, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}

	return *c, nil
}

func (c Config) DataDir() string {
	return c.dataDir
}

func (c Config) BaseURL() string {
	return c.baseURL
}

func (c Config) Units() string {
	return c.units
}

func (c Config) Lang() string {
	return c.lang
}

func (c Config) Timeout() time.Duration {
	return c.timeout
}
