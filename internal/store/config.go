package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Market struct {
		Exchange  string `yaml:"exchange"`
		BaseURL   string `yaml:"base_url"`
		RateLimit int    `yaml:"rate_limit"`
	} `yaml:"market"`
	Poll struct {
		TickSeconds       int `yaml:"tick_seconds"`
		RetryPauseSeconds int `yaml:"retry_pause_seconds"`
	} `yaml:"poll"`
	Window struct {
		IntervalSeconds int `yaml:"interval_seconds"`
		// TruncateChars bounds each analysis text in the comparison prompt.
		// 0 disables truncation.
		TruncateChars int `yaml:"truncate_chars"`
		// FlushEmpty controls whether an empty window still fires the
		// comparison call on expiry. Defaults to true; a pointer so an
		// explicit false in the file survives default application.
		FlushEmpty *bool `yaml:"flush_empty"`
		// MaxEntries caps the buffer between flushes; oldest entries drop
		// first once the cap is hit. 0 means unbounded, which grows without
		// limit if the interval is misconfigured very large.
		MaxEntries int `yaml:"max_entries"`
	} `yaml:"window"`
	LLM struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
		// MaxTokens and Temperature are pointers so an explicit 0 in the
		// file survives default application (temperature 0 is a meaningful
		// creativity setting).
		MaxTokens   *int     `yaml:"max_tokens"`
		Temperature *float32 `yaml:"temperature"`
		System      string   `yaml:"system"`
		PickSystem  string   `yaml:"pick_system"`
	} `yaml:"llm"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

func (c *Config) Validate() error {
	if c.Market.Exchange == "" {
		return fmt.Errorf("market.exchange cannot be empty")
	}
	if c.Poll.TickSeconds <= 0 {
		return fmt.Errorf("poll.tick_seconds must be positive, got %d", c.Poll.TickSeconds)
	}
	if c.Window.IntervalSeconds <= 0 {
		return fmt.Errorf("window.interval_seconds must be positive, got %d", c.Window.IntervalSeconds)
	}
	if c.Window.TruncateChars < 0 {
		return fmt.Errorf("window.truncate_chars cannot be negative, got %d", c.Window.TruncateChars)
	}
	if c.Window.MaxEntries < 0 {
		return fmt.Errorf("window.max_entries cannot be negative, got %d", c.Window.MaxEntries)
	}
	switch c.LLM.Provider {
	case "OPENAI", "CLAUDE", "GEMINI", "NOOP":
	default:
		return fmt.Errorf("llm.provider must be 'OPENAI', 'CLAUDE', 'GEMINI', or 'NOOP', got '%s'", c.LLM.Provider)
	}
	if c.LLM.MaxTokens != nil && *c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", *c.LLM.MaxTokens)
	}
	if c.LLM.Temperature != nil && (*c.LLM.Temperature < 0 || *c.LLM.Temperature > 2) {
		return fmt.Errorf("llm.temperature must be between 0-2, got %.2f", *c.LLM.Temperature)
	}
	return nil
}

// TickPeriod returns the poll tick budget as a duration.
func (c *Config) TickPeriod() time.Duration {
	return time.Duration(c.Poll.TickSeconds) * time.Second
}

// RetryPause returns the pause applied after a failed quote fetch.
func (c *Config) RetryPause() time.Duration {
	return time.Duration(c.Poll.RetryPauseSeconds) * time.Second
}

// WindowInterval returns the duration between comparison flushes.
func (c *Config) WindowInterval() time.Duration {
	return time.Duration(c.Window.IntervalSeconds) * time.Second
}

// FlushEmptyEnabled reports whether an empty window still fires the
// comparison call on expiry.
func (c *Config) FlushEmptyEnabled() bool {
	return c.Window.FlushEmpty == nil || *c.Window.FlushEmpty
}

// LLMMaxTokens returns the completion output length bound.
func (c *Config) LLMMaxTokens() int {
	if c.LLM.MaxTokens == nil {
		return 300
	}
	return *c.LLM.MaxTokens
}

// LLMTemperature returns the completion creativity setting.
func (c *Config) LLMTemperature() float32 {
	if c.LLM.Temperature == nil {
		return 0.7
	}
	return *c.LLM.Temperature
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Market.Exchange == "" {
		c.Market.Exchange = "US"
	}
	if c.Market.RateLimit == 0 {
		c.Market.RateLimit = 10
	}
	if c.Poll.TickSeconds == 0 {
		c.Poll.TickSeconds = 1
	}
	if c.Poll.RetryPauseSeconds == 0 {
		c.Poll.RetryPauseSeconds = 1
	}
	if c.Window.IntervalSeconds == 0 {
		c.Window.IntervalSeconds = 60
	}
	if c.Window.FlushEmpty == nil {
		t := true
		c.Window.FlushEmpty = &t
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "NOOP"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-3.5-turbo"
	}
	if c.LLM.MaxTokens == nil {
		n := 300
		c.LLM.MaxTokens = &n
	}
	if c.LLM.Temperature == nil {
		f := float32(0.7)
		c.LLM.Temperature = &f
	}
	if c.LLM.System == "" {
		c.LLM.System = "You are a helpful financial advisor."
	}
	if c.LLM.PickSystem == "" {
		c.LLM.PickSystem = "You are a financial expert specialized in stock picking."
	}
}
