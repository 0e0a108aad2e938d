package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Board.validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Telemetry.Enabled && c.Telemetry.ExportInterval <= 0 {
		return fmt.Errorf("telemetry.export_interval must be > 0 (got %v)", c.Telemetry.ExportInterval)
	}

	return nil
}

func (b *BoardConfig) validate() error {
	if b.BadgeInlineCap < 0 {
		return fmt.Errorf("badge_inline_cap must be >= 0 (got %d)", b.BadgeInlineCap)
	}
	if b.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be > 0 (got %d)", b.HistoryLimit)
	}
	if b.MaxListLimit <= 0 {
		return fmt.Errorf("max_list_limit must be > 0 (got %d)", b.MaxListLimit)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
		return nil
	}
	return fmt.Errorf("format must be json or text (got %q)", l.Format)
}

// Validate checks the boardctl configuration.
func (c *ClientConfig) Validate() error {
	u, err := url.Parse(c.Client.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("client.base_url must be an absolute URL (got %q)", c.Client.BaseURL)
	}
	if strings.TrimSpace(c.Client.UserID) == "" {
		return fmt.Errorf("client.user_id is required")
	}
	if c.Client.CountsPollInterval <= 0 {
		return fmt.Errorf("client.counts_poll_interval must be > 0 (got %v)", c.Client.CountsPollInterval)
	}
	if c.Client.RequestTimeout <= 0 {
		return fmt.Errorf("client.request_timeout must be > 0 (got %v)", c.Client.RequestTimeout)
	}
	return c.Log.validate()
}
