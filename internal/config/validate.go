package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if err := c.Redis.validate(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	if c.RateLimit.WritesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
	}

	if err := c.Hiring.validate(); err != nil {
		return fmt.Errorf("hiring: %w", err)
	}

	return nil
}

func (r *RedisConfig) validate() error {
	if !r.Enabled() {
		return nil
	}
	if !strings.HasPrefix(r.URL, "redis://") && !strings.HasPrefix(r.URL, "rediss://") {
		return fmt.Errorf("url must start with redis:// or rediss://")
	}
	if strings.TrimSpace(r.Channel) == "" {
		return fmt.Errorf("channel is required")
	}
	if r.BufferSize < 1 || r.BufferSize > 65536 {
		return fmt.Errorf("buffer_size must be in [1, 65536] (got %d)", r.BufferSize)
	}
	if r.PublishTimeout <= 0 {
		return fmt.Errorf("publish_timeout must be > 0 (got %s)", r.PublishTimeout)
	}
	return nil
}

func (h *HiringConfig) validate() error {
	if h.MaxRoundsPerJob < 0 {
		return fmt.Errorf("max_rounds_per_job must be >= 0 (got %d)", h.MaxRoundsPerJob)
	}
	if h.MaxSelectedSkills <= 0 {
		return fmt.Errorf("max_selected_skills must be > 0 (got %d)", h.MaxSelectedSkills)
	}
	if h.MaxCoverLetterChars <= 0 {
		return fmt.Errorf("max_cover_letter_chars must be > 0 (got %d)", h.MaxCoverLetterChars)
	}
	if h.AuditHistoryLimit <= 0 {
		return fmt.Errorf("audit_history_limit must be > 0 (got %d)", h.AuditHistoryLimit)
	}
	return nil
}
