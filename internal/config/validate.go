package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Portfolio.validate(); err != nil {
		return fmt.Errorf("portfolio: %w", err)
	}

	if err := c.Safety.validate(); err != nil {
		return fmt.Errorf("safety: %w", err)
	}

	if c.Analysis.Enabled() && c.Analysis.MaxTokens <= 0 {
		return fmt.Errorf("analysis.max_tokens must be > 0 (got %d)", c.Analysis.MaxTokens)
	}

	return nil
}

func (p *PortfolioConfig) validate() error {
	if p.MaxKeywords <= 0 {
		return fmt.Errorf("max_keywords must be > 0 (got %d)", p.MaxKeywords)
	}
	if p.MinKeywordLen < 1 {
		return fmt.Errorf("min_keyword_len must be >= 1 (got %d)", p.MinKeywordLen)
	}
	if p.SearchLimit <= 0 || p.SearchLimit > 200 {
		return fmt.Errorf("search_limit must be in 1..200 (got %d)", p.SearchLimit)
	}
	if p.MinConfidence < 0 || p.MinConfidence > 100 {
		return fmt.Errorf("min_confidence must be in 0..100 (got %d)", p.MinConfidence)
	}
	if p.FallbackSelects < 0 {
		return fmt.Errorf("fallback_selects must be >= 0 (got %d)", p.FallbackSelects)
	}
	return nil
}

func (s *SafetyConfig) validate() error {
	if s.ListLimit <= 0 || s.ListLimit > 100 {
		return fmt.Errorf("list_limit must be in 1..100 (got %d)", s.ListLimit)
	}
	if s.TrackerQueueSize <= 0 {
		return fmt.Errorf("tracker_queue_size must be > 0 (got %d)", s.TrackerQueueSize)
	}
	if s.TrackerWorkers <= 0 {
		return fmt.Errorf("tracker_workers must be > 0 (got %d)", s.TrackerWorkers)
	}
	return nil
}
