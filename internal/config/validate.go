package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Importer.validate(); err != nil {
		return fmt.Errorf("importer: %w", err)
	}

	return nil
}

func (c *ImporterConfig) validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("max_concurrent must be > 0 (got %d)", c.MaxConcurrent)
	}
	if c.RetryMaxAttempts <= 0 {
		return fmt.Errorf("retry_max_attempts must be > 0 (got %d)", c.RetryMaxAttempts)
	}
	if c.RetryBaseDelay <= 0 {
		return fmt.Errorf("retry_base_delay must be > 0 (got %v)", c.RetryBaseDelay)
	}
	if c.RetryMaxDelay < c.RetryBaseDelay {
		return fmt.Errorf("retry_max_delay must be >= retry_base_delay (got %v < %v)", c.RetryMaxDelay, c.RetryBaseDelay)
	}
	if c.UnitMaxAttempts <= 0 {
		return fmt.Errorf("unit_max_attempts must be > 0 (got %d)", c.UnitMaxAttempts)
	}
	if c.QuizWorkers <= 0 {
		return fmt.Errorf("quiz_workers must be > 0 (got %d)", c.QuizWorkers)
	}

	switch c.AggregationPolicy {
	case AggregationFailClosed, AggregationFailOpen:
	default:
		return fmt.Errorf("aggregation_policy must be %q or %q (got %q)",
			AggregationFailClosed, AggregationFailOpen, c.AggregationPolicy)
	}

	return nil
}
