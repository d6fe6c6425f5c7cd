package coach

import "time"

// Config holds study-plan generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds one Advise call including provider retries.
	Timeout time.Duration
}

// DefaultConfig returns the generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.4,
		Timeout:     30 * time.Second,
	}
}
