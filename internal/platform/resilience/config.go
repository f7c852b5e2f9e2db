package resilience

import "time"

// Breaker defaults, shared by env loading and the constructors.
const (
	DefaultFailureThreshold = 3
	DefaultOpenTimeout      = 30 * time.Second
	DefaultHalfOpenRequests = 1
)

// CircuitBreakerConfig is the env-driven shape of a breaker.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: DefaultFailureThreshold,
		OpenTimeout:      DefaultOpenTimeout,
		HalfOpenMaxReq:   DefaultHalfOpenRequests,
	}
}

// withDefaults fills zero or negative knobs; Enabled is left alone.
func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	c.FailureThreshold = atLeastOne(c.FailureThreshold, DefaultFailureThreshold)
	c.HalfOpenMaxReq = atLeastOne(c.HalfOpenMaxReq, DefaultHalfOpenRequests)
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = DefaultOpenTimeout
	}
	return c
}

func atLeastOne(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}
