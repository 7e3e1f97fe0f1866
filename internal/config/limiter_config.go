package config

import "time"

// ResourceLimiterConfig holds configuration for the scan resource limiter.
type ResourceLimiterConfig struct {
	MaxMemoryMB        int64         `json:"max_memory_mb,omitempty" yaml:"max_memory_mb,omitempty" validate:"omitempty,min=1"`
	MaxGoroutines      int           `json:"max_goroutines,omitempty" yaml:"max_goroutines,omitempty" validate:"omitempty,min=1"`
	SystemMemThreshold float64       `json:"system_mem_threshold,omitempty" yaml:"system_mem_threshold,omitempty" validate:"omitempty,gt=0,lte=1"`
	CheckInterval      time.Duration `json:"check_interval,omitempty" yaml:"check_interval,omitempty"`
}

// NewDefaultResourceLimiterConfig creates a new ResourceLimiterConfig with default values.
func NewDefaultResourceLimiterConfig() ResourceLimiterConfig {
	return ResourceLimiterConfig{
		MaxMemoryMB:        DefaultLimiterMaxMemoryMB,
		MaxGoroutines:      DefaultLimiterMaxGoroutines,
		SystemMemThreshold: DefaultLimiterSystemMemThreshold,
		CheckInterval:      DefaultLimiterCheckIntervalSecs * time.Second,
	}
}
