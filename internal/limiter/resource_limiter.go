// Package limiter bounds the resource footprint of a scan. Very large trees
// must not translate into unbounded worker goroutines or file-handle
// pressure, so the scanner derates its worker pool through this type.
package limiter

import (
	"fmt"
	"runtime"

	"github.com/aleister1102/bugsentry/internal/config"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/mem"
)

// ResourceLimiter checks process and system memory pressure on demand.
type ResourceLimiter struct {
	config config.ResourceLimiterConfig
	logger zerolog.Logger
}

// NewResourceLimiter creates a new resource limiter.
func NewResourceLimiter(cfg config.ResourceLimiterConfig, logger zerolog.Logger) *ResourceLimiter {
	if cfg.MaxMemoryMB == 0 {
		cfg.MaxMemoryMB = config.DefaultLimiterMaxMemoryMB
	}
	if cfg.MaxGoroutines == 0 {
		cfg.MaxGoroutines = config.DefaultLimiterMaxGoroutines
	}
	if cfg.SystemMemThreshold == 0 {
		cfg.SystemMemThreshold = config.DefaultLimiterSystemMemThreshold
	}
	return &ResourceLimiter{
		config: cfg,
		logger: logger.With().Str("component", "ResourceLimiter").Logger(),
	}
}

// CheckMemoryLimit checks if current heap usage exceeds the configured limit.
func (rl *ResourceLimiter) CheckMemoryLimit() error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	currentMB := int64(m.Alloc / 1024 / 1024)
	if currentMB > rl.config.MaxMemoryMB {
		return fmt.Errorf("memory limit exceeded: current %dMB > limit %dMB", currentMB, rl.config.MaxMemoryMB)
	}
	return nil
}

// CheckSystemMemory reports whether system memory usage exceeds the threshold.
func (rl *ResourceLimiter) CheckSystemMemory() (bool, error) {
	vmStat, err := mem.VirtualMemory()
	if err != nil {
		return false, fmt.Errorf("failed to get system memory stats: %w", err)
	}

	usedPercent := vmStat.UsedPercent / 100.0
	if usedPercent > rl.config.SystemMemThreshold {
		rl.logger.Warn().
			Float64("used_percent", usedPercent*100).
			Float64("threshold_percent", rl.config.SystemMemThreshold*100).
			Uint64("used_mb", vmStat.Used/1024/1024).
			Uint64("total_mb", vmStat.Total/1024/1024).
			Msg("System memory usage exceeded threshold")
		return true, nil
	}
	return false, nil
}

// RecommendedWorkers derates a requested worker count under memory pressure
// and caps it at the goroutine limit. Returns at least one.
func (rl *ResourceLimiter) RecommendedWorkers(requested int) int {
	workers := requested
	if workers > rl.config.MaxGoroutines {
		workers = rl.config.MaxGoroutines
	}

	constrained := rl.CheckMemoryLimit() != nil
	if !constrained {
		if over, err := rl.CheckSystemMemory(); err == nil && over {
			constrained = true
		}
	}
	if constrained {
		workers = 1
		rl.logger.Warn().Int("requested", requested).Msg("Memory pressure detected, scanning single-threaded")
	}

	if workers < 1 {
		workers = 1
	}
	return workers
}
