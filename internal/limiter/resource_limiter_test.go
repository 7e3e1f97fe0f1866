package limiter

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/aleister1102/bugsentry/internal/config"
)

func TestRecommendedWorkersCapsAtGoroutineLimit(t *testing.T) {
	cfg := config.NewDefaultResourceLimiterConfig()
	cfg.MaxGoroutines = 2
	cfg.SystemMemThreshold = 1.0
	rl := NewResourceLimiter(cfg, zerolog.Nop())

	if got := rl.RecommendedWorkers(8); got != 2 {
		t.Errorf("RecommendedWorkers(8) = %d, want 2", got)
	}
	if got := rl.RecommendedWorkers(1); got != 1 {
		t.Errorf("RecommendedWorkers(1) = %d, want 1", got)
	}
}

func TestRecommendedWorkersUnderMemoryPressure(t *testing.T) {
	cfg := config.NewDefaultResourceLimiterConfig()
	// A threshold this low is always exceeded, forcing the derate path.
	cfg.SystemMemThreshold = 0.000001
	rl := NewResourceLimiter(cfg, zerolog.Nop())

	if got := rl.RecommendedWorkers(8); got != 1 {
		t.Errorf("RecommendedWorkers(8) = %d, want 1 under pressure", got)
	}
}

func TestCheckMemoryLimitWithinBudget(t *testing.T) {
	cfg := config.NewDefaultResourceLimiterConfig()
	cfg.MaxMemoryMB = 1 << 20
	rl := NewResourceLimiter(cfg, zerolog.Nop())

	if err := rl.CheckMemoryLimit(); err != nil {
		t.Errorf("CheckMemoryLimit: %v", err)
	}
}

func TestNewResourceLimiterBackfillsZeroValues(t *testing.T) {
	rl := NewResourceLimiter(config.ResourceLimiterConfig{}, zerolog.Nop())

	if rl.config.MaxMemoryMB != config.DefaultLimiterMaxMemoryMB {
		t.Errorf("MaxMemoryMB = %d, want %d", rl.config.MaxMemoryMB, config.DefaultLimiterMaxMemoryMB)
	}
	if rl.config.MaxGoroutines != config.DefaultLimiterMaxGoroutines {
		t.Errorf("MaxGoroutines = %d, want %d", rl.config.MaxGoroutines, config.DefaultLimiterMaxGoroutines)
	}
}
