package systems

import (
	"math"
	"testing"

	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
)

func newTestDifficultyEngine() *DifficultyEngine {
	return NewDifficultyEngine(ecs.NewEntityManager(), config.DefaultGameplayConfig().Scroll)
}

func TestNewDifficultyEngine(t *testing.T) {
	engine := newTestDifficultyEngine()

	if engine.Speed() != 5 {
		t.Errorf("initial speed = %v, want 5", engine.Speed())
	}
	if engine.IsAboveBase() {
		t.Error("initial speed should not be above base")
	}
	if engine.IsHighSpeed() {
		t.Error("initial speed should not be high speed")
	}
}

func TestDifficultyEngine_ApplyPenalty(t *testing.T) {
	engine := newTestDifficultyEngine()

	// 5 -> 6 -> 7.2 -> 8.64 -> 10.368 -> 12.4416 -> 14.92992 -> 17.915904 -> 18（上限）
	expected := []float64{6, 7.2, 8.64, 10.368, 12.4416, 14.92992, 17.915904, 18, 18}
	for i, want := range expected {
		got := engine.ApplyPenalty()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("penalty #%d: speed = %v, want %v", i+1, got, want)
		}
	}
}

func TestDifficultyEngine_ResetSpeed(t *testing.T) {
	engine := newTestDifficultyEngine()
	engine.SetSpeed(15)

	engine.ResetSpeed()

	if engine.Speed() != 5 {
		t.Errorf("speed after reset = %v, want 5", engine.Speed())
	}
}

func TestDifficultyEngine_SetSpeedCapped(t *testing.T) {
	engine := newTestDifficultyEngine()
	engine.SetSpeed(99)

	if engine.Speed() != 18 {
		t.Errorf("speed = %v, want capped at 18", engine.Speed())
	}
}

func TestDifficultyEngine_Thresholds(t *testing.T) {
	tests := []struct {
		name          string
		speed         float64
		wantAboveBase bool
		wantHighSpeed bool
	}{
		{"基础速度", 5, false, false},
		{"一次惩罚", 6, true, false},
		{"恰好1.5倍", 7.5, true, false},
		{"超过1.5倍", 7.6, true, true},
		{"上限", 18, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestDifficultyEngine()
			engine.SetSpeed(tt.speed)

			if got := engine.IsAboveBase(); got != tt.wantAboveBase {
				t.Errorf("IsAboveBase() = %v, want %v", got, tt.wantAboveBase)
			}
			if got := engine.IsHighSpeed(); got != tt.wantHighSpeed {
				t.Errorf("IsHighSpeed() = %v, want %v", got, tt.wantHighSpeed)
			}
		})
	}
}
