package systems

import (
	"math"
	"testing"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
	"github.com/decker502/cosmiccalc/pkg/types"
)

func newTestSpawnSystem(w *testWorld) *SpawnSystem {
	return NewSpawnSystem(w.em, w.rng, w.difficulty, w.cfg, w.player)
}

func countClouds(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.CloudComponent](em))
}

func countPowerUps(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.PowerUpComponent](em))
}

func TestSpawnSystem_InitialWall(t *testing.T) {
	w := newTestWorld(t)
	spawner := newTestSpawnSystem(w)

	ids := spawner.SpawnInitialWall()

	if len(ids) != config.LaneCount {
		t.Fatalf("wall size = %d, want %d", len(ids), config.LaneCount)
	}

	wantY := []float64{56, 289, 522}
	for lane, id := range ids {
		rect, _ := ecs.GetComponent[*components.RectComponent](w.em, id)
		cloud, _ := ecs.GetComponent[*components.CloudComponent](w.em, id)

		if rect.X != 1300 {
			t.Errorf("lane %d: X = %v, want 1300", lane, rect.X)
		}
		if cloud.Lane != lane {
			t.Errorf("cloud lane = %d, want %d", cloud.Lane, lane)
		}
		if cloud.LaneY != wantY[lane] {
			t.Errorf("lane %d: LaneY = %v, want %v", lane, cloud.LaneY, wantY[lane])
		}
		if cloud.BobPhase < 0 || cloud.BobPhase >= 2*math.Pi {
			t.Errorf("lane %d: BobPhase = %v out of [0, 2π)", lane, cloud.BobPhase)
		}
	}
}

func TestSpawnSystem_OperandRanges(t *testing.T) {
	w := newTestWorld(t)
	w.playerComp(t).Score = 20
	spawner := newTestSpawnSystem(w)

	for i := 0; i < 200; i++ {
		spawner.SpawnCloudWall(0)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.CloudComponent](w.em) {
		cloud, _ := ecs.GetComponent[*components.CloudComponent](w.em, id)
		if cloud.Op == types.OpMultiply {
			if cloud.Operand < 2 || cloud.Operand > 4 {
				t.Errorf("multiply operand %d out of [2, 4]", cloud.Operand)
			}
			continue
		}
		if cloud.Operand < 1 || cloud.Operand > 9 {
			t.Errorf("%v operand %d out of [1, 9]", cloud.Op, cloud.Operand)
		}
	}
}

func TestSpawnSystem_DivideUnlock(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		wantDivide bool
	}{
		{"分数为0", 0, false},
		{"分数恰好为10", 10, false},
		{"分数为11", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.playerComp(t).Score = tt.score
			spawner := newTestSpawnSystem(w)

			for i := 0; i < 100; i++ {
				spawner.SpawnCloudWall(0)
			}

			sawDivide := false
			for _, id := range ecs.GetEntitiesWith1[*components.CloudComponent](w.em) {
				cloud, _ := ecs.GetComponent[*components.CloudComponent](w.em, id)
				if cloud.Op == types.OpDivide {
					sawDivide = true
					break
				}
			}
			if sawDivide != tt.wantDivide {
				t.Errorf("divide present = %v, want %v", sawDivide, tt.wantDivide)
			}
		})
	}
}

// 运算池来自 clouds.operations 配置，解锁后追加 unlockedOperations
func TestSpawnSystem_ConfiguredOperations(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		allowed map[types.Operation]bool
	}{
		{"未解锁只有减法", 0, map[types.Operation]bool{types.OpSubtract: true}},
		{"解锁后加入乘法", 50, map[types.Operation]bool{types.OpSubtract: true, types.OpMultiply: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.cfg.Clouds.Operations = []types.Operation{types.OpSubtract}
			w.cfg.Clouds.UnlockedOperations = []types.Operation{types.OpMultiply}
			w.playerComp(t).Score = tt.score
			spawner := newTestSpawnSystem(w)

			for i := 0; i < 50; i++ {
				spawner.SpawnCloudWall(0)
			}

			for _, id := range ecs.GetEntitiesWith1[*components.CloudComponent](w.em) {
				cloud, _ := ecs.GetComponent[*components.CloudComponent](w.em, id)
				if !tt.allowed[cloud.Op] {
					t.Fatalf("unexpected operation %v", cloud.Op)
				}
			}
		})
	}
}

func TestSpawnSystem_CloudTimer(t *testing.T) {
	w := newTestWorld(t)
	spawner := newTestSpawnSystem(w)

	for i := 0; i < 159; i++ {
		spawner.Update(160)
	}
	if n := countClouds(w.em); n != 0 {
		t.Fatalf("clouds before interval = %d, want 0", n)
	}

	spawner.Update(160)
	if n := countClouds(w.em); n != 3 {
		t.Errorf("clouds after 160 frames = %d, want 3", n)
	}
}

func TestSpawnSystem_RapidCloudTimer(t *testing.T) {
	w := newTestWorld(t)
	spawner := newTestSpawnSystem(w)

	for i := 0; i < 160; i++ {
		spawner.Update(40)
	}

	if n := countClouds(w.em); n != 12 {
		t.Errorf("clouds after 160 rapid frames = %d, want 12", n)
	}
}

func TestSpawnSystem_PowerUpTimer(t *testing.T) {
	w := newTestWorld(t)
	spawner := newTestSpawnSystem(w)

	for i := 0; i < 599; i++ {
		spawner.Update(160)
	}
	if n := countPowerUps(w.em); n != 0 {
		t.Fatalf("power-ups before interval = %d, want 0", n)
	}

	spawner.Update(160)
	if n := countPowerUps(w.em); n != 1 {
		t.Errorf("power-ups after 600 frames = %d, want 1", n)
	}
}

func TestSpawnSystem_PowerUpPosition(t *testing.T) {
	w := newTestWorld(t)
	spawner := newTestSpawnSystem(w)

	for i := 0; i < 500; i++ {
		id := spawner.SpawnPowerUp()
		rect, _ := ecs.GetComponent[*components.RectComponent](w.em, id)
		if rect.X != 1050 {
			t.Fatalf("power-up X = %v, want 1050", rect.X)
		}
		if rect.Y < 50 || rect.Y > 650 {
			t.Fatalf("power-up Y = %v out of [50, 650]", rect.Y)
		}
	}
}

func TestSpawnSystem_PowerUpDistribution(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		expected map[types.PowerUpType]float64
	}{
		{
			name:  "普通权重",
			speed: 5,
			expected: map[types.PowerUpType]float64{
				types.PowerUpSlowMotion:     0.25,
				types.PowerUpRoundNum:       0.25,
				types.PowerUpGhost:          0.20,
				types.PowerUpInvertControls: 0.20,
				types.PowerUpRapidFire:      0.10,
			},
		},
		{
			name:  "高速权重",
			speed: 10,
			expected: map[types.PowerUpType]float64{
				types.PowerUpRoundNum:       0.50,
				types.PowerUpSlowMotion:     0.20,
				types.PowerUpGhost:          0.15,
				types.PowerUpInvertControls: 0.15,
				types.PowerUpRapidFire:      0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.difficulty.SetSpeed(tt.speed)
			spawner := newTestSpawnSystem(w)

			sampleCount := 10000
			counts := make(map[types.PowerUpType]int)
			for i := 0; i < sampleCount; i++ {
				counts[spawner.RollPowerUpType()]++
			}

			// 允许 2 个百分点偏差
			tolerance := 0.02
			for powerUpType, want := range tt.expected {
				got := float64(counts[powerUpType]) / float64(sampleCount)
				if math.Abs(got-want) > tolerance {
					t.Errorf("%s: frequency %.3f, want %.2f ± %.2f", powerUpType, got, want, tolerance)
				}
			}

			if tt.expected[types.PowerUpRapidFire] == 0 && counts[types.PowerUpRapidFire] != 0 {
				t.Errorf("rapid fire rolled %d times at high speed, want 0", counts[types.PowerUpRapidFire])
			}
		})
	}
}
