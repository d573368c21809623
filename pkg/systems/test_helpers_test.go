package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
	"github.com/decker502/cosmiccalc/pkg/entities"
	"github.com/decker502/cosmiccalc/pkg/types"
)

// testWorld 测试用的最小游戏世界
type testWorld struct {
	em         *ecs.EntityManager
	cfg        *config.GameplayConfig
	rng        *rand.Rand
	player     ecs.EntityID
	difficulty *DifficultyEngine
	effects    *EffectSystem
}

// newTestWorld 创建使用默认配置和固定种子的测试世界
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	em := ecs.NewEntityManager()
	cfg := config.DefaultGameplayConfig()
	difficulty := NewDifficultyEngine(em, cfg.Scroll)

	return &testWorld{
		em:         em,
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(42)),
		player:     entities.NewPlayerEntity(em),
		difficulty: difficulty,
		effects:    NewEffectSystem(em, difficulty, cfg),
	}
}

func (w *testWorld) playerRect(t *testing.T) *components.RectComponent {
	t.Helper()
	rect, ok := ecs.GetComponent[*components.RectComponent](w.em, w.player)
	if !ok {
		t.Fatal("player has no RectComponent")
	}
	return rect
}

func (w *testWorld) playerComp(t *testing.T) *components.PlayerComponent {
	t.Helper()
	player, ok := ecs.GetComponent[*components.PlayerComponent](w.em, w.player)
	if !ok {
		t.Fatal("player has no PlayerComponent")
	}
	return player
}

// cloudOnPlayer 在飞船当前位置创建一朵云（保证重叠）
func (w *testWorld) cloudOnPlayer(t *testing.T, op types.Operation, operand int) ecs.EntityID {
	t.Helper()
	id := entities.NewCloudEntity(w.em, entities.CloudParams{X: config.PlayerStartX, Lane: 1, Op: op, Operand: operand}, w.cfg.Clouds)
	rect, _ := ecs.GetComponent[*components.RectComponent](w.em, id)
	rect.Y = w.playerRect(t).Y
	return id
}

// powerUpOnPlayer 在飞船当前位置创建一个道具
func (w *testWorld) powerUpOnPlayer(t *testing.T, powerUpType types.PowerUpType) ecs.EntityID {
	t.Helper()
	rect := w.playerRect(t)
	return entities.NewPowerUpEntity(w.em, rect.X+10, rect.Y+10, powerUpType)
}
