package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
)

const (
	// powerUpSpinStep 道具每帧旋转角度（度）
	powerUpSpinStep = 5.0
	// powerUpHueStep 道具每帧色相变化
	powerUpHueStep = 5.0
)

// MovementSystem 滚动系统
// 云朵和道具以当前滚动速度向左移动，星星以自身速度移动
type MovementSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewMovementSystem 创建滚动系统
func NewMovementSystem(em *ecs.EntityManager, rng *rand.Rand) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		rng:           rng,
	}
}

// UpdateScrolling 移动云朵和道具
//
// 参数:
//
//	scrollSpeed - 本帧生效的滚动速度
//	elapsedMs - 游戏开始后的毫秒数（驱动云朵上下漂浮）
func (s *MovementSystem) UpdateScrolling(scrollSpeed float64, elapsedMs float64) {
	clouds := ecs.GetEntitiesWith2[*components.RectComponent, *components.CloudComponent](s.entityManager)
	for _, id := range clouds {
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		cloud, _ := ecs.GetComponent[*components.CloudComponent](s.entityManager, id)

		rect.X -= scrollSpeed
		rect.Y = cloud.LaneY + cloud.BobAmplitude*math.Sin(cloud.BobFrequency*elapsedMs+cloud.BobPhase)
	}

	powerUps := ecs.GetEntitiesWith2[*components.RectComponent, *components.PowerUpComponent](s.entityManager)
	for _, id := range powerUps {
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		powerUp, _ := ecs.GetComponent[*components.PowerUpComponent](s.entityManager, id)

		rect.X -= scrollSpeed
		powerUp.Angle += powerUpSpinStep
		powerUp.Hue = math.Mod(powerUp.Hue+powerUpHueStep, 360)
	}
}

// UpdateStars 移动背景星星
// 星星离开左边界后回到右边界，Y 重新随机
func (s *MovementSystem) UpdateStars() {
	stars := ecs.GetEntitiesWith1[*components.StarComponent](s.entityManager)
	for _, id := range stars {
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)

		star.X -= star.Speed
		if star.X < 0 {
			star.X = config.FieldWidth
			star.Y = float64(s.rng.Intn(config.GameWindowHeight + 1))
		}
	}
}
