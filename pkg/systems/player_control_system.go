package systems

import (
	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
)

// PlayerControlSystem 飞船上下移动
// 反转模式下上键向下、下键向上；飞船不会离开场地
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	playerEntity  ecs.EntityID
	speed         float64
}

// NewPlayerControlSystem 创建飞船控制系统
func NewPlayerControlSystem(em *ecs.EntityManager, playerEntity ecs.EntityID, player config.PlayerConfig) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager: em,
		playerEntity:  playerEntity,
		speed:         player.Speed,
	}
}

// Update 根据按键移动飞船
//
// 参数:
//
//	up, down - 上/下键是否按住
//	inverted - 是否处于反转模式
func (s *PlayerControlSystem) Update(up, down, inverted bool) {
	rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, s.playerEntity)
	if !ok {
		return
	}

	if inverted {
		up, down = down, up
	}

	if up && rect.Top() > 0 {
		rect.Y -= s.speed
		if rect.Y < 0 {
			rect.Y = 0
		}
	}
	if down && rect.Bottom() < config.FieldHeight {
		rect.Y += s.speed
		if rect.Bottom() > config.FieldHeight {
			rect.Y = config.FieldHeight - rect.Height
		}
	}
}
