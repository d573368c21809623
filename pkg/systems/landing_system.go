package systems

import (
	"log"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
)

// LandingSystem 胜利动画
//
// 阶段:
//  1. 飞离：飞船每帧右移 ExitSpeed，左边缘越过右边界后结束
//  2. 降落：着陆舱从 LanderStartY 每帧下降 DescentSpeed，到达 LanderPadY 后停下
//  3. 行走：宇航员每帧前进 WalkSpeed，走到旗帜处停止
type LandingSystem struct {
	entityManager *ecs.EntityManager
	playerEntity  ecs.EntityID
	landing       config.LandingConfig
}

// NewLandingSystem 创建胜利动画系统
func NewLandingSystem(em *ecs.EntityManager, playerEntity ecs.EntityID, landing config.LandingConfig) *LandingSystem {
	return &LandingSystem{
		entityManager: em,
		playerEntity:  playerEntity,
		landing:       landing,
	}
}

// UpdateExit 推进飞离阶段
// 返回 true 表示飞船已完全离开画面
func (s *LandingSystem) UpdateExit() bool {
	rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, s.playerEntity)
	if !ok {
		return true
	}
	rect.X += s.landing.ExitSpeed
	return rect.Left() > config.FieldWidth
}

// BeginLanding 重置着陆动画进度
func (s *LandingSystem) BeginLanding() {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerEntity)
	if !ok {
		return
	}
	player.LanderY = config.LanderStartY
	player.FigureX = 0
	log.Printf("[LandingSystem] Landing sequence started")
}

// UpdateLanding 推进降落和行走
// 着陆舱停稳后的下一帧宇航员才开始行走
func (s *LandingSystem) UpdateLanding() {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerEntity)
	if !ok {
		return
	}

	if player.LanderY < config.LanderPadY {
		player.LanderY += s.landing.DescentSpeed
		if player.LanderY > config.LanderPadY {
			player.LanderY = config.LanderPadY
		}
		return
	}

	if player.FigureX < config.AstronautWalkDistance {
		player.FigureX += s.landing.WalkSpeed
		if player.FigureX > config.AstronautWalkDistance {
			player.FigureX = config.AstronautWalkDistance
		}
	}
}

// IsDescending 着陆舱是否仍在下降
func IsDescending(player *components.PlayerComponent) bool {
	return player.LanderY < config.LanderPadY
}

// HasReachedFlag 宇航员是否已走到旗帜处
func HasReachedFlag(player *components.PlayerComponent) bool {
	return player.FigureX >= config.AstronautWalkDistance
}
