package systems

import (
	"log"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/ecs"
	"github.com/decker502/cosmiccalc/pkg/types"
)

// CollisionReport 一帧碰撞结算的结果
type CollisionReport struct {
	PowerUps      []types.PowerUpType // 本帧拾取的道具（按结算顺序）
	CloudHits     int                 // 本帧结算的云朵数量
	Penalties     int                 // 触发了加速惩罚的次数
	TargetReached bool                // 分数恰好达到目标
}

// CollisionSystem 飞船与道具、云朵的碰撞结算
//
// 顺序：先道具，后云朵（同一帧拾取的穿云道具对本帧云朵立即生效）
//   - 道具：激活效果并移除
//   - 云朵：穿云模式下跳过；否则计算分数、可能加速，然后移除
//   - 分数恰好等于目标时停止结算并报告
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	playerEntity  ecs.EntityID
	effects       *EffectSystem
	difficulty    *DifficultyEngine
	target        int
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, playerEntity ecs.EntityID, effects *EffectSystem, difficulty *DifficultyEngine, target int) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		playerEntity:  playerEntity,
		effects:       effects,
		difficulty:    difficulty,
		target:        target,
	}
}

// Update 结算本帧所有碰撞
func (s *CollisionSystem) Update() CollisionReport {
	var report CollisionReport

	playerRect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, s.playerEntity)
	if !ok {
		return report
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerEntity)
	if !ok {
		return report
	}

	powerUps := ecs.GetEntitiesWith2[*components.RectComponent, *components.PowerUpComponent](s.entityManager)
	for _, id := range powerUps {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if !playerRect.Overlaps(rect) {
			continue
		}

		powerUp, _ := ecs.GetComponent[*components.PowerUpComponent](s.entityManager, id)
		s.effects.Activate(powerUp.Type)
		s.entityManager.DestroyEntity(id)
		report.PowerUps = append(report.PowerUps, powerUp.Type)
	}

	clouds := ecs.GetEntitiesWith2[*components.RectComponent, *components.CloudComponent](s.entityManager)
	for _, id := range clouds {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if !playerRect.Overlaps(rect) {
			continue
		}

		// 穿云模式：云朵保持原样继续滚动
		if s.effects.IsGhost() {
			continue
		}

		cloud, _ := ecs.GetComponent[*components.CloudComponent](s.entityManager, id)
		penalty := Calculate(player, cloud.Op, cloud.Operand)
		report.CloudHits++
		if penalty && !s.effects.IsRapidFire() {
			s.difficulty.ApplyPenalty()
			report.Penalties++
		}
		s.entityManager.DestroyEntity(id)

		log.Printf("[CollisionSystem] Hit cloud %s%d, score=%d", cloud.Op.Symbol(), cloud.Operand, player.Score)

		if player.Score == s.target {
			log.Printf("[CollisionSystem] Target %d reached", s.target)
			report.TargetReached = true
			break
		}
	}

	return report
}
